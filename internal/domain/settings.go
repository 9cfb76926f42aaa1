package domain

// ReceiptSettings controls which fields appear on a printed receipt.
// Every toggle gates exactly one receipt field; a store without a saved
// settings row gets DefaultReceiptSettings.
type ReceiptSettings struct {
	ShowLogo          bool `json:"showLogo"`
	ShowAddress       bool `json:"showAddress"`
	ShowPhone         bool `json:"showPhone"`
	ShowTimestamp     bool `json:"showTimestamp"`
	ShowCashier       bool `json:"showCashier"`
	ShowReceiptNumber bool `json:"showReceiptNumber"`
	ShowCharges       bool `json:"showCharges"`
	ShowDiscount      bool `json:"showDiscount"`
	ShowNote          bool `json:"showNote"`

	BrandTitle          string `json:"brandTitle"`
	Tagline             string `json:"tagline,omitempty"`
	ReceiptNumberPrefix string `json:"receiptNumberPrefix"`
	ClosingNote         string `json:"closingNote,omitempty"`
}

// DefaultReceiptSettings returns the settings used before a store saves
// its own: all toggles on.
func DefaultReceiptSettings() ReceiptSettings {
	return ReceiptSettings{
		ShowLogo:            true,
		ShowAddress:         true,
		ShowPhone:           true,
		ShowTimestamp:       true,
		ShowCashier:         true,
		ShowReceiptNumber:   true,
		ShowCharges:         true,
		ShowDiscount:        true,
		ShowNote:            true,
		BrandTitle:          "TOKO ANDA",
		ReceiptNumberPrefix: "TRX-",
		ClosingNote:         "Terima kasih telah berbelanja",
	}
}
