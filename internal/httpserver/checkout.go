package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafirachmawan/kasir-pintar/internal/service/payment"
	"github.com/rafirachmawan/kasir-pintar/internal/service/sale"
)

// applyDefaultMethod fills in the store's default payment method when the
// request names none, mirroring the pre-selected method on the pay screen.
func applyDefaultMethod(c *gin.Context, payments *payment.Service, storeID string, req *sale.CheckoutInput) bool {
	if req.PaymentMethodID != "" {
		return true
	}
	method, err := payments.Default(c.Request.Context(), storeID)
	if err != nil {
		writeError(c, err)
		return false
	}
	if method != nil {
		req.PaymentMethodID = method.ID
	}
	return true
}

func previewHandler(svc *sale.Service, payments *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		session := currentSession(c)
		var req sale.CheckoutInput
		if !bindJSON(c, &req) {
			return
		}
		if !applyDefaultMethod(c, payments, store.ID, &req) {
			return
		}
		preview, err := svc.Preview(c.Request.Context(), store, session.Cashier.Name, req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, preview)
	}
}

func checkoutHandler(svc *sale.Service, payments *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		session := currentSession(c)
		var req sale.CheckoutInput
		if !bindJSON(c, &req) {
			return
		}
		if !applyDefaultMethod(c, payments, store.ID, &req) {
			return
		}
		result, err := svc.Checkout(c.Request.Context(), store, session.Cashier.Name, req)
		if err != nil {
			writeError(c, err)
			return
		}
		salesFinalized.WithLabelValues(store.Key).Inc()
		if result.Transaction.Total > 0 {
			salesRevenue.WithLabelValues(store.Key).Add(float64(result.Transaction.Total))
		}
		c.JSON(http.StatusCreated, result)
	}
}
