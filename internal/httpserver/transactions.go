package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafirachmawan/kasir-pintar/internal/service/sale"
)

// parseRange reads from/to query params (YYYY-MM-DD). Missing "from"
// means the beginning of time; missing "to" means now. "to" is inclusive
// of the whole day.
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return from, to, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return from, to, false
		}
		to = parsed.AddDate(0, 0, 1)
	} else {
		to = time.Now()
	}
	return from, to, true
}

func listTransactionsHandler(svc *sale.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		from, to, ok := parseRange(c)
		if !ok {
			return
		}
		result, err := svc.History(c.Request.Context(), store.ID, from, to)
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func getTransactionHandler(svc *sale.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		transaction, err := svc.Detail(c.Request.Context(), store.ID, c.Param("id"))
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, transaction)
	}
}

func dailyReportHandler(svc *sale.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		from, to, ok := parseRange(c)
		if !ok {
			return
		}
		days, err := svc.DailyReport(c.Request.Context(), store.ID, from, to)
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"days": days})
	}
}
