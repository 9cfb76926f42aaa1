package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafirachmawan/kasir-pintar/internal/service/settings"
)

func getReceiptSettingsHandler(svc *settings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		cfg, err := svc.Get(c.Request.Context(), store.ID)
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

func updateReceiptSettingsHandler(svc *settings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req settings.Patch
		if !bindJSON(c, &req) {
			return
		}
		cfg, err := svc.Update(c.Request.Context(), store.ID, req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}
