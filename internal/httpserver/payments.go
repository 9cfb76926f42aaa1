package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafirachmawan/kasir-pintar/internal/service/payment"
)

func listMethodsHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		activeOnly := c.Query("active") == "true"
		methods, err := svc.List(c.Request.Context(), store.ID, activeOnly)
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"paymentMethods": methods})
	}
}

func createMethodHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req payment.MethodInput
		if !bindJSON(c, &req) {
			return
		}
		created, err := svc.Create(c.Request.Context(), store.ID, req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateMethodHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req payment.MethodInput
		if !bindJSON(c, &req) {
			return
		}
		updated, err := svc.Update(c.Request.Context(), store.ID, c.Param("id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteMethodHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		if err := svc.Delete(c.Request.Context(), store.ID, c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
