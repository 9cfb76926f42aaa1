package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafirachmawan/kasir-pintar/internal/service/tariff"
)

func listChargesHandler(svc *tariff.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		activeOnly := c.Query("active") == "true"
		charges, err := svc.ListCharges(c.Request.Context(), store.ID, activeOnly)
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"charges": charges})
	}
}

func createChargeHandler(svc *tariff.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req tariff.TariffInput
		if !bindJSON(c, &req) {
			return
		}
		created, err := svc.CreateCharge(c.Request.Context(), store.ID, req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateChargeHandler(svc *tariff.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req tariff.TariffInput
		if !bindJSON(c, &req) {
			return
		}
		updated, err := svc.UpdateCharge(c.Request.Context(), store.ID, c.Param("id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteChargeHandler(svc *tariff.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		if err := svc.DeleteCharge(c.Request.Context(), store.ID, c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listDiscountsHandler(svc *tariff.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		activeOnly := c.Query("active") == "true"
		discounts, err := svc.ListDiscounts(c.Request.Context(), store.ID, activeOnly)
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"discounts": discounts})
	}
}

func createDiscountHandler(svc *tariff.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req tariff.TariffInput
		if !bindJSON(c, &req) {
			return
		}
		created, err := svc.CreateDiscount(c.Request.Context(), store.ID, req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateDiscountHandler(svc *tariff.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req tariff.TariffInput
		if !bindJSON(c, &req) {
			return
		}
		updated, err := svc.UpdateDiscount(c.Request.Context(), store.ID, c.Param("id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteDiscountHandler(svc *tariff.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		if err := svc.DeleteDiscount(c.Request.Context(), store.ID, c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
