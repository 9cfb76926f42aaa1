package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafirachmawan/kasir-pintar/internal/service/catalog"
)

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		products, err := svc.List(c.Request.Context(), store.ID)
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		product, err := svc.Get(c.Request.Context(), store.ID, c.Param("id"))
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func createProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req catalog.ProductInput
		if !bindJSON(c, &req) {
			return
		}
		product, err := svc.Create(c.Request.Context(), store.ID, req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req catalog.ProductInput
		if !bindJSON(c, &req) {
			return
		}
		product, err := svc.Update(c.Request.Context(), store.ID, c.Param("id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		if err := svc.Delete(c.Request.Context(), store.ID, c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func adjustStockHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req catalog.StockInput
		if !bindJSON(c, &req) {
			return
		}
		product, err := svc.AdjustStock(c.Request.Context(), store.ID, c.Param("id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
