package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafirachmawan/kasir-pintar/internal/service/category"
)

func listCategoriesHandler(svc *category.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		categories, err := svc.List(c.Request.Context(), store.ID)
		if err != nil {
			writeServerError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func createCategoryHandler(svc *category.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req category.CategoryInput
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

func updateCategoryHandler(svc *category.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req category.CategoryInput
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

func deleteCategoryHandler(svc *category.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		if err := svc.Delete(c.Request.Context(), store.ID, c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
