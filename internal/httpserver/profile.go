package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	storerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/store"
)

type profileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func getProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, currentStore(c))
	}
}

// updateProfileHandler edits the store identity shown on receipts. The
// key stays fixed; it is the store's address in every URL.
func updateProfileHandler(stores storerepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := currentStore(c)
		var req profileRequest
		if !bindJSON(c, &req) {
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		updated, err := stores.Update(c.Request.Context(), store.ID, storerepo.UpdateStoreInput{
			Name:    name,
			Address: strings.TrimSpace(req.Address),
			Phone:   strings.TrimSpace(req.Phone),
			Email:   strings.TrimSpace(strings.ToLower(req.Email)),
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
