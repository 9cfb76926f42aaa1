package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	storerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/store"
	"github.com/rafirachmawan/kasir-pintar/internal/service/cashier"
)

const (
	sessionKey = "session"
	storeKey   = "store"
)

// authMiddleware resolves the bearer token to a cashier session.
func authMiddleware(cashiers *cashier.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		session, err := cashiers.Validate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// storeMiddleware resolves :storeKey and checks the session belongs to
// that store. Cashiers never see another tenant's data.
func storeMiddleware(stores storerepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("storeKey")
		store, err := stores.GetByKey(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "store not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		session := currentSession(c)
		if session == nil || session.StoreID != store.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "store access denied"})
			return
		}
		c.Set(storeKey, store)
		c.Next()
	}
}

func currentSession(c *gin.Context) *cashier.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*cashier.Session)
	return session
}

func currentStore(c *gin.Context) *domain.Store {
	v, ok := c.Get(storeKey)
	if !ok {
		return nil
	}
	store, _ := v.(*domain.Store)
	return store
}
