package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafirachmawan/kasir-pintar/internal/service/cashier"
)

func signupHandler(cashiers *cashier.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cashier.SignupInput
		if !bindJSON(c, &req) {
			return
		}
		session, err := cashiers.Signup(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

func loginHandler(cashiers *cashier.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cashier.LoginInput
		if !bindJSON(c, &req) {
			return
		}
		session, err := cashiers.Login(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// logoutHandler reads the bearer header itself so an already-expired
// token still logs out cleanly instead of bouncing off the middleware.
func logoutHandler(cashiers *cashier.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		if err := cashiers.Logout(c.Request.Context(), token); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
