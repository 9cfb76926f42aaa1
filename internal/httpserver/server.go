package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	storerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/store"
	"github.com/rafirachmawan/kasir-pintar/internal/service/cashier"
	"github.com/rafirachmawan/kasir-pintar/internal/service/catalog"
	"github.com/rafirachmawan/kasir-pintar/internal/service/category"
	"github.com/rafirachmawan/kasir-pintar/internal/service/payment"
	"github.com/rafirachmawan/kasir-pintar/internal/service/sale"
	"github.com/rafirachmawan/kasir-pintar/internal/service/settings"
	"github.com/rafirachmawan/kasir-pintar/internal/service/supplier"
	"github.com/rafirachmawan/kasir-pintar/internal/service/tariff"
)

// Deps holds the services the router exposes.
type Deps struct {
	Cashiers   *cashier.Service
	Catalog    *catalog.Service
	Categories *category.Service
	Tariffs    *tariff.Service
	Payments   *payment.Service
	Suppliers  *supplier.Service
	Settings   *settings.Service
	Sales      *sale.Service
	Stores     storerepo.Repository
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	db         *pgxpool.Pool
}

// New builds a Server with all API routes wired.
func New(addr string, logger *log.Logger, db *pgxpool.Pool, deps Deps) *Server {
	router := buildRouter(logger, db, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		db:         db,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
