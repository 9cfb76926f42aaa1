package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rafirachmawan/kasir-pintar/internal/config"
	"github.com/rafirachmawan/kasir-pintar/internal/db"
	"github.com/rafirachmawan/kasir-pintar/internal/httpserver"
	cashierrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/cashier"
	categoryrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/category"
	chargerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/charge"
	paymentrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/payment"
	productrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/product"
	settingsrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/settings"
	storerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/store"
	supplierrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/supplier"
	tokenrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/token"
	transactionrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/transaction"
	cashiersvc "github.com/rafirachmawan/kasir-pintar/internal/service/cashier"
	catalogsvc "github.com/rafirachmawan/kasir-pintar/internal/service/catalog"
	categorysvc "github.com/rafirachmawan/kasir-pintar/internal/service/category"
	paymentsvc "github.com/rafirachmawan/kasir-pintar/internal/service/payment"
	salesvc "github.com/rafirachmawan/kasir-pintar/internal/service/sale"
	settingssvc "github.com/rafirachmawan/kasir-pintar/internal/service/settings"
	suppliersvc "github.com/rafirachmawan/kasir-pintar/internal/service/supplier"
	tariffsvc "github.com/rafirachmawan/kasir-pintar/internal/service/tariff"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.PoolConfig())
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	storeRepo := storerepo.NewPostgres(dbpool)
	cashierRepo := cashierrepo.NewPostgres(dbpool)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	chargeRepo := chargerepo.NewChargesPostgres(dbpool)
	discountRepo := chargerepo.NewDiscountsPostgres(dbpool)
	paymentRepo := paymentrepo.NewPostgres(dbpool)
	supplierRepo := supplierrepo.NewPostgres(dbpool)
	settingsRepo := settingsrepo.NewPostgres(dbpool)
	transactionRepo := transactionrepo.NewPostgres(dbpool)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Cashiers:   cashiersvc.New(cashierRepo, storeRepo, tokenRepo),
		Catalog:    catalogsvc.New(productRepo, categoryRepo),
		Categories: categorysvc.New(categoryRepo),
		Tariffs:    tariffsvc.New(chargeRepo, discountRepo),
		Payments:   paymentsvc.New(paymentRepo),
		Suppliers:  suppliersvc.New(supplierRepo),
		Settings:   settingssvc.New(settingsRepo),
		Sales:      salesvc.New(productRepo, chargeRepo, discountRepo, paymentRepo, settingsRepo, transactionRepo),
		Stores:     storeRepo,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
