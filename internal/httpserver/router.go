package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/auth")
	{
		auth.POST("/signup", signupHandler(deps.Cashiers))
		auth.POST("/login", loginHandler(deps.Cashiers))
		auth.POST("/logout", logoutHandler(deps.Cashiers))
		auth.GET("/me", authMiddleware(deps.Cashiers), meHandler())
	}

	store := router.Group("/stores/:storeKey",
		authMiddleware(deps.Cashiers),
		storeMiddleware(deps.Stores),
	)
	{
		store.GET("/profile", getProfileHandler())
		store.PUT("/profile", updateProfileHandler(deps.Stores))

		store.GET("/products", listProductsHandler(deps.Catalog))
		store.POST("/products", createProductHandler(deps.Catalog))
		store.GET("/products/:id", getProductHandler(deps.Catalog))
		store.PUT("/products/:id", updateProductHandler(deps.Catalog))
		store.DELETE("/products/:id", deleteProductHandler(deps.Catalog))
		store.PATCH("/products/:id/stock", adjustStockHandler(deps.Catalog))

		store.GET("/categories", listCategoriesHandler(deps.Categories))
		store.POST("/categories", createCategoryHandler(deps.Categories))
		store.PUT("/categories/:id", updateCategoryHandler(deps.Categories))
		store.DELETE("/categories/:id", deleteCategoryHandler(deps.Categories))

		store.GET("/charges", listChargesHandler(deps.Tariffs))
		store.POST("/charges", createChargeHandler(deps.Tariffs))
		store.PUT("/charges/:id", updateChargeHandler(deps.Tariffs))
		store.DELETE("/charges/:id", deleteChargeHandler(deps.Tariffs))

		store.GET("/discounts", listDiscountsHandler(deps.Tariffs))
		store.POST("/discounts", createDiscountHandler(deps.Tariffs))
		store.PUT("/discounts/:id", updateDiscountHandler(deps.Tariffs))
		store.DELETE("/discounts/:id", deleteDiscountHandler(deps.Tariffs))

		store.GET("/payment-methods", listMethodsHandler(deps.Payments))
		store.POST("/payment-methods", createMethodHandler(deps.Payments))
		store.PUT("/payment-methods/:id", updateMethodHandler(deps.Payments))
		store.DELETE("/payment-methods/:id", deleteMethodHandler(deps.Payments))

		store.GET("/suppliers", listSuppliersHandler(deps.Suppliers))
		store.POST("/suppliers", createSupplierHandler(deps.Suppliers))
		store.PUT("/suppliers/:id", updateSupplierHandler(deps.Suppliers))
		store.DELETE("/suppliers/:id", deleteSupplierHandler(deps.Suppliers))

		store.GET("/settings/receipt", getReceiptSettingsHandler(deps.Settings))
		store.PUT("/settings/receipt", updateReceiptSettingsHandler(deps.Settings))

		store.POST("/checkout/preview", previewHandler(deps.Sales, deps.Payments))
		store.POST("/checkout", checkoutHandler(deps.Sales, deps.Payments))

		store.GET("/transactions", listTransactionsHandler(deps.Sales))
		store.GET("/transactions/:id", getTransactionHandler(deps.Sales))
		store.GET("/reports/daily", dailyReportHandler(deps.Sales))
	}

	return router
}
