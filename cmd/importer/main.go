package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rafirachmawan/kasir-pintar/internal/config"
	"github.com/rafirachmawan/kasir-pintar/internal/db"
	"github.com/rafirachmawan/kasir-pintar/internal/importer"
	categoryrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/category"
	productrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/product"
	storerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/store"
)

func main() {
	var (
		filePath string
		storeKey string
	)
	flag.StringVar(&filePath, "file", "", "Path to product CSV (name, price, unit, category, stock)")
	flag.StringVar(&storeKey, "store", "", "Store key to import into")
	flag.Parse()

	if filePath == "" || storeKey == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.PoolConfig())
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	store, err := storerepo.NewPostgres(pool).GetByKey(ctx, storeKey)
	if err != nil {
		log.Fatalf("resolve store %q: %v", storeKey, err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, productrepo.NewPostgres(pool), categoryrepo.NewPostgres(pool), store.ID)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products into store %s in %s\n", count, storeKey, time.Since(start).Truncate(time.Millisecond))
}
