package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"produto-service/internal/config"
	"produto-service/internal/db"
	"produto-service/internal/importer"
	produtorepo "produto-service/internal/repository/produto"
	produtosvc "produto-service/internal/service/produto"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to produto CSV (nome,sku,preco)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	svc := produtosvc.New(produtorepo.NewPostgres(pool, logger))
	imp := importer.NewCSVImporter(f, svc)

	start := time.Now()
	imported, skipped, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d produtos (%d skipped as duplicate SKU) in %s\n", imported, skipped, time.Since(start).Truncate(time.Millisecond))
}
