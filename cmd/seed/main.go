// seed carga datos de demostración (productos, bodegas y stock) en el almacén configurado.
//
// Uso: go run ./cmd/seed [-force] [-products catalogo.csv] [-latin1]
//
// El CSV de productos lleva cabecera sku,name,category,unitCost,reorderPoint. Con -latin1
// se decodifica como ISO-8859-1 (exportaciones de Excel en Windows).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/docstore"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/storefactory"
	"github.com/jhoicas/Inventario-stock/pkg/config"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "reemplaza los datos existentes")
	productsCSV := flag.String("products", "", "CSV de productos (opcional)")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	decimal.MarshalJSONWithoutQuotes = true

	data := demoData()
	if *productsCSV != "" {
		products, err := loadProductsFile(*productsCSV, *latin1)
		if err != nil {
			log.Fatal().Err(err).Str("file", *productsCSV).Msg("leer CSV de productos")
		}
		data = withProducts(data, products)
	}

	ctx := context.Background()
	backend, closeStore, err := storefactory.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer closeStore()

	if err := seed(ctx, docstore.NewTxRunner(backend), data, *force); err != nil {
		log.Error().Err(err).Msg("seed")
		closeStore()
		os.Exit(1)
	}
	log.Info().
		Int("products", len(data.Products)).
		Int("warehouses", len(data.Warehouses)).
		Int("stockLevels", len(data.StockLevels)).
		Msg("datos de demostración cargados")
}

func loadProductsFile(path string, latin1 bool) ([]entity.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	return parseProductsCSV(r)
}

// seed escribe el conjunto completo en una sola transacción. Sin force no toca un almacén con productos.
func seed(ctx context.Context, tx repository.TxRunner, data dataset, force bool) error {
	return tx.Run(ctx, func(c repository.Collections) error {
		existing, err := c.Products.LoadAll(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 && !force {
			return fmt.Errorf("el almacén ya tiene %d productos; use -force para reemplazarlos", len(existing))
		}
		if err := c.Products.SaveAll(ctx, data.Products); err != nil {
			return err
		}
		if err := c.Warehouses.SaveAll(ctx, data.Warehouses); err != nil {
			return err
		}
		if err := c.Transfers.SaveAll(ctx, nil); err != nil {
			return err
		}
		if err := c.StockLevels.SaveAll(ctx, data.StockLevels); err != nil {
			return err
		}
		return c.Alerts.SaveAll(ctx, nil)
	})
}
