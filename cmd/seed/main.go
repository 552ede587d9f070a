// seed aplica el esquema y carga el inventario inicial de medicamentos.
//
// Uso: go run ./cmd/seed [-csv inventario.csv]
// Sin -csv carga el catálogo de ejemplo solo si la tabla está vacía.
// Con -csv cada fila se agrega como reabastecimiento (mismo nombre y laboratorio suma stock).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/application/usecase"
	"github.com/jhoicas/botica-api/internal/infrastructure/postgres"
	"github.com/jhoicas/botica-api/pkg/config"
	"github.com/jhoicas/botica-api/pkg/logger"
)

func main() {
	csvPath := flag.String("csv", "", "ruta del CSV de inventario (UTF-8 o ISO-8859-1)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema")
	}
	log.Info().Msg("esquema aplicado")

	repo := postgres.NewProductRepository(pool)
	uc := usecase.NewProductUseCase(repo, log)

	var items []dto.AddStockRequest
	if *csvPath != "" {
		f, err := os.Open(*csvPath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir CSV")
		}
		items, err = parseCatalog(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("archivo", *csvPath).Msg("leer CSV")
		}
	} else {
		existing, err := repo.List(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("listar medicamentos")
		}
		if len(existing) > 0 {
			log.Info().Int("medicamentos", len(existing)).Msg("inventario ya cargado, nada que hacer")
			return
		}
		items = sampleCatalog()
	}

	created, restocked := 0, 0
	for _, it := range items {
		out, err := uc.AddStock(ctx, it)
		if err != nil {
			log.Error().Err(err).Str("medicamento", it.Name).Msg("no se pudo cargar")
			continue
		}
		if out.Created {
			created++
		} else {
			restocked++
		}
	}
	log.Info().Int("creados", created).Int("reabastecidos", restocked).Msg("seed completado")
}
