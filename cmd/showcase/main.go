package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/aurumworks/showcase/internal/api"
	"github.com/aurumworks/showcase/internal/catalog"
	"github.com/aurumworks/showcase/internal/config"
	"github.com/aurumworks/showcase/internal/database"
	"github.com/aurumworks/showcase/internal/export"
	"github.com/aurumworks/showcase/internal/goldprice"
	"github.com/aurumworks/showcase/internal/intent"
	"github.com/aurumworks/showcase/internal/nav"
	"github.com/aurumworks/showcase/internal/worker"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	app := &cli.App{
		Name:  "showcase",
		Usage: "gold-priced jewelry catalog engine",
		Commands: []*cli.Command{
			serveCommand(),
			exportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "resolve the gold price, load the catalog and serve the showcase API",
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := config.Load()

			// Price resolution must complete before catalog load: product
			// prices are stamped from the resolved reference.
			oracle := goldprice.NewOracle(goldprice.NewClient(cfg.GoldAPIURL, cfg.HTTPClientTimeout))
			ref := oracle.Resolve(ctx)
			slog.Info("reference price resolved", "perGram", ref.PerGram, "source", ref.Source)

			store := catalog.NewStore(catalog.NewClient(cfg.CatalogURL, cfg.HTTPClientTimeout))
			store.Load(ctx, ref)

			controller := nav.NewController()
			loop := intent.NewLoop(store, controller)
			go loop.Run(ctx)

			// Quote history is optional: without a database the engine
			// serves exactly the same catalog, it just keeps no telemetry.
			if cfg.DatabaseURL != "" {
				pool, err := database.Connect(ctx, cfg.DatabaseURL)
				if err != nil {
					return fmt.Errorf("connecting to database: %w", err)
				}
				defer pool.Close()

				migrationsSub, err := fs.Sub(migrationsFS, "migrations")
				if err != nil {
					return fmt.Errorf("creating migrations sub-fs: %w", err)
				}
				if err := database.RunMigrations(ctx, pool, migrationsSub); err != nil {
					return fmt.Errorf("running migrations: %w", err)
				}

				quoteRepo := goldprice.NewPgQuoteRepository(pool)
				quoteWorker := worker.NewQuoteWorker(oracle, quoteRepo, cfg.QuoteRefreshInterval)
				go quoteWorker.Run(ctx)
			}

			if cfg.SheetsSpreadsheetID != "" && cfg.SheetsCredentialsJSON != "" {
				writer, err := export.NewSheetsWriter(ctx, cfg.SheetsSpreadsheetID, cfg.SheetsCredentialsJSON)
				if err != nil {
					return fmt.Errorf("creating sheets writer: %w", err)
				}
				reportWorker := worker.NewReportWorker(export.NewService(store, ref, writer), cfg.ReportInterval)
				go reportWorker.Run(ctx)
			}

			handler := api.NewHandler(store, loop, ref)
			srv := api.NewServer(cfg.HTTPPort, handler)

			go func() {
				log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Printf("HTTP server error: %v", err)
					stop()
				}
			}()

			<-ctx.Done()
			log.Println("Shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("HTTP server shutdown error: %v", err)
			}

			log.Println("Shutdown complete")
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write a one-shot catalog price report as an .xlsx file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "output file path",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()

			path := c.String("out")
			if path == "" {
				path = cfg.ReportPath
			}

			oracle := goldprice.NewOracle(goldprice.NewClient(cfg.GoldAPIURL, cfg.HTTPClientTimeout))
			ref := oracle.Resolve(c.Context)
			slog.Info("reference price resolved", "perGram", ref.PerGram, "source", ref.Source)

			store := catalog.NewStore(catalog.NewClient(cfg.CatalogURL, cfg.HTTPClientTimeout))
			store.Load(c.Context, ref)

			svc := export.NewService(store, ref, export.NewExcelWriter(path))
			if err := svc.Export(c.Context); err != nil {
				return err
			}

			log.Printf("report written to %s", path)
			return nil
		},
	}
}
