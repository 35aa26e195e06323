package worker

import (
	"context"
	"log/slog"
	"time"
)

// ReportExporter rebuilds the catalog price report.
type ReportExporter interface {
	Export(ctx context.Context) error
}

// ReportWorker periodically regenerates the catalog price report.
type ReportWorker struct {
	exporter ReportExporter
	interval time.Duration
}

// NewReportWorker creates a new ReportWorker.
func NewReportWorker(exporter ReportExporter, interval time.Duration) *ReportWorker {
	return &ReportWorker{
		exporter: exporter,
		interval: interval,
	}
}

// Run starts the report worker loop. It blocks until the context is cancelled.
func (w *ReportWorker) Run(ctx context.Context) {
	slog.Info("ReportWorker: starting")

	// Export immediately on startup
	if err := w.exporter.Export(ctx); err != nil {
		slog.Error("ReportWorker: initial export failed", "error", err)
	} else {
		slog.Info("ReportWorker: initial export completed")
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("ReportWorker: shutting down")
			return
		case <-ticker.C:
			if err := w.exporter.Export(ctx); err != nil {
				slog.Error("ReportWorker: export failed", "error", err)
			} else {
				slog.Info("ReportWorker: export completed")
			}
		}
	}
}
