package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type mockExporter struct {
	exports atomic.Int32
	err     error
}

func (m *mockExporter) Export(_ context.Context) error {
	m.exports.Add(1)
	return m.err
}

func TestReportWorkerExportsOnStartup(t *testing.T) {
	exporter := &mockExporter{}
	worker := NewReportWorker(exporter, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	waitFor(t, func() bool { return exporter.exports.Load() == 1 })
	cancel()
	<-done
}

func TestReportWorkerSurvivesExportErrors(t *testing.T) {
	exporter := &mockExporter{err: errors.New("spreadsheet unavailable")}
	worker := NewReportWorker(exporter, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	waitFor(t, func() bool { return exporter.exports.Load() >= 3 })
	cancel()
	<-done
}
