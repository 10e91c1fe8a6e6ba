// Package worker runs the periodic snapshot pull: fetch every entity
// family from the backend and replace the local store's contents.
package worker

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hearth/internal/log"
	"hearth/internal/services"
	"hearth/internal/snapshot"
)

// Store is the slice of the snapshot repository the worker needs.
type Store interface {
	Replace(ctx context.Context, snap snapshot.Snapshot) error
}

// SnapshotWorker pulls the backend state on an interval. A failed pull
// is logged and retried at the next tick; the previous snapshot stays
// intact.
type SnapshotWorker struct {
	backend  services.Backend
	store    Store
	interval time.Duration
	logger   *log.Logger
	now      func() time.Time
}

func NewSnapshotWorker(backend services.Backend, store Store, interval time.Duration, logger *log.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		backend:  backend,
		store:    store,
		interval: interval,
		logger:   logger.WithComponent(log.ComponentWorker),
		now:      time.Now,
	}
}

// RunOnce performs one full pull and replace.
func (w *SnapshotWorker) RunOnce(ctx context.Context) error {
	start := w.now()
	var snap snapshot.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Members, err = w.backend.ListMembers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Bills, err = w.backend.ListBills(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.RecurringBills, err = w.backend.ListRecurringBills(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Mortgages, err = w.backend.ListMortgages(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.FinancedExpenses, err = w.backend.ListFinancedExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("fetch snapshot: %w", err)
	}

	snap.TakenAt = w.now()
	if err := w.store.Replace(ctx, snap); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	w.logger.InfoContext(ctx, "Snapshot stored",
		log.FieldOperation, log.OpSnapshot,
		log.FieldDuration, time.Since(start).Milliseconds(),
		"members", len(snap.Members),
		"bills", len(snap.Bills),
		"recurring_bills", len(snap.RecurringBills),
		"mortgages", len(snap.Mortgages),
		"financed_expenses", len(snap.FinancedExpenses))

	return nil
}

// Run pulls immediately, then on every interval tick until the context
// is cancelled.
func (w *SnapshotWorker) Run(ctx context.Context) error {
	if err := w.RunOnce(ctx); err != nil {
		w.logger.ErrorContext(ctx, "Initial snapshot failed", log.FieldError, err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "Snapshot worker stopping", log.FieldOperation, log.OpShutdown)
			return ctx.Err()
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				w.logger.ErrorContext(ctx, "Snapshot failed", log.FieldError, err.Error())
			}
		}
	}
}
