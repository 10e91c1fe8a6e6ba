package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hearth/internal/api"
	"hearth/internal/log"
	"hearth/internal/snapshot"
)

type fakeBackend struct {
	failMortgages error
}

func (f *fakeBackend) ListMembers(context.Context) ([]api.Member, error) {
	return []api.Member{{ID: "m1", Name: "Sam"}}, nil
}

func (f *fakeBackend) ListBills(context.Context) ([]api.Bill, error) {
	return []api.Bill{{ID: "b1", Name: "Electric", AmountCents: 100}}, nil
}

func (f *fakeBackend) ListRecurringBills(context.Context) ([]api.RecurringBill, error) {
	return nil, nil
}

func (f *fakeBackend) ListMortgages(context.Context) ([]api.Mortgage, error) {
	if f.failMortgages != nil {
		return nil, f.failMortgages
	}
	return nil, nil
}

func (f *fakeBackend) ListFinancedExpenses(context.Context) ([]api.FinancedExpense, error) {
	return nil, nil
}

type fakeStore struct {
	replaced []snapshot.Snapshot
}

func (f *fakeStore) Replace(_ context.Context, snap snapshot.Snapshot) error {
	f.replaced = append(f.replaced, snap)
	return nil
}

func testLogger() *log.Logger {
	return log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func TestRunOnceStoresSnapshot(t *testing.T) {
	store := &fakeStore{}
	w := NewSnapshotWorker(&fakeBackend{}, store, time.Hour, testLogger())
	taken := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return taken }

	if err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if len(store.replaced) != 1 {
		t.Fatalf("Replace called %d times", len(store.replaced))
	}
	snap := store.replaced[0]
	if len(snap.Members) != 1 || len(snap.Bills) != 1 {
		t.Fatalf("unexpected snapshot contents: %+v", snap)
	}
	if !snap.TakenAt.Equal(taken) {
		t.Fatalf("TakenAt = %v", snap.TakenAt)
	}
}

func TestRunOnceFailedFetchLeavesStoreUntouched(t *testing.T) {
	store := &fakeStore{}
	backend := &fakeBackend{failMortgages: errors.New("backend down")}
	w := NewSnapshotWorker(backend, store, time.Hour, testLogger())

	if err := w.RunOnce(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(store.replaced) != 0 {
		t.Fatal("Replace must not run after a failed fetch")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	store := &fakeStore{}
	w := NewSnapshotWorker(&fakeBackend{}, store, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
