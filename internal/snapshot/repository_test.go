package snapshot

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"hearth/internal/api"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "hearth.db"))
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sampleSnapshot(takenAt time.Time) Snapshot {
	return Snapshot{
		Members: []api.Member{
			{ID: "m1", Name: "Sam", CreatedAt: "2024-01-01T00:00:00Z"},
			{ID: "m2", Name: "Alex", CreatedAt: "2024-01-02T00:00:00Z"},
		},
		Bills: []api.Bill{
			{
				ID: "b1", Name: "Electric", AmountCents: 12050, DueDate: "2024-03-15",
				SplitMode: "equal", CreatedAt: "2024-01-01T00:00:00Z",
				Splits: []api.Split{
					{ID: "s1", BillID: "b1", MemberID: "m1", CreatedAt: "2024-01-01T00:00:00Z"},
				},
			},
		},
		RecurringBills: []api.RecurringBill{
			{ID: "r1", Name: "Internet", AmountCents: 7000, DayOfMonth: 19,
				Frequency: "monthly", SplitMode: "equal", Active: true,
				CreatedAt: "2024-01-01T00:00:00Z"},
		},
		Mortgages: []api.Mortgage{
			{ID: "mg1", Name: "Home loan", MonthlyPaymentCents: 150000, DueDay: 1,
				SplitMode: "equal", CreatedAt: "2024-01-01T00:00:00Z"},
		},
		FinancedExpenses: []api.FinancedExpense{
			{ID: "f1", Name: "Sofa", TotalAmountCents: 96000, MonthlyPaymentCents: 8000,
				TermMonths: 12, StartDate: "2024-02-01", SplitMode: "equal",
				CreatedAt: "2024-01-01T00:00:00Z"},
		},
		TakenAt: takenAt,
	}
}

func TestReplaceAndLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	takenAt := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	want := sampleSnapshot(takenAt)
	if err := repo.Replace(ctx, want); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.TakenAt.Equal(takenAt) {
		t.Fatalf("TakenAt = %v, want %v", got.TakenAt, takenAt)
	}
	// Documents round-trip verbatim, nested children included.
	if !reflect.DeepEqual(got.Bills, want.Bills) {
		t.Fatalf("bills:\ngot  %#v\nwant %#v", got.Bills, want.Bills)
	}
	if !reflect.DeepEqual(got.Members, want.Members) {
		t.Fatalf("members:\ngot  %#v\nwant %#v", got.Members, want.Members)
	}
	if !reflect.DeepEqual(got.RecurringBills, want.RecurringBills) {
		t.Fatalf("recurring bills differ")
	}
	if !reflect.DeepEqual(got.Mortgages, want.Mortgages) {
		t.Fatalf("mortgages differ")
	}
	if !reflect.DeepEqual(got.FinancedExpenses, want.FinancedExpenses) {
		t.Fatalf("financed expenses differ")
	}
}

func TestReplaceDropsStaleEntities(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Replace(ctx, sampleSnapshot(time.Now())); err != nil {
		t.Fatalf("first Replace: %v", err)
	}

	second := Snapshot{
		Members: []api.Member{{ID: "m3", Name: "Robin", CreatedAt: "2024-04-01T00:00:00Z"}},
		TakenAt: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Replace(ctx, second); err != nil {
		t.Fatalf("second Replace: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Members) != 1 || got.Members[0].ID != "m3" {
		t.Fatalf("stale members survived: %#v", got.Members)
	}
	if len(got.Bills) != 0 || len(got.Mortgages) != 0 {
		t.Fatalf("stale entities survived: %d bills, %d mortgages", len(got.Bills), len(got.Mortgages))
	}
}

func TestLoadEmptyStore(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.TakenAt.IsZero() {
		t.Fatalf("TakenAt = %v, want zero", got.TakenAt)
	}
	if len(got.Members) != 0 || len(got.Bills) != 0 {
		t.Fatalf("unexpected entities in empty store")
	}
}
