// Package snapshot persists a local copy of the backend's entity
// families so the dashboard stays readable when the backend is
// unreachable. Each table stores a few indexed columns plus the verbatim
// JSON document; a snapshot run replaces everything in one transaction.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"hearth/internal/api"
)

const metaKeyTakenAt = "taken_at"

// Snapshot is one full pull of the backend's state.
type Snapshot struct {
	Members          []api.Member
	Bills            []api.Bill
	RecurringBills   []api.RecurringBill
	Mortgages        []api.Mortgage
	FinancedExpenses []api.FinancedExpense
	TakenAt          time.Time
}

// Repository is the sqlite-backed snapshot store.
type Repository struct {
	db *sql.DB
}

// NewRepository opens (creating if needed) the snapshot database and
// brings its schema up to date.
func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Replace swaps the stored snapshot for the given one in a single
// transaction. A failed run leaves the previous snapshot intact.
func (r *Repository) Replace(ctx context.Context, snap Snapshot) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	fetchedAt := snap.TakenAt.UTC().Format(time.RFC3339)

	for _, table := range []string{"members", "bills", "recurring_bills", "mortgages", "financed_expenses"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, m := range snap.Members {
		if err = insertDocument(ctx, tx,
			`INSERT INTO members (id, name, document, fetched_at) VALUES (?, ?, ?, ?)`,
			m, m.ID, m.Name, fetchedAt); err != nil {
			return err
		}
	}
	for _, b := range snap.Bills {
		if err = insertDocument(ctx, tx,
			`INSERT INTO bills (id, name, amount_cents, due_date, document, fetched_at) VALUES (?, ?, ?, ?, ?, ?)`,
			b, b.ID, b.Name, b.AmountCents, b.DueDate, fetchedAt); err != nil {
			return err
		}
	}
	for _, rb := range snap.RecurringBills {
		if err = insertDocument(ctx, tx,
			`INSERT INTO recurring_bills (id, name, amount_cents, day_of_month, frequency, active, document, fetched_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rb, rb.ID, rb.Name, rb.AmountCents, rb.DayOfMonth, rb.Frequency, boolToInt(rb.Active), fetchedAt); err != nil {
			return err
		}
	}
	for _, m := range snap.Mortgages {
		if err = insertDocument(ctx, tx,
			`INSERT INTO mortgages (id, name, monthly_payment_cents, due_day, document, fetched_at) VALUES (?, ?, ?, ?, ?, ?)`,
			m, m.ID, m.Name, m.MonthlyPaymentCents, m.DueDay, fetchedAt); err != nil {
			return err
		}
	}
	for _, fe := range snap.FinancedExpenses {
		if err = insertDocument(ctx, tx,
			`INSERT INTO financed_expenses (id, name, monthly_payment_cents, term_months, document, fetched_at) VALUES (?, ?, ?, ?, ?, ?)`,
			fe, fe.ID, fe.Name, fe.MonthlyPaymentCents, fe.TermMonths, fetchedAt); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		metaKeyTakenAt, fetchedAt); err != nil {
		return fmt.Errorf("store snapshot meta: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// insertDocument marshals the entity and runs the insert with the
// document appended before fetched_at.
func insertDocument(ctx context.Context, tx *sql.Tx, query string, entity any, args ...any) error {
	doc, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	// document slots in as the second-to-last placeholder
	fetchedAt := args[len(args)-1]
	args = append(args[:len(args)-1], string(doc), fetchedAt)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// Load reads the stored snapshot back. A store that never took a
// snapshot returns a zero Snapshot and no error.
func (r *Repository) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	if err := loadDocuments(ctx, r.db, "members", &snap.Members); err != nil {
		return Snapshot{}, err
	}
	if err := loadDocuments(ctx, r.db, "bills", &snap.Bills); err != nil {
		return Snapshot{}, err
	}
	if err := loadDocuments(ctx, r.db, "recurring_bills", &snap.RecurringBills); err != nil {
		return Snapshot{}, err
	}
	if err := loadDocuments(ctx, r.db, "mortgages", &snap.Mortgages); err != nil {
		return Snapshot{}, err
	}
	if err := loadDocuments(ctx, r.db, "financed_expenses", &snap.FinancedExpenses); err != nil {
		return Snapshot{}, err
	}

	var takenAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM snapshot_meta WHERE key = ?`, metaKeyTakenAt).Scan(&takenAt)
	switch {
	case err == sql.ErrNoRows:
		// never snapshotted
	case err != nil:
		return Snapshot{}, fmt.Errorf("load snapshot meta: %w", err)
	default:
		if t, perr := time.Parse(time.RFC3339, takenAt); perr == nil {
			snap.TakenAt = t
		}
	}

	return snap, nil
}

func loadDocuments[T any](ctx context.Context, db *sql.DB, table string, out *[]T) error {
	rows, err := db.QueryContext(ctx, "SELECT document FROM "+table+" ORDER BY id")
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		var entity T
		if err := json.Unmarshal([]byte(doc), &entity); err != nil {
			return fmt.Errorf("unmarshal %s document: %w", table, err)
		}
		*out = append(*out, entity)
	}
	return rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
