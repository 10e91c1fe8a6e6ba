package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"hearth/internal/api"
	"hearth/internal/core"
	"hearth/internal/format"
	"hearth/internal/log"
)

// Backend is the slice of the API client the dashboard needs. Each call
// is one independent round trip; the dashboard fans out over all of them
// concurrently.
type Backend interface {
	ListMembers(ctx context.Context) ([]api.Member, error)
	ListBills(ctx context.Context) ([]api.Bill, error)
	ListRecurringBills(ctx context.Context) ([]api.RecurringBill, error)
	ListMortgages(ctx context.Context) ([]api.Mortgage, error)
	ListFinancedExpenses(ctx context.Context) ([]api.FinancedExpense, error)
}

var _ Backend = (*api.Client)(nil)

// UpcomingItem is one scheduled obligation on the household calendar.
type UpcomingItem struct {
	Name        string
	AmountCents int64
	DueDate     core.Date
	// Schedule is the human sentence for the recurrence, e.g.
	// "Due on the 19th each month".
	Schedule string
}

// Overview is the composed household position.
type Overview struct {
	Members          []api.Member
	Bills            []api.Bill
	RecurringBills   []api.RecurringBill
	Mortgages        []api.Mortgage
	FinancedExpenses []api.FinancedExpense

	// Upcoming lists scheduled obligations sorted by next due date.
	Upcoming []UpcomingItem

	// TotalBilledCents and TotalPaidCents cover one-off bills.
	TotalBilledCents int64
	TotalPaidCents   int64

	// MonthlyCommitmentCents is the monthly-equivalent sum of active
	// recurring bills, mortgage payments, and financed installments.
	MonthlyCommitmentCents int64
}

// DashboardService assembles the overview from the backend.
type DashboardService struct {
	backend Backend
	logger  *log.Logger
	now     func() time.Time
}

func NewDashboardService(backend Backend, logger *log.Logger) *DashboardService {
	return &DashboardService{
		backend: backend,
		logger:  logger.WithComponent(log.ComponentApp),
		now:     time.Now,
	}
}

// Overview fetches the five entity families concurrently and composes
// the household position. Any single fetch failure fails the whole
// overview; there is no partial rendering.
func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	var o Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		o.Members, err = s.backend.ListMembers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		o.Bills, err = s.backend.ListBills(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		o.RecurringBills, err = s.backend.ListRecurringBills(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		o.Mortgages, err = s.backend.ListMortgages(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		o.FinancedExpenses, err = s.backend.ListFinancedExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	now := s.now()
	s.composeTotals(&o)
	s.composeUpcoming(&o, now)

	s.logger.DebugContext(ctx, "Overview assembled",
		log.FieldCount, len(o.Bills),
		"members", len(o.Members),
		"upcoming", len(o.Upcoming))

	return o, nil
}

func (s *DashboardService) composeTotals(o *Overview) {
	for _, b := range o.Bills {
		o.TotalBilledCents += b.AmountCents
		for _, p := range b.Payments {
			o.TotalPaidCents += p.AmountCents
		}
	}
	for _, rb := range o.RecurringBills {
		if !rb.Active {
			continue
		}
		o.MonthlyCommitmentCents += MonthlyEquivalentCents(rb.AmountCents, core.Frequency(rb.Frequency))
	}
	for _, m := range o.Mortgages {
		o.MonthlyCommitmentCents += m.MonthlyPaymentCents
	}
	for _, fe := range o.FinancedExpenses {
		o.MonthlyCommitmentCents += fe.MonthlyPaymentCents
	}
}

func (s *DashboardService) composeUpcoming(o *Overview, now time.Time) {
	for _, rb := range o.RecurringBills {
		if !rb.Active {
			continue
		}
		checker, err := GetDueChecker(core.Frequency(rb.Frequency))
		if err != nil {
			// Forward-compatible: an unknown frequency renders in the
			// list without a computed date.
			s.logger.Warn("Skipping schedule for unknown frequency",
				log.FieldEntity, log.EntityRecurringBill,
				log.FieldEntityID, rb.ID,
				"frequency", rb.Frequency)
			continue
		}
		o.Upcoming = append(o.Upcoming, UpcomingItem{
			Name:        rb.Name,
			AmountCents: rb.AmountCents,
			DueDate:     checker.NextDue(now, rb.DayOfMonth, anchorMonth(rb.CreatedAt)),
			Schedule:    format.RecurrenceSentence(rb.DayOfMonth, rb.Frequency),
		})
	}

	monthly, _ := GetDueChecker(core.Monthly)
	for _, m := range o.Mortgages {
		o.Upcoming = append(o.Upcoming, UpcomingItem{
			Name:        m.Name,
			AmountCents: m.MonthlyPaymentCents,
			DueDate:     monthly.NextDue(now, m.DueDay, time.January),
			Schedule:    format.RecurrenceSentence(m.DueDay, string(core.Monthly)),
		})
	}

	sort.Slice(o.Upcoming, func(i, j int) bool {
		if o.Upcoming[i].DueDate.Equal(o.Upcoming[j].DueDate.Time) {
			return o.Upcoming[i].Name < o.Upcoming[j].Name
		}
		return o.Upcoming[i].DueDate.Before(o.Upcoming[j].DueDate.Time)
	})
}
