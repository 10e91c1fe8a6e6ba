package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"hearth/internal/api"
	"hearth/internal/cli"
	"hearth/internal/config"
	"hearth/internal/core"
	"hearth/internal/format"
	"hearth/internal/log"
	"hearth/internal/services"
	"hearth/internal/snapshot"
	"hearth/internal/worker"
)

const usage = `hearth - household finance tracker

Usage:
  hearth [command]

Commands:
  dashboard    Household overview (default)
  members      List household members
  bills        List bills with splits and payments
  recurring    List recurring bills
  mortgages    List mortgages
  financed     List financed expenses and their schedules
  add-member   Add a member (-name, -email)
  add-bill     Add a bill (-name, -amount, -due, -split)
  pay          Mark a financed installment paid (-expense, -payment)
  unpay        Revert a financed installment to unpaid (-expense, -payment)
  snapshot     Pull a one-shot snapshot into the local store
`

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)
	client := cli.NewClient(logger, cfg)

	args := os.Args[1:]
	command := "dashboard"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	ctx := context.Background()
	var err error

	switch command {
	case "dashboard":
		err = runDashboard(ctx, client, cfg, logger)
	case "members":
		err = runMembers(ctx, client)
	case "bills":
		err = runBills(ctx, client)
	case "recurring":
		err = runRecurring(ctx, client)
	case "mortgages":
		err = runMortgages(ctx, client)
	case "financed":
		err = runFinanced(ctx, client)
	case "add-member":
		err = runAddMember(ctx, client, args)
	case "add-bill":
		err = runAddBill(ctx, client, args)
	case "pay":
		err = runTogglePayment(ctx, client, args, true)
	case "unpay":
		err = runTogglePayment(ctx, client, args, false)
	case "snapshot":
		err = runSnapshot(ctx, client, cfg, logger)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runDashboard(ctx context.Context, client *api.Client, cfg *config.Config, logger *log.Logger) error {
	svc := services.NewDashboardService(client, logger)
	overview, err := svc.Overview(ctx)
	if err != nil {
		if api.IsTransport(err) {
			logger.Warn("Backend unreachable, falling back to local snapshot", log.FieldError, err.Error())
			return printOfflineDashboard(ctx, cfg, logger)
		}
		return err
	}

	fmt.Printf("Household: %d members\n\n", len(overview.Members))
	fmt.Printf("Bills: %s billed, %s paid\n",
		format.FormatCents(overview.TotalBilledCents),
		format.FormatCents(overview.TotalPaidCents))
	fmt.Printf("Monthly commitments: %s\n\n", format.FormatCents(overview.MonthlyCommitmentCents))

	if len(overview.Upcoming) == 0 {
		fmt.Println("Nothing upcoming.")
		return nil
	}

	fmt.Println("Upcoming:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, item := range overview.Upcoming {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
			item.DueDate.Format("Jan 2"),
			item.Name,
			format.FormatCents(item.AmountCents),
			item.Schedule)
	}
	return w.Flush()
}

func printOfflineDashboard(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	repo := cli.InitSnapshotStore(logger, cfg.SnapshotDBPath)
	defer repo.Close()

	snap, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	if snap.TakenAt.IsZero() {
		return fmt.Errorf("backend unreachable and no local snapshot exists; run 'hearth snapshot' while online")
	}

	fmt.Printf("OFFLINE - snapshot from %s\n\n", snap.TakenAt.Local().Format("January 2, 2006 15:04"))
	fmt.Printf("Household: %d members\n", len(snap.Members))
	fmt.Printf("Bills: %d, recurring: %d, mortgages: %d, financed: %d\n",
		len(snap.Bills), len(snap.RecurringBills), len(snap.Mortgages), len(snap.FinancedExpenses))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, rb := range snap.RecurringBills {
		if !rb.Active {
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n",
			rb.Name,
			format.FormatCents(rb.AmountCents),
			format.RecurrenceSentence(rb.DayOfMonth, rb.Frequency))
	}
	return w.Flush()
}

func runMembers(ctx context.Context, client *api.Client) error {
	members, err := client.ListMembers(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSINCE")
	for _, m := range members {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, format.FormatDate(m.CreatedAt))
	}
	return w.Flush()
}

func runBills(ctx context.Context, client *api.Client) error {
	bills, err := client.ListBills(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAMOUNT\tDUE\tSPLIT\tPAID")
	for _, b := range bills {
		var paid int64
		for _, p := range b.Payments {
			paid += p.AmountCents
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s (%d)\t%s\n",
			b.ID, b.Name,
			format.FormatCents(b.AmountCents),
			format.FormatDate(b.DueDate),
			b.SplitMode, len(b.Splits),
			format.FormatCents(paid))
	}
	return w.Flush()
}

func runRecurring(ctx context.Context, client *api.Client) error {
	bills, err := client.ListRecurringBills(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAMOUNT\tSCHEDULE\tACTIVE")
	for _, rb := range bills {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
			rb.ID, rb.Name,
			format.FormatCents(rb.AmountCents),
			format.RecurrenceSentence(rb.DayOfMonth, rb.Frequency),
			rb.Active)
	}
	return w.Flush()
}

func runMortgages(ctx context.Context, client *api.Client) error {
	mortgages, err := client.ListMortgages(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRINCIPAL\tMONTHLY\tSCHEDULE")
	for _, m := range mortgages {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Name,
			format.FormatCents(m.PrincipalCents),
			format.FormatCents(m.MonthlyPaymentCents),
			format.RecurrenceSentence(m.DueDay, string(core.Monthly)))
	}
	return w.Flush()
}

func runFinanced(ctx context.Context, client *api.Client) error {
	expenses, err := client.ListFinancedExpenses(ctx)
	if err != nil {
		return err
	}
	for _, fe := range expenses {
		fmt.Printf("%s  %s  %s total, %s/month over %d months (from %s)\n",
			fe.ID, fe.Name,
			format.FormatCents(fe.TotalAmountCents),
			format.FormatCents(fe.MonthlyPaymentCents),
			fe.TermMonths,
			format.FormatDate(fe.StartDate))

		payments := fe.Payments
		if len(payments) == 0 {
			payments, err = client.ListFinancedPayments(ctx, fe.ID)
			if err != nil {
				return err
			}
		}
		for _, p := range payments {
			status := " "
			if p.Paid {
				status = "x"
			}
			fmt.Printf("  [%s] %s  %s  %s\n",
				status, p.ID,
				format.FormatDate(p.DueDate, format.WithLayout("2006-01-02")),
				format.FormatCents(p.AmountCents))
		}
	}
	return nil
}

func runAddMember(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-member", flag.ExitOnError)
	name := fs.String("name", "", "member name (required)")
	email := fs.String("email", "", "member email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	member, err := client.CreateMember(ctx, api.CreateMemberInput{Name: *name, Email: *email})
	if err != nil {
		return err
	}
	fmt.Printf("Added member %s (%s)\n", member.Name, member.ID)
	return nil
}

func runAddBill(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-bill", flag.ExitOnError)
	name := fs.String("name", "", "bill name (required)")
	amount := fs.String("amount", "", "amount, e.g. 120.50 (required)")
	due := fs.String("due", "", "due date, YYYY-MM-DD")
	split := fs.String("split", string(core.SplitEqual), "split mode: equal, percent, fixed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cents, err := core.ParseDecimalToCents(*amount)
	if err != nil {
		return fmt.Errorf("amount %q: %w", *amount, err)
	}

	bill, err := client.CreateBill(ctx, api.CreateBillInput{
		Name:        *name,
		AmountCents: cents,
		DueDate:     *due,
		SplitMode:   *split,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added bill %s (%s): %s due %s\n",
		bill.Name, bill.ID,
		format.FormatCents(bill.AmountCents),
		format.FormatDate(bill.DueDate))
	return nil
}

func runTogglePayment(ctx context.Context, client *api.Client, args []string, paid bool) error {
	name := "pay"
	if !paid {
		name = "unpay"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	expenseID := fs.String("expense", "", "financed expense id (required)")
	paymentID := fs.String("payment", "", "installment id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *expenseID == "" || *paymentID == "" {
		return fmt.Errorf("%s requires -expense and -payment", name)
	}

	var (
		payment api.FinancedPayment
		err     error
	)
	if paid {
		payment, err = client.MarkFinancedPaymentPaid(ctx, *expenseID, *paymentID)
	} else {
		payment, err = client.UnmarkFinancedPaymentPaid(ctx, *expenseID, *paymentID)
	}
	if err != nil {
		return err
	}

	state := "unpaid"
	if payment.Paid {
		state = "paid"
	}
	fmt.Printf("Installment %s due %s is now %s\n",
		payment.ID,
		format.FormatDate(payment.DueDate),
		state)
	return nil
}

func runSnapshot(ctx context.Context, client *api.Client, cfg *config.Config, logger *log.Logger) error {
	repo := cli.InitSnapshotStore(logger, cfg.SnapshotDBPath)
	defer repo.Close()

	w := worker.NewSnapshotWorker(client, repo, cfg.SnapshotInterval, logger)
	if err := w.RunOnce(ctx); err != nil {
		return err
	}
	return printSnapshotSummary(ctx, repo)
}

func printSnapshotSummary(ctx context.Context, repo *snapshot.Repository) error {
	snap, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Snapshot taken %s: %d members, %d bills, %d recurring, %d mortgages, %d financed\n",
		snap.TakenAt.Local().Format(time.Kitchen),
		len(snap.Members), len(snap.Bills), len(snap.RecurringBills),
		len(snap.Mortgages), len(snap.FinancedExpenses))
	return nil
}
