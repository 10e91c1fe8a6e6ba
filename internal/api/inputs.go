package api

import (
	"fmt"

	"hearth/internal/core"
)

// Typed create/update payloads: the creatable/updatable field subset of
// each entity, without server-generated ids and timestamps. Validate
// catches obviously bad input before it costs a round trip; the server
// remains the authority.

// SplitInput declares one member's share when creating or updating a
// splittable entity. Value follows the entity's splitMode (see Split).
type SplitInput struct {
	MemberID string `json:"memberId"`
	Value    int64  `json:"value"`
}

// CreateMemberInput creates a household member.
type CreateMemberInput struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func (in CreateMemberInput) Validate() error {
	return core.ValidateName(in.Name)
}

// CreateBillInput creates a one-off bill with its splits.
type CreateBillInput struct {
	Name        string       `json:"name"`
	AmountCents int64        `json:"amountCents"`
	DueDate     string       `json:"dueDate"`
	SplitMode   string       `json:"splitMode"`
	Splits      []SplitInput `json:"splits,omitempty"`
}

func (in CreateBillInput) Validate() error {
	if err := core.ValidateName(in.Name); err != nil {
		return err
	}
	if err := (core.Money{Cents: in.AmountCents}).Validate(); err != nil {
		return err
	}
	return core.SplitMode(in.SplitMode).Validate()
}

// UpdateBillInput replaces a bill's mutable fields. Splits, when
// present, replace the existing set.
type UpdateBillInput struct {
	Name        string       `json:"name"`
	AmountCents int64        `json:"amountCents"`
	DueDate     string       `json:"dueDate"`
	SplitMode   string       `json:"splitMode"`
	Splits      []SplitInput `json:"splits,omitempty"`
}

func (in UpdateBillInput) Validate() error {
	return CreateBillInput(in).Validate()
}

// AllocationInput attributes part of a payment to one member.
type AllocationInput struct {
	MemberID    string `json:"memberId"`
	AmountCents int64  `json:"amountCents"`
}

// CreatePaymentInput records a payment against a bill.
type CreatePaymentInput struct {
	BillID      string            `json:"billId"`
	AmountCents int64             `json:"amountCents"`
	PaidDate    string            `json:"paidDate"`
	Note        string            `json:"note,omitempty"`
	Allocations []AllocationInput `json:"allocations,omitempty"`
}

func (in CreatePaymentInput) Validate() error {
	if in.BillID == "" {
		return fmt.Errorf("payment: %w", errMissingParent)
	}
	return (core.Money{Cents: in.AmountCents}).Validate()
}

// CreateRecurringBillInput creates a recurring bill template.
type CreateRecurringBillInput struct {
	Name        string       `json:"name"`
	AmountCents int64        `json:"amountCents"`
	DayOfMonth  int          `json:"dayOfMonth"`
	Frequency   string       `json:"frequency"`
	SplitMode   string       `json:"splitMode"`
	Splits      []SplitInput `json:"splits,omitempty"`
}

func (in CreateRecurringBillInput) Validate() error {
	if err := core.ValidateName(in.Name); err != nil {
		return err
	}
	if err := (core.Money{Cents: in.AmountCents}).Validate(); err != nil {
		return err
	}
	if err := core.ValidateDayOfMonth(in.DayOfMonth); err != nil {
		return err
	}
	if err := core.Frequency(in.Frequency).Validate(); err != nil {
		return err
	}
	return core.SplitMode(in.SplitMode).Validate()
}

// UpdateRecurringBillInput replaces a recurring bill's mutable fields.
type UpdateRecurringBillInput struct {
	Name        string       `json:"name"`
	AmountCents int64        `json:"amountCents"`
	DayOfMonth  int          `json:"dayOfMonth"`
	Frequency   string       `json:"frequency"`
	SplitMode   string       `json:"splitMode"`
	Active      bool         `json:"active"`
	Splits      []SplitInput `json:"splits,omitempty"`
}

func (in UpdateRecurringBillInput) Validate() error {
	return CreateRecurringBillInput{
		Name:        in.Name,
		AmountCents: in.AmountCents,
		DayOfMonth:  in.DayOfMonth,
		Frequency:   in.Frequency,
		SplitMode:   in.SplitMode,
	}.Validate()
}

// CreateMortgageInput creates a mortgage.
type CreateMortgageInput struct {
	Name                string       `json:"name"`
	Lender              string       `json:"lender,omitempty"`
	PrincipalCents      int64        `json:"principalCents"`
	InterestRateBps     int64        `json:"interestRateBps"`
	MonthlyPaymentCents int64        `json:"monthlyPaymentCents"`
	DueDay              int          `json:"dueDay"`
	SplitMode           string       `json:"splitMode"`
	Splits              []SplitInput `json:"splits,omitempty"`
}

func (in CreateMortgageInput) Validate() error {
	if err := core.ValidateName(in.Name); err != nil {
		return err
	}
	if err := (core.Money{Cents: in.MonthlyPaymentCents}).Validate(); err != nil {
		return err
	}
	if err := core.ValidateDayOfMonth(in.DueDay); err != nil {
		return err
	}
	if in.InterestRateBps < 0 {
		return core.ErrInvalidAmount
	}
	return core.SplitMode(in.SplitMode).Validate()
}

// UpdateMortgageInput replaces a mortgage's mutable fields.
type UpdateMortgageInput struct {
	Name                string       `json:"name"`
	Lender              string       `json:"lender,omitempty"`
	PrincipalCents      int64        `json:"principalCents"`
	InterestRateBps     int64        `json:"interestRateBps"`
	MonthlyPaymentCents int64        `json:"monthlyPaymentCents"`
	DueDay              int          `json:"dueDay"`
	SplitMode           string       `json:"splitMode"`
	Splits              []SplitInput `json:"splits,omitempty"`
}

func (in UpdateMortgageInput) Validate() error {
	return CreateMortgageInput(in).Validate()
}

// CreateMortgagePaymentInput records a mortgage payment. The breakdown
// is optional; the server fills it from the amortization schedule when
// absent.
type CreateMortgagePaymentInput struct {
	MortgageID  string            `json:"mortgageId"`
	AmountCents int64             `json:"amountCents"`
	PaidDate    string            `json:"paidDate"`
	Breakdown   *PaymentBreakdown `json:"breakdown,omitempty"`
}

func (in CreateMortgagePaymentInput) Validate() error {
	if in.MortgageID == "" {
		return fmt.Errorf("mortgage payment: %w", errMissingParent)
	}
	return (core.Money{Cents: in.AmountCents}).Validate()
}

// CreateFinancedExpenseInput creates a financed expense. The server
// generates the installment schedule from these terms.
type CreateFinancedExpenseInput struct {
	Name                string       `json:"name"`
	TotalAmountCents    int64        `json:"totalAmountCents"`
	MonthlyPaymentCents int64        `json:"monthlyPaymentCents,omitempty"`
	TermMonths          int          `json:"termMonths"`
	InterestRateBps     int64        `json:"interestRateBps"`
	StartDate           string       `json:"startDate"`
	SplitMode           string       `json:"splitMode"`
	Splits              []SplitInput `json:"splits,omitempty"`
}

func (in CreateFinancedExpenseInput) Validate() error {
	if err := core.ValidateName(in.Name); err != nil {
		return err
	}
	if err := (core.Money{Cents: in.TotalAmountCents}).Validate(); err != nil {
		return err
	}
	if in.TermMonths < 1 {
		return fmt.Errorf("financed expense: term must be at least one month")
	}
	if in.InterestRateBps < 0 {
		return core.ErrInvalidAmount
	}
	return core.SplitMode(in.SplitMode).Validate()
}

// UpdateFinancedExpenseInput replaces a financed expense's mutable
// fields.
type UpdateFinancedExpenseInput struct {
	Name                string       `json:"name"`
	TotalAmountCents    int64        `json:"totalAmountCents"`
	MonthlyPaymentCents int64        `json:"monthlyPaymentCents,omitempty"`
	TermMonths          int          `json:"termMonths"`
	InterestRateBps     int64        `json:"interestRateBps"`
	StartDate           string       `json:"startDate"`
	SplitMode           string       `json:"splitMode"`
	Splits              []SplitInput `json:"splits,omitempty"`
}

func (in UpdateFinancedExpenseInput) Validate() error {
	return CreateFinancedExpenseInput(in).Validate()
}
