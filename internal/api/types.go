package api

// Wire records exchanged verbatim with the backend. Identifiers are
// opaque strings, timestamps stay as the server's strings (render them
// with format.FormatDate), and every monetary field is integer minor
// units. The client trusts the server's shape and adds no validation on
// responses.

// Member is a household member that bills can be split across.
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// Split allocates a proportion or a fixed value of a bill to one member.
// Value is interpreted by the server according to the bill's splitMode:
// cents for fixed splits, basis points for percent splits, ignored for
// equal splits.
type Split struct {
	ID        string `json:"id"`
	BillID    string `json:"billId"`
	MemberID  string `json:"memberId"`
	Value     int64  `json:"value"`
	CreatedAt string `json:"createdAt"`
}

// Allocation records how much of an actual payment was attributed to one
// member.
type Allocation struct {
	ID          string `json:"id"`
	PaymentID   string `json:"paymentId"`
	MemberID    string `json:"memberId"`
	AmountCents int64  `json:"amountCents"`
	CreatedAt   string `json:"createdAt"`
}

// Payment is a recorded payment against a bill.
type Payment struct {
	ID          string       `json:"id"`
	BillID      string       `json:"billId"`
	AmountCents int64        `json:"amountCents"`
	PaidDate    string       `json:"paidDate"`
	Note        string       `json:"note,omitempty"`
	CreatedAt   string       `json:"createdAt"`
	Allocations []Allocation `json:"allocations,omitempty"`
}

// Bill is a one-off bill. Responses embed its splits and, where the
// server includes them, its payments.
type Bill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AmountCents int64     `json:"amountCents"`
	DueDate     string    `json:"dueDate"`
	SplitMode   string    `json:"splitMode"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt,omitempty"`
	Splits      []Split   `json:"splits,omitempty"`
	Payments    []Payment `json:"payments,omitempty"`
}

// RecurringSplit mirrors Split for a recurring bill template.
type RecurringSplit struct {
	ID              string `json:"id"`
	RecurringBillID string `json:"recurringBillId"`
	MemberID        string `json:"memberId"`
	Value           int64  `json:"value"`
	CreatedAt       string `json:"createdAt"`
}

// RecurringBill is a template that generates dated bill instances on a
// schedule (dayOfMonth + frequency).
type RecurringBill struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	AmountCents int64            `json:"amountCents"`
	DayOfMonth  int              `json:"dayOfMonth"`
	Frequency   string           `json:"frequency"`
	SplitMode   string           `json:"splitMode"`
	Active      bool             `json:"active"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt,omitempty"`
	Splits      []RecurringSplit `json:"splits,omitempty"`
}

// MortgageSplit mirrors Split for a mortgage.
type MortgageSplit struct {
	ID         string `json:"id"`
	MortgageID string `json:"mortgageId"`
	MemberID   string `json:"memberId"`
	Value      int64  `json:"value"`
	CreatedAt  string `json:"createdAt"`
}

// Mortgage is a recurring home-loan obligation.
type Mortgage struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Lender              string          `json:"lender,omitempty"`
	PrincipalCents      int64           `json:"principalCents"`
	InterestRateBps     int64           `json:"interestRateBps"`
	MonthlyPaymentCents int64           `json:"monthlyPaymentCents"`
	DueDay              int             `json:"dueDay"`
	SplitMode           string          `json:"splitMode"`
	CreatedAt           string          `json:"createdAt"`
	UpdatedAt           string          `json:"updatedAt,omitempty"`
	Splits              []MortgageSplit `json:"splits,omitempty"`
}

// PaymentBreakdown is the principal/interest/escrow attribution of one
// mortgage payment, computed server-side.
type PaymentBreakdown struct {
	PrincipalCents int64 `json:"principalCents"`
	InterestCents  int64 `json:"interestCents"`
	EscrowCents    int64 `json:"escrowCents"`
}

// MortgagePayment is a recorded payment against a mortgage.
type MortgagePayment struct {
	ID          string           `json:"id"`
	MortgageID  string           `json:"mortgageId"`
	AmountCents int64            `json:"amountCents"`
	PaidDate    string           `json:"paidDate"`
	Breakdown   PaymentBreakdown `json:"breakdown"`
	CreatedAt   string           `json:"createdAt"`
}

// FinancedSplit mirrors Split for a financed expense.
type FinancedSplit struct {
	ID                string `json:"id"`
	FinancedExpenseID string `json:"financedExpenseId"`
	MemberID          string `json:"memberId"`
	Value             int64  `json:"value"`
	CreatedAt         string `json:"createdAt"`
}

// FinancedPayment is one installment of a financed expense's payment
// schedule. The schedule itself is generated by the server; the client
// only retrieves it and toggles paid state.
type FinancedPayment struct {
	ID                string `json:"id"`
	FinancedExpenseID string `json:"financedExpenseId"`
	DueDate           string `json:"dueDate"`
	AmountCents       int64  `json:"amountCents"`
	Paid              bool   `json:"paid"`
	PaidDate          string `json:"paidDate,omitempty"`
	CreatedAt         string `json:"createdAt"`
}

// FinancedExpense is a purchase paid off in installments.
type FinancedExpense struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	TotalAmountCents    int64             `json:"totalAmountCents"`
	MonthlyPaymentCents int64             `json:"monthlyPaymentCents"`
	TermMonths          int               `json:"termMonths"`
	InterestRateBps     int64             `json:"interestRateBps"`
	StartDate           string            `json:"startDate"`
	SplitMode           string            `json:"splitMode"`
	CreatedAt           string            `json:"createdAt"`
	UpdatedAt           string            `json:"updatedAt,omitempty"`
	Splits              []FinancedSplit   `json:"splits,omitempty"`
	Payments            []FinancedPayment `json:"payments,omitempty"`
}
