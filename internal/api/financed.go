package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListFinancedExpenses returns every financed expense with splits and,
// where the server embeds it, the installment schedule.
func (c *Client) ListFinancedExpenses(ctx context.Context) ([]FinancedExpense, error) {
	var expenses []FinancedExpense
	if err := c.do(ctx, http.MethodGet, "/financed-expenses", nil, nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// GetFinancedExpense returns one financed expense by id.
func (c *Client) GetFinancedExpense(ctx context.Context, id string) (FinancedExpense, error) {
	var expense FinancedExpense
	if err := c.do(ctx, http.MethodGet, "/financed-expenses/"+url.PathEscape(id), nil, nil, &expense); err != nil {
		return FinancedExpense{}, err
	}
	return expense, nil
}

// CreateFinancedExpense creates a financed expense; the server generates
// its installment schedule from the submitted terms.
func (c *Client) CreateFinancedExpense(ctx context.Context, in CreateFinancedExpenseInput) (FinancedExpense, error) {
	if err := in.Validate(); err != nil {
		return FinancedExpense{}, err
	}
	var expense FinancedExpense
	if err := c.do(ctx, http.MethodPost, "/financed-expenses", nil, in, &expense); err != nil {
		return FinancedExpense{}, err
	}
	return expense, nil
}

// UpdateFinancedExpense replaces a financed expense's mutable fields.
func (c *Client) UpdateFinancedExpense(ctx context.Context, id string, in UpdateFinancedExpenseInput) (FinancedExpense, error) {
	if err := in.Validate(); err != nil {
		return FinancedExpense{}, err
	}
	var expense FinancedExpense
	if err := c.do(ctx, http.MethodPut, "/financed-expenses/"+url.PathEscape(id), nil, in, &expense); err != nil {
		return FinancedExpense{}, err
	}
	return expense, nil
}

// DeleteFinancedExpense deletes a financed expense and its schedule.
func (c *Client) DeleteFinancedExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/financed-expenses/"+url.PathEscape(id), nil, nil, nil)
}

// ListFinancedPayments retrieves the server-generated installment
// schedule for one financed expense.
func (c *Client) ListFinancedPayments(ctx context.Context, expenseID string) ([]FinancedPayment, error) {
	var payments []FinancedPayment
	endpoint := "/financed-expenses/" + url.PathEscape(expenseID) + "/payments"
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// MarkFinancedPaymentPaid marks one installment paid and returns the
// updated installment.
func (c *Client) MarkFinancedPaymentPaid(ctx context.Context, expenseID, paymentID string) (FinancedPayment, error) {
	return c.toggleFinancedPayment(ctx, expenseID, paymentID, "mark-paid")
}

// UnmarkFinancedPaymentPaid reverts one installment to unpaid and
// returns the updated installment.
func (c *Client) UnmarkFinancedPaymentPaid(ctx context.Context, expenseID, paymentID string) (FinancedPayment, error) {
	return c.toggleFinancedPayment(ctx, expenseID, paymentID, "unmark-paid")
}

func (c *Client) toggleFinancedPayment(ctx context.Context, expenseID, paymentID, action string) (FinancedPayment, error) {
	var payment FinancedPayment
	endpoint := "/financed-expenses/" + url.PathEscape(expenseID) +
		"/payments/" + url.PathEscape(paymentID) + "/" + action
	if err := c.do(ctx, http.MethodPost, endpoint, nil, nil, &payment); err != nil {
		return FinancedPayment{}, err
	}
	return payment, nil
}
