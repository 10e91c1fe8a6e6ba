package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListPayments returns every recorded bill payment with allocations.
func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := c.do(ctx, http.MethodGet, "/payments", nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CreatePayment records a payment against a bill.
func (c *Client) CreatePayment(ctx context.Context, in CreatePaymentInput) (Payment, error) {
	if err := in.Validate(); err != nil {
		return Payment{}, err
	}
	var payment Payment
	if err := c.do(ctx, http.MethodPost, "/payments", nil, in, &payment); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

// DeletePayment removes a recorded payment and its allocations.
func (c *Client) DeletePayment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/payments/"+url.PathEscape(id), nil, nil, nil)
}
