package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListMortgages returns every mortgage with its splits embedded.
func (c *Client) ListMortgages(ctx context.Context) ([]Mortgage, error) {
	var mortgages []Mortgage
	if err := c.do(ctx, http.MethodGet, "/mortgages", nil, nil, &mortgages); err != nil {
		return nil, err
	}
	return mortgages, nil
}

// GetMortgage returns one mortgage by id.
func (c *Client) GetMortgage(ctx context.Context, id string) (Mortgage, error) {
	var mortgage Mortgage
	if err := c.do(ctx, http.MethodGet, "/mortgages/"+url.PathEscape(id), nil, nil, &mortgage); err != nil {
		return Mortgage{}, err
	}
	return mortgage, nil
}

// CreateMortgage creates a mortgage.
func (c *Client) CreateMortgage(ctx context.Context, in CreateMortgageInput) (Mortgage, error) {
	if err := in.Validate(); err != nil {
		return Mortgage{}, err
	}
	var mortgage Mortgage
	if err := c.do(ctx, http.MethodPost, "/mortgages", nil, in, &mortgage); err != nil {
		return Mortgage{}, err
	}
	return mortgage, nil
}

// UpdateMortgage replaces a mortgage's mutable fields.
func (c *Client) UpdateMortgage(ctx context.Context, id string, in UpdateMortgageInput) (Mortgage, error) {
	if err := in.Validate(); err != nil {
		return Mortgage{}, err
	}
	var mortgage Mortgage
	if err := c.do(ctx, http.MethodPut, "/mortgages/"+url.PathEscape(id), nil, in, &mortgage); err != nil {
		return Mortgage{}, err
	}
	return mortgage, nil
}

// DeleteMortgage deletes a mortgage and its payment history.
func (c *Client) DeleteMortgage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/mortgages/"+url.PathEscape(id), nil, nil, nil)
}

// ListMortgagePayments returns every recorded mortgage payment with its
// principal/interest/escrow breakdown.
func (c *Client) ListMortgagePayments(ctx context.Context) ([]MortgagePayment, error) {
	var payments []MortgagePayment
	if err := c.do(ctx, http.MethodGet, "/mortgage-payments", nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CreateMortgagePayment records a mortgage payment.
func (c *Client) CreateMortgagePayment(ctx context.Context, in CreateMortgagePaymentInput) (MortgagePayment, error) {
	if err := in.Validate(); err != nil {
		return MortgagePayment{}, err
	}
	var payment MortgagePayment
	if err := c.do(ctx, http.MethodPost, "/mortgage-payments", nil, in, &payment); err != nil {
		return MortgagePayment{}, err
	}
	return payment, nil
}

// DeleteMortgagePayment removes a recorded mortgage payment.
func (c *Client) DeleteMortgagePayment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/mortgage-payments/"+url.PathEscape(id), nil, nil, nil)
}
