package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListBills returns every bill with its splits and payments embedded.
func (c *Client) ListBills(ctx context.Context) ([]Bill, error) {
	var bills []Bill
	if err := c.do(ctx, http.MethodGet, "/bills", nil, nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// GetBill returns one bill by id.
func (c *Client) GetBill(ctx context.Context, id string) (Bill, error) {
	var bill Bill
	if err := c.do(ctx, http.MethodGet, "/bills/"+url.PathEscape(id), nil, nil, &bill); err != nil {
		return Bill{}, err
	}
	return bill, nil
}

// CreateBill creates a bill with its splits.
func (c *Client) CreateBill(ctx context.Context, in CreateBillInput) (Bill, error) {
	if err := in.Validate(); err != nil {
		return Bill{}, err
	}
	var bill Bill
	if err := c.do(ctx, http.MethodPost, "/bills", nil, in, &bill); err != nil {
		return Bill{}, err
	}
	return bill, nil
}

// UpdateBill replaces a bill's mutable fields.
func (c *Client) UpdateBill(ctx context.Context, id string, in UpdateBillInput) (Bill, error) {
	if err := in.Validate(); err != nil {
		return Bill{}, err
	}
	var bill Bill
	if err := c.do(ctx, http.MethodPut, "/bills/"+url.PathEscape(id), nil, in, &bill); err != nil {
		return Bill{}, err
	}
	return bill, nil
}

// DeleteBill deletes a bill and its dependent splits and payments.
func (c *Client) DeleteBill(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bills/"+url.PathEscape(id), nil, nil, nil)
}
