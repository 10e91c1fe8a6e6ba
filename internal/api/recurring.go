package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListRecurringBills returns every recurring bill template.
func (c *Client) ListRecurringBills(ctx context.Context) ([]RecurringBill, error) {
	var bills []RecurringBill
	if err := c.do(ctx, http.MethodGet, "/recurring-bills", nil, nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// GetRecurringBill returns one recurring bill by id.
func (c *Client) GetRecurringBill(ctx context.Context, id string) (RecurringBill, error) {
	var bill RecurringBill
	if err := c.do(ctx, http.MethodGet, "/recurring-bills/"+url.PathEscape(id), nil, nil, &bill); err != nil {
		return RecurringBill{}, err
	}
	return bill, nil
}

// CreateRecurringBill creates a recurring bill template.
func (c *Client) CreateRecurringBill(ctx context.Context, in CreateRecurringBillInput) (RecurringBill, error) {
	if err := in.Validate(); err != nil {
		return RecurringBill{}, err
	}
	var bill RecurringBill
	if err := c.do(ctx, http.MethodPost, "/recurring-bills", nil, in, &bill); err != nil {
		return RecurringBill{}, err
	}
	return bill, nil
}

// UpdateRecurringBill replaces a recurring bill's mutable fields.
func (c *Client) UpdateRecurringBill(ctx context.Context, id string, in UpdateRecurringBillInput) (RecurringBill, error) {
	if err := in.Validate(); err != nil {
		return RecurringBill{}, err
	}
	var bill RecurringBill
	if err := c.do(ctx, http.MethodPut, "/recurring-bills/"+url.PathEscape(id), nil, in, &bill); err != nil {
		return RecurringBill{}, err
	}
	return bill, nil
}

// DeleteRecurringBill deletes a recurring bill template.
func (c *Client) DeleteRecurringBill(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/recurring-bills/"+url.PathEscape(id), nil, nil, nil)
}
