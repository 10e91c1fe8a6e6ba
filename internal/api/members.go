package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListMembers returns every household member.
func (c *Client) ListMembers(ctx context.Context) ([]Member, error) {
	var members []Member
	if err := c.do(ctx, http.MethodGet, "/members", nil, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetMember returns one member by id.
func (c *Client) GetMember(ctx context.Context, id string) (Member, error) {
	var member Member
	if err := c.do(ctx, http.MethodGet, "/members/"+url.PathEscape(id), nil, nil, &member); err != nil {
		return Member{}, err
	}
	return member, nil
}

// CreateMember creates a member. Members have no update operation; the
// backend treats them as create-or-delete records.
func (c *Client) CreateMember(ctx context.Context, in CreateMemberInput) (Member, error) {
	if err := in.Validate(); err != nil {
		return Member{}, err
	}
	var member Member
	if err := c.do(ctx, http.MethodPost, "/members", nil, in, &member); err != nil {
		return Member{}, err
	}
	return member, nil
}

// DeleteMember deletes a member. Deleting an already-deleted member
// surfaces the server's rejection through the uniform error path.
func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/members/"+url.PathEscape(id), nil, nil, nil)
}
