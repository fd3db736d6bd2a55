package client

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"

	"github.com/registroapp/conciliador/pkg/reconcile"
	"github.com/registroapp/conciliador/pkg/suggest"
)

// Client talks to the reconciliation HTTP API.
type Client struct {
	cl      *req.Client
	baseURL string
}

func NewClient(
	baseURL string,
	cl *req.Client,
) *Client {
	return &Client{
		cl:      cl,
		baseURL: baseURL,
	}
}

func (c *Client) ListMovements(ctx context.Context) ([]*reconcile.MovementView, error) {
	var movements []*reconcile.MovementView

	resp, err := c.cl.R().
		SetContext(ctx).
		SetSuccessResult(&movements).
		Get(c.baseURL + "/api/reconciliation/movements")
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	return movements, nil
}

func (c *Client) ListUnreconciled(ctx context.Context) ([]*reconcile.MovementView, error) {
	var movements []*reconcile.MovementView

	resp, err := c.cl.R().
		SetContext(ctx).
		SetSuccessResult(&movements).
		Get(c.baseURL + "/api/reconciliation/movements/unreconciled")
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	return movements, nil
}

func (c *Client) Suggestions(
	ctx context.Context,
	movementID string,
) ([]suggest.Suggestion, error) {
	var apiResp SuggestionsResponse

	resp, err := c.cl.R().
		SetContext(ctx).
		SetSuccessResult(&apiResp).
		Get(fmt.Sprintf("%s/api/reconciliation/movements/%s/suggestions",
			c.baseURL, movementID))
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	return apiResp.Suggestions, nil
}

func (c *Client) Link(
	ctx context.Context,
	request LinkRequest,
) (*reconcile.MovementView, error) {
	var movement reconcile.MovementView

	resp, err := c.cl.R().
		SetContext(ctx).
		SetBodyJsonMarshal(request).
		SetSuccessResult(&movement).
		Post(c.baseURL + "/api/reconciliation/link")
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	return &movement, nil
}

func (c *Client) Unlink(
	ctx context.Context,
	movementID string,
) (*reconcile.MovementView, error) {
	var movement reconcile.MovementView

	resp, err := c.cl.R().
		SetContext(ctx).
		SetSuccessResult(&movement).
		Post(fmt.Sprintf("%s/api/reconciliation/unlink/%s",
			c.baseURL, movementID))
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	return &movement, nil
}

func (c *Client) Stats(ctx context.Context) (*reconcile.Stats, error) {
	var stats reconcile.Stats

	resp, err := c.cl.R().
		SetContext(ctx).
		SetSuccessResult(&stats).
		Get(c.baseURL + "/api/reconciliation/stats")
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	return &stats, nil
}
