package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ib-77/flow/internal/customers"
	"github.com/ib-77/flow/pkg/flow"
	"github.com/ib-77/flow/pkg/flow/boundary"
)

// HTTPClient calls the JSON API of the demo server.
type HTTPClient struct {
	base string
	hc   *http.Client
}

// NewHTTP returns a client for the server at baseURL. A nil hc means
// http.DefaultClient.
func NewHTTP(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{base: strings.TrimRight(baseURL, "/"), hc: hc}
}

func (c *HTTPClient) Search(ctx context.Context, companyName string) flow.Result[customers.SearchResponse] {
	path := "/customers?companyName=" + url.QueryEscape(companyName)
	return call[customers.SearchResponse](ctx, c, http.MethodGet, path, nil)
}

func (c *HTTPClient) AddCustomer(ctx context.Context, cust customers.Customer) flow.Result[flow.None] {
	return call[flow.None](ctx, c, http.MethodPost, "/customers", customers.AddCustomerRequest{CustomerData: cust})
}

func (c *HTTPClient) RaiseException(ctx context.Context) flow.Result[flow.None] {
	return call[flow.None](ctx, c, http.MethodGet, "/customers/raise", nil)
}

func (c *HTTPClient) Approve(ctx context.Context, id int) flow.Result[flow.None] {
	return call[flow.None](ctx, c, http.MethodPut, fmt.Sprintf("/customers/%d/approve", id), nil)
}

func call[T any](ctx context.Context, c *HTTPClient, method, path string, body any) flow.Result[T] {
	req := flow.TryToFlow(func() (*http.Request, error) {
		return newRequest(ctx, method, c.base+path, body)
	}, func(err error) flow.Result[*http.Request] {
		return flow.Failed[*http.Request](flow.JSONFailure("Unable to build the request.", flow.WithException(err)))
	})

	return flow.Bind(req, func(req *http.Request) flow.Result[T] {
		return boundary.DecodeJSON[T](c.hc.Do(req))
	})
}

func newRequest(ctx context.Context, method, target string, body any) (*http.Request, error) {
	if body == nil {
		return http.NewRequestWithContext(ctx, method, target, nil)
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
