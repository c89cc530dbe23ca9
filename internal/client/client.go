package client

import (
	"context"

	"github.com/ib-77/flow/internal/customers"
	"github.com/ib-77/flow/pkg/flow"
)

// Customers is the client side of the demo service. Implementations never
// return transport errors: every problem arrives as a failed Result.
type Customers interface {
	Search(ctx context.Context, companyName string) flow.Result[customers.SearchResponse]
	AddCustomer(ctx context.Context, c customers.Customer) flow.Result[flow.None]
	RaiseException(ctx context.Context) flow.Result[flow.None]
	Approve(ctx context.Context, id int) flow.Result[flow.None]
}
