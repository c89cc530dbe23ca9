package client

import (
	"context"
	"fmt"
	"io"

	"github.com/ib-77/flow/internal/customers"
	"github.com/ib-77/flow/pkg/flow"
	"github.com/ib-77/flow/pkg/flow/async"
)

// Scenario walks a client through the demo calls and prints what came back.
type Scenario struct {
	Client Customers
	Out    io.Writer
	// Intn drives the flaky connectivity check of the search step.
	Intn func(n int) int
}

// Run performs search, add, raise and approve in that order. Each step is an
// asynchronous pipeline awaited before the next one starts.
func (s Scenario) Run(ctx context.Context, data customers.Customer) {
	s.Search(ctx, "Al")
	s.Add(ctx, data)
	s.Raise(ctx)
	s.Approve(ctx, 123)
}

func (s Scenario) Search(ctx context.Context, companyName string) []customers.Customer {
	online := s.online(ctx, false)
	found := async.OnSuccess(ctx, online, func(ctx context.Context, _ bool) flow.Result[customers.SearchResponse] {
		return s.Client.Search(ctx, companyName)
	})
	found = async.OnFailureDo(ctx, found, s.printFailure)

	results := async.Finally(ctx, found,
		func(*flow.Failure) []customers.Customer { return nil },
		func(r customers.SearchResponse) []customers.Customer { return r.SearchResults })

	s.printf("Result count: %d\n", len(results))
	if len(results) > 0 {
		s.printf("First result: %+v\n\n", results[0])
	} else {
		s.printf("First result: []\n\n")
	}
	return results
}

func (s Scenario) Add(ctx context.Context, data customers.Customer) flow.Result[flow.None] {
	added := async.OnSuccess(ctx, s.online(ctx, true), func(ctx context.Context, _ bool) flow.Result[flow.None] {
		return s.Client.AddCustomer(ctx, data)
	})
	added = async.OnFailureDo(ctx, added, func(_ context.Context, f *flow.Failure) {
		reason := f.Reason()
		if f.Kind() == flow.KindValidationFailure {
			for field, msg := range f.Details() {
				reason = fmt.Sprintf("%s\n%s : %s", reason, field, msg)
				break
			}
		}
		s.printf("%s: %s\n\n", f.Kind(), reason)
	})
	added = async.OnSuccessDo(ctx, added, func(context.Context, flow.None) {
		s.printf("Customer added\n\n")
	})
	return added.Await(ctx)
}

func (s Scenario) Raise(ctx context.Context) flow.Result[flow.None] {
	raised := async.OnSuccess(ctx, s.online(ctx, true), func(ctx context.Context, _ bool) flow.Result[flow.None] {
		return s.Client.RaiseException(ctx)
	})
	return async.OnFailureDo(ctx, raised, func(ctx context.Context, f *flow.Failure) {
		s.printFailure(ctx, f)
		s.printf("\n")
	}).Await(ctx)
}

func (s Scenario) Approve(ctx context.Context, id int) flow.Result[flow.None] {
	approved := async.OnSuccess(ctx, s.online(ctx, true), func(ctx context.Context, _ bool) flow.Result[flow.None] {
		return s.Client.Approve(ctx, id)
	})
	return async.OnFailureDo(ctx, approved, func(_ context.Context, f *flow.Failure) {
		msg := f.Reason()
		if who, ok := customers.RejectedBy(f); ok {
			msg = fmt.Sprintf("Rejected: %s, Checked by: %s", f.Reason(), who)
		}
		s.printf("%s: %s\n", f.Kind(), msg)
	}).Await(ctx)
}

func (s Scenario) online(ctx context.Context, alwaysOn bool) *async.Future[bool] {
	return async.Go(ctx, func(context.Context) flow.Result[bool] {
		return HasInternetConnection(alwaysOn, s.Intn)
	})
}

func (s Scenario) printFailure(_ context.Context, f *flow.Failure) {
	s.printf("%s: %s\n", f.Kind(), f.Reason())
}

func (s Scenario) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.Out, format, args...)
}
