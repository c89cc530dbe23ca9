package customers

import (
	"context"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/ib-77/flow/pkg/flow"
	"github.com/ib-77/flow/pkg/flow/solo"
)

const (
	raiseReason    = "An unhandled error has occurred"
	approveReason  = "Failed credit checks."
	approveChecker = "the Boss"
)

// Validator decides whether a customer may be stored.
type Validator interface {
	Validate(c Customer) flow.Result[Customer]
}

// Service holds the customer command and query handlers. Every handler
// returns a Result; only RaiseException panics.
type Service struct {
	store     Store
	validator Validator
	log       logr.Logger
}

func NewService(store Store, validator Validator, log logr.Logger) *Service {
	return &Service{store: store, validator: validator, log: log}
}

// AddCustomer validates the customer and stores it. Customers without an id
// get a generated one.
func (s *Service) AddCustomer(ctx context.Context, req AddCustomerRequest) flow.Result[flow.None] {
	c := req.CustomerData
	if c.ID == "" {
		c.ID = newCustomerID()
	}

	validated := solo.Then(c, s.validator.Validate)
	stored := solo.OnSuccessTry(validated, func(c Customer) (flow.None, error) {
		return flow.NoneValue, s.store.Add(ctx, c)
	}, DBErrorHandler[flow.None])

	return solo.OnFailureDo(stored, func(f *flow.Failure) {
		s.log.V(1).Info("add customer rejected", "customerID", c.ID, "kind", f.Kind().String(), "reason", f.Reason())
	})
}

// Search returns the customers whose company name contains the requested text.
func (s *Service) Search(ctx context.Context, req SearchRequest) flow.Result[SearchResponse] {
	found := flow.TryToFlow(func() ([]Customer, error) {
		return s.store.SearchByCompany(ctx, req.CompanyName)
	}, DBErrorHandler[[]Customer])

	return solo.ReturnAs(found, func(cs []Customer) SearchResponse {
		return SearchResponse{SearchResults: cs}
	})
}

// Approve runs the credit checks. The checks never pass.
func (s *Service) Approve(_ context.Context, req ApproveRequest) flow.Result[flow.None] {
	s.log.V(1).Info("approval requested", "id", req.ID)
	return flow.Failed[flow.None](NotApprovedFailure(approveReason, approveChecker))
}

// RaiseException panics. It exercises the recovery of the transports.
func (s *Service) RaiseException(context.Context) flow.Result[flow.None] {
	panic(raiseReason)
}

func newCustomerID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:5])
}
