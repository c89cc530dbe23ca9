package customers

import (
	"errors"
	"math/rand/v2"

	"go.uber.org/multierr"

	"github.com/ib-77/flow/pkg/flow"
)

const validationReason = "The following fields failed validation:"

// Check verifies the fields a customer cannot be stored without.
func Check(c Customer) flow.Result[Customer] {
	var err error
	if c.ID == "" {
		err = multierr.Append(err, flow.NewInvalidEntry("Customer id is required.", "customerData", "ID", "Customer Id"))
	}
	if len(c.ID) > 5 {
		err = multierr.Append(err, flow.NewInvalidEntry("Customer id is at most five characters.", "customerData", "ID", "Customer Id"))
	}
	if c.CompanyName == "" {
		err = multierr.Append(err, flow.NewInvalidEntry("Company name is required.", "customerData", "CompanyName", "Company Name"))
	}
	if err == nil {
		return flow.Success(c)
	}
	return flow.Failed[Customer](invalid(multierr.Errors(err)))
}

func invalid(errs []error) *flow.Failure {
	details := make(map[string]string, len(errs))
	for _, err := range errs {
		var entry flow.InvalidEntry
		if errors.As(err, &entry) {
			details[entry.DisplayName] = entry.FailureMessage
			continue
		}
		details[err.Error()] = err.Error()
	}
	return flow.ValidationFailure(validationReason, flow.WithDetails(details))
}

// FakeValidator stands in for real business rules: it rejects one request in
// FailEvery at random.
type FakeValidator struct {
	FailEvery int
	// Intn defaults to math/rand/v2.IntN.
	Intn func(n int) int
}

func (v FakeValidator) Validate(c Customer) flow.Result[Customer] {
	return flow.Bind(Check(c), func(c Customer) flow.Result[Customer] {
		if v.FailEvery < 1 {
			return flow.Success(c)
		}
		intn := v.Intn
		if intn == nil {
			intn = rand.IntN
		}
		if intn(v.FailEvery) == 0 {
			return flow.Failed[Customer](flow.ValidationFailure(validationReason,
				flow.WithDetails(map[string]string{"Some field name": "Wrong value."})))
		}
		return flow.Success(c)
	})
}
