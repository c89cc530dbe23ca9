package flow

// Outcome is the type-erased view of a Result, for code such as logging or
// metrics that does not care about the success type.
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// Err returns the failure as an error, or nil on success
	Err() error
}

// FailureKind returns the kind of the failure behind o, or KindNoFailure for
// a successful outcome.
func FailureKind(o Outcome) Kind {
	if o.IsSuccess() {
		return KindNoFailure
	}
	if f, ok := o.Err().(*Failure); ok {
		return f.Kind()
	}
	return KindUnknownFailure
}
