package customers

import (
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/ib-77/flow/pkg/flow"
)

const (
	constraintReason  = "A database constraint violation has occurred due to a possible duplicate identifier. Please check the data and try again."
	connectionReason  = "Unable to connect to the sqlite database"
	unexpectedDBError = "A problem has occurred, please try again"
)

// ClassifyDBError maps a store error to a failure. Constraint violations are
// reported as such, any other sqlite error as a lost connection.
func ClassifyDBError(err error) *flow.Failure {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code == sqlite3.ErrConstraint {
			return flow.ConstraintFailure(constraintReason, flow.WithException(err))
		}
		return flow.ConnectionFailure(connectionReason, flow.WithException(err))
	}
	return flow.UnknownFailure(unexpectedDBError, flow.WithCanRetry(true), flow.WithException(err))
}

// DBErrorHandler is the error boundary handler for store calls.
func DBErrorHandler[T any](err error) flow.Result[T] {
	return flow.Failed[T](ClassifyDBError(err))
}
