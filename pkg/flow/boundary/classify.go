package boundary

import (
	"errors"
	"net"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ib-77/flow/pkg/flow"
)

// Classify converts an error raised at a transport boundary into a failure.
// The original error is kept as the failure's exception. A nil error yields
// nil and a *flow.Failure is returned as is.
func Classify(err error) *flow.Failure {
	if err == nil {
		return nil
	}

	var f *flow.Failure
	if errors.As(err, &f) {
		return f
	}

	if flow.IsCancellation(err) {
		return flow.TaskCancellationFailure("the call was cancelled", flow.WithException(err))
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.OK {
		return classifyStatus(st, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return flow.NetworkFailure("a network problem occurred",
			flow.WithCanRetry(netErr.Timeout()),
			flow.WithException(err))
	}

	return flow.MessagingFailure("A problem occurred", flow.WithException(err))
}

func classifyStatus(st *status.Status, err error) *flow.Failure {
	code := st.Code()
	opts := []flow.FailureOption{
		flow.WithDetail("grpc_code", code.String()),
		flow.WithSubTypeID(int(code)),
		flow.WithException(err),
	}

	switch code {
	case codes.Unavailable, codes.ResourceExhausted:
		return flow.ConnectionFailure(st.Message(), append(opts, flow.WithCanRetry(true))...)
	case codes.DeadlineExceeded:
		return flow.TaskCancellationFailure(st.Message(), append(opts, flow.WithCanRetry(true))...)
	case codes.Canceled:
		return flow.TaskCancellationFailure(st.Message(), opts...)
	case codes.NotFound:
		return flow.ItemNotFoundFailure(st.Message(), opts...)
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return flow.ValidationFailure(st.Message(), opts...)
	case codes.PermissionDenied, codes.Unauthenticated:
		return flow.SecurityFailure(st.Message(), opts...)
	case codes.AlreadyExists:
		return flow.ConstraintFailure(st.Message(), opts...)
	default:
		return flow.GrpcFailure(st.Message(), opts...)
	}
}
