package boundary

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ib-77/flow/pkg/flow"
)

// UnaryServerRecovery turns a panicking gRPC handler into a codes.Unknown
// status instead of taking the server down.
func UnaryServerRecovery(opts ...Option) grpc.UnaryServerInterceptor {
	o := newOptions(opts)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				perr := flow.AsError(rec)
				o.log.Error(perr, "grpc handler panicked", "method", info.FullMethod)
				resp, err = nil, status.Error(codes.Unknown, perr.Error())
			}
		}()
		return handler(ctx, req)
	}
}

// RecoverHTTP answers a panicking handler with a plain 500 response. The
// body is not a Result, so clients see it through DecodeJSON as an
// UnknownFailure.
func RecoverHTTP(next http.Handler, opts ...Option) http.Handler {
	o := newOptions(opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				perr := flow.AsError(rec)
				o.log.Error(perr, "http handler panicked", "path", r.URL.Path)
				http.Error(w, perr.Error(), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
