package server

import (
	"context"

	"github.com/go-logr/logr"
	"google.golang.org/grpc"

	"github.com/ib-77/flow/internal/customers"
	"github.com/ib-77/flow/pkg/flow"
	"github.com/ib-77/flow/pkg/flow/boundary"
)

// ServiceName is the gRPC service the demo exposes. Messages travel with the
// boundary JSON codec, so there is no generated code behind it.
const ServiceName = "flow.demo.Customers"

// Full method names of the demo service.
const (
	MethodAddCustomer           = "/" + ServiceName + "/AddCustomer"
	MethodCustomerSearch        = "/" + ServiceName + "/CustomerSearch"
	MethodRaiseServiceException = "/" + ServiceName + "/RaiseServiceException"
	MethodApproveApplication    = "/" + ServiceName + "/ApproveApplication"
)

type grpcService struct {
	svc Customers
	in  *Instruments
}

// NewGRPCServer builds a server that serves svc and recovers panicking
// handlers into codes.Unknown.
func NewGRPCServer(svc Customers, in *Instruments, log logr.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		logCalls(log),
		boundary.UnaryServerRecovery(boundary.WithLogger(log)),
	))
	s := grpc.NewServer(opts...)
	s.RegisterService(&serviceDesc, &grpcService{svc: svc, in: in})
	return s
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		unary("AddCustomer", func(s *grpcService, ctx context.Context, req customers.AddCustomerRequest) flow.Result[flow.None] {
			return Observe(ctx, s.in, "AddCustomer", func(ctx context.Context) flow.Result[flow.None] {
				return s.svc.AddCustomer(ctx, req)
			})
		}),
		unary("CustomerSearch", func(s *grpcService, ctx context.Context, req customers.SearchRequest) flow.Result[customers.SearchResponse] {
			return Observe(ctx, s.in, "CustomerSearch", func(ctx context.Context) flow.Result[customers.SearchResponse] {
				return s.svc.Search(ctx, req)
			})
		}),
		unary("RaiseServiceException", func(s *grpcService, ctx context.Context, _ flow.None) flow.Result[flow.None] {
			return Observe(ctx, s.in, "RaiseServiceException", s.svc.RaiseException)
		}),
		unary("ApproveApplication", func(s *grpcService, ctx context.Context, req customers.ApproveRequest) flow.Result[flow.None] {
			return Observe(ctx, s.in, "ApproveApplication", func(ctx context.Context) flow.Result[flow.None] {
				return s.svc.Approve(ctx, req)
			})
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "flow/demo/customers",
}

// unary adapts a typed handler to grpc.MethodDesc. The Result itself is the
// response message, so failures travel as data and the status stays OK.
func unary[Req, T any](name string, call func(s *grpcService, ctx context.Context, req Req) flow.Result[T]) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(*grpcService), ctx, *req.(*Req)), nil
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func logCalls(log logr.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		callLog := log.WithValues("method", info.FullMethod)
		callLog.V(1).Info("call received")
		return handler(logr.NewContext(ctx, callLog), req)
	}
}
