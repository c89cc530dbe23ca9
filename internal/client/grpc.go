package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ib-77/flow/internal/customers"
	"github.com/ib-77/flow/internal/server"
	"github.com/ib-77/flow/pkg/flow"
	"github.com/ib-77/flow/pkg/flow/boundary"
)

// GRPCClient calls the demo gRPC service with the boundary JSON codec.
type GRPCClient struct {
	cc grpc.ClientConnInterface
}

func NewGRPC(cc grpc.ClientConnInterface) *GRPCClient {
	return &GRPCClient{cc: cc}
}

// DialGRPC opens a plaintext connection to addr. The caller closes it.
func DialGRPC(addr string, opts ...grpc.DialOption) (*GRPCClient, *grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return NewGRPC(conn), conn, nil
}

func (c *GRPCClient) Search(ctx context.Context, companyName string) flow.Result[customers.SearchResponse] {
	return boundary.Invoke[customers.SearchRequest, customers.SearchResponse](ctx, c.cc,
		server.MethodCustomerSearch, customers.SearchRequest{CompanyName: companyName})
}

func (c *GRPCClient) AddCustomer(ctx context.Context, cust customers.Customer) flow.Result[flow.None] {
	return boundary.Invoke[customers.AddCustomerRequest, flow.None](ctx, c.cc,
		server.MethodAddCustomer, customers.AddCustomerRequest{CustomerData: cust})
}

func (c *GRPCClient) RaiseException(ctx context.Context) flow.Result[flow.None] {
	return boundary.Invoke[flow.None, flow.None](ctx, c.cc, server.MethodRaiseServiceException, flow.NoneValue)
}

func (c *GRPCClient) Approve(ctx context.Context, id int) flow.Result[flow.None] {
	return boundary.Invoke[customers.ApproveRequest, flow.None](ctx, c.cc,
		server.MethodApproveApplication, customers.ApproveRequest{ID: id})
}
