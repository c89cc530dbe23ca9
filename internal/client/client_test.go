package client

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/ib-77/flow/internal/customers"
	"github.com/ib-77/flow/internal/server"
	"github.com/ib-77/flow/pkg/flow"
)

func TestMain(m *testing.M) {
	if err := customers.RegisterFailures(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var acme = customers.Customer{ID: "ALFKI", CompanyName: "ACME", ContactName: "Road", ContactTitle: "Runner"}

func newService(t *testing.T) *customers.Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s", filepath.Join(t.TempDir(), "customers.db"))
	store, err := customers.OpenSQLite(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	valid := customers.FakeValidator{FailEvery: 4, Intn: func(int) int { return 1 }}
	return customers.NewService(store, valid, logr.Discard())
}

func httpClient(t *testing.T) Customers {
	t.Helper()
	srv := httptest.NewServer(server.NewHTTPHandler(newService(t), nil, nil, logr.Discard()))
	t.Cleanup(srv.Close)
	return NewHTTP(srv.URL+"/", srv.Client())
}

func grpcClient(t *testing.T) Customers {
	t.Helper()
	s := server.NewGRPCServer(newService(t), nil, logr.Discard())
	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	c, conn, err := DialGRPC("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return c
}

func TestClients(t *testing.T) {
	t.Parallel()

	transports := map[string]func(t *testing.T) Customers{
		"http": httpClient,
		"grpc": grpcClient,
	}
	for name, connect := range transports {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			c := connect(t)

			found, ok := c.Search(ctx, "Al").Value()
			require.True(t, ok)
			require.Len(t, found.SearchResults, 1)
			assert.Equal(t, "ALFKI", found.SearchResults[0].ID)

			dup := c.AddCustomer(ctx, acme)
			assert.True(t, flow.IsKind(dup.Err(), flow.KindConstraintFailure))

			assert.True(t, c.AddCustomer(ctx, customers.Customer{ID: "ACME", CompanyName: "ACME"}).IsSuccess())
			found, _ = c.Search(ctx, "ACME").Value()
			assert.Len(t, found.SearchResults, 1)

			raised := c.RaiseException(ctx)
			require.True(t, raised.IsFailure())

			approved := c.Approve(ctx, 123)
			require.True(t, approved.IsFailure())
			who, ok := customers.RejectedBy(approved.Err().(*flow.Failure))
			assert.True(t, ok)
			assert.Equal(t, "the Boss", who)
		})
	}
}

func TestHTTPClient_ServerDown(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	r := NewHTTP(url, nil).Search(context.Background(), "Al")
	require.True(t, r.IsFailure())
	f := r.Err().(*flow.Failure)
	assert.Equal(t, flow.KindUnknownFailure, f.Kind())
	assert.True(t, f.CanRetry())
}

func TestHasInternetConnection(t *testing.T) {
	t.Parallel()

	assert.True(t, HasInternetConnection(true, func(int) int { return 0 }).IsSuccess())
	assert.True(t, HasInternetConnection(false, func(int) int { return 1 }).IsSuccess())

	r := HasInternetConnection(false, func(int) int { return 0 })
	assert.True(t, flow.IsKind(r.Err(), flow.KindInternetConnectionFailure))
}

func TestScenario(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := Scenario{Client: httpClient(t), Out: &out, Intn: func(int) int { return 1 }}
	s.Run(context.Background(), acme)

	got := out.String()
	assert.Contains(t, got, "Result count: 1")
	assert.Contains(t, got, "ConstraintFailure: A database constraint violation")
	assert.Contains(t, got, "UnknownFailure: A problem has occurred")
	assert.Contains(t, got, "NotApprovedFailure: Rejected: Failed credit checks., Checked by: the Boss")
}

func TestScenario_Offline(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := Scenario{Client: NewHTTP("http://127.0.0.1:1", nil), Out: &out, Intn: func(int) int { return 0 }}
	results := s.Search(context.Background(), "Al")

	assert.Empty(t, results)
	assert.Contains(t, out.String(), "InternetConnectionFailure: No internet connection - randomly set!")
	assert.Contains(t, out.String(), "First result: []")
}
