package boundary

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ib-77/flow/pkg/flow"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantKind  flow.Kind
		wantRetry bool
	}{
		{"unavailable", status.Error(codes.Unavailable, "down"), flow.KindConnectionFailure, true},
		{"exhausted", status.Error(codes.ResourceExhausted, "slow down"), flow.KindConnectionFailure, true},
		{"deadline", status.Error(codes.DeadlineExceeded, "late"), flow.KindTaskCancellationFailure, true},
		{"canceled status", status.Error(codes.Canceled, "stop"), flow.KindTaskCancellationFailure, false},
		{"not found", status.Error(codes.NotFound, "gone"), flow.KindItemNotFoundFailure, false},
		{"invalid", status.Error(codes.InvalidArgument, "bad"), flow.KindValidationFailure, false},
		{"denied", status.Error(codes.PermissionDenied, "no"), flow.KindSecurityFailure, false},
		{"unauthenticated", status.Error(codes.Unauthenticated, "who"), flow.KindSecurityFailure, false},
		{"exists", status.Error(codes.AlreadyExists, "dup"), flow.KindConstraintFailure, false},
		{"unknown status", status.Error(codes.Unknown, "boom"), flow.KindGrpcFailure, false},
		{"context canceled", context.Canceled, flow.KindTaskCancellationFailure, false},
		{"wrapped deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), flow.KindTaskCancellationFailure, false},
		{"net timeout", timeoutError{}, flow.KindNetworkFailure, true},
		{"net refused", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, flow.KindNetworkFailure, false},
		{"generic", errors.New("generic error"), flow.KindMessagingFailure, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := Classify(tt.err)
			require.NotNil(t, f)
			assert.Equal(t, tt.wantKind, f.Kind())
			assert.Equal(t, tt.wantRetry, f.CanRetry())
			assert.Equal(t, tt.err, f.Exception())
		})
	}
}

func TestClassify_StatusDetails(t *testing.T) {
	t.Parallel()

	f := Classify(status.Error(codes.NotFound, "customer 7"))
	assert.Equal(t, "customer 7", f.Reason())
	assert.Equal(t, int(codes.NotFound), f.SubTypeID())
	code, _ := f.Detail("grpc_code")
	assert.Equal(t, "NotFound", code)
}

func TestClassify_NilAndFailures(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Classify(nil))

	f := flow.DomainFailure("already converted")
	assert.Same(t, f, Classify(fmt.Errorf("wrapped: %w", f)))
}

type logSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *logSink) write(prefix, args string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, args)
}

func (s *logSink) all() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.lines, "\n")
}

func TestGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sink := &logSink{}
	log := funcr.New(sink.write, funcr.Options{})

	ok := Guard(ctx, func(context.Context) (flow.Result[int], error) { return flow.Success(1), nil }, WithLogger(log))
	assert.True(t, ok.IsSuccess())
	assert.Empty(t, sink.all())

	failedByServer := flow.Failed[int](flow.ValidationFailure("bad input"))
	got := Guard(ctx, func(context.Context) (flow.Result[int], error) { return failedByServer, nil })
	assert.True(t, flow.IsKind(got.Err(), flow.KindValidationFailure), "failures from the far side pass through")

	r := Guard(ctx, func(context.Context) (flow.Result[int], error) {
		return flow.Result[int]{}, status.Error(codes.Unavailable, "down")
	}, WithLogger(log))
	assert.True(t, flow.IsKind(r.Err(), flow.KindConnectionFailure))
	assert.Contains(t, sink.all(), `"kind"="ConnectionFailure"`)

	r = Guard(ctx, func(context.Context) (flow.Result[int], error) { panic("transport blew up") })
	assert.True(t, flow.IsKind(r.Err(), flow.KindMessagingFailure))
	var pe *flow.PanicError
	assert.ErrorAs(t, r.Err(), &pe)
}

func TestGuard_WithClassifier(t *testing.T) {
	t.Parallel()

	r := Guard(context.Background(), func(context.Context) (flow.Result[string], error) {
		return flow.Result[string]{}, errors.New("x")
	}, WithClassifier(func(err error) *flow.Failure {
		return flow.UnknownFailure("custom", flow.WithException(err))
	}))
	assert.True(t, flow.IsKind(r.Err(), flow.KindUnknownFailure))
}

func TestGuard_ClassifierReturningNilFallsBack(t *testing.T) {
	t.Parallel()

	onlyTimeouts := func(err error) *flow.Failure {
		if errors.Is(err, context.DeadlineExceeded) {
			return flow.ServiceFailure("too slow", flow.WithException(err))
		}
		return nil
	}

	var r flow.Result[string]
	require.NotPanics(t, func() {
		r = Guard(context.Background(), func(context.Context) (flow.Result[string], error) {
			return flow.Result[string]{}, status.Error(codes.NotFound, "gone")
		}, WithClassifier(onlyTimeouts))
	})
	assert.True(t, flow.IsKind(r.Err(), flow.KindItemNotFoundFailure))

	r = Guard(context.Background(), func(context.Context) (flow.Result[string], error) {
		return flow.Result[string]{}, context.DeadlineExceeded
	}, WithClassifier(onlyTimeouts))
	assert.True(t, flow.IsKind(r.Err(), flow.KindServiceFailure))
}

func TestJSONCodec(t *testing.T) {
	t.Parallel()

	c := JSONCodec{}
	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(flow.Failed[int](flow.ItemNotFoundFailure("nope")))
	require.NoError(t, err)

	var out flow.Result[int]
	require.NoError(t, c.Unmarshal(data, &out))
	assert.True(t, flow.IsKind(out.Err(), flow.KindItemNotFoundFailure))
}

type fakeConn struct {
	invoke func(method string, args, reply any) error
}

func (c fakeConn) Invoke(_ context.Context, method string, args, reply any, _ ...grpc.CallOption) error {
	return c.invoke(method, args, reply)
}

func (fakeConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("streams are not supported")
}

func TestInvoke(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var gotMethod string
	conn := fakeConn{invoke: func(method string, args, reply any) error {
		gotMethod = method
		data, err := JSONCodec{}.Marshal(flow.Success(args.(string) + "!"))
		if err != nil {
			return err
		}
		return JSONCodec{}.Unmarshal(data, reply)
	}}

	v, ok := Invoke[string, string](ctx, conn, "/svc/Echo", "hi").Value()
	assert.True(t, ok)
	assert.Equal(t, "hi!", v)
	assert.Equal(t, "/svc/Echo", gotMethod)

	down := fakeConn{invoke: func(string, any, any) error { return status.Error(codes.Unavailable, "no server") }}
	r := Invoke[string, string](ctx, down, "/svc/Echo", "hi")
	assert.True(t, flow.IsKind(r.Err(), flow.KindConnectionFailure))
}

func TestHTTP_RoundTrip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			_ = WriteJSON(w, flow.Success([]string{"a", "b"}))
			return
		}
		_ = WriteJSON(w, flow.Failed[[]string](flow.ItemNotFoundFailure("no rows")))
	}))
	defer srv.Close()

	v, ok := DecodeJSON[[]string](http.Get(srv.URL + "/ok")).Value()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)

	r := DecodeJSON[[]string](http.Get(srv.URL + "/missing"))
	assert.True(t, flow.IsKind(r.Err(), flow.KindItemNotFoundFailure))
}

func TestDecodeJSON_TransportErrors(t *testing.T) {
	t.Parallel()

	r := DecodeJSON[int](nil, errors.New("connection refused"))
	require.True(t, r.IsFailure())
	assert.True(t, flow.IsKind(r.Err(), flow.KindUnknownFailure))
	assert.True(t, r.Err().(*flow.Failure).CanRetry())

	srv := httptest.NewServer(RecoverHTTP(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("An unhandled error has occurred")
	})))
	defer srv.Close()

	r = DecodeJSON[int](http.Get(srv.URL))
	assert.True(t, flow.IsKind(r.Err(), flow.KindUnknownFailure))
	assert.Contains(t, errors.Unwrap(r.Err()).Error(), "status 500")
}

func TestUnaryServerRecovery(t *testing.T) {
	t.Parallel()

	interceptor := UnaryServerRecovery()
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Raise"}

	resp, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("Unhandled exception")
	})
	assert.Nil(t, resp)
	assert.Equal(t, codes.Unknown, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "Unhandled exception")

	resp, err = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "fine", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "fine", resp)
}
