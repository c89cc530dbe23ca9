package boundary

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"

	"github.com/ib-77/flow/pkg/flow"
)

// CodecName is the gRPC content subtype under which JSONCodec is registered.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// JSONCodec is a gRPC codec that carries messages as JSON, so Results and
// plain Go structs cross the wire without generated code.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string {
	return CodecName
}

// CallOption selects JSONCodec for a call.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}

// Invoke performs a unary call whose response is a Result. Transport errors
// are classified into the failed Result.
func Invoke[Req, T any](ctx context.Context, cc grpc.ClientConnInterface, method string, req Req,
	opts ...grpc.CallOption) flow.Result[T] {

	return Guard(ctx, func(ctx context.Context) (flow.Result[T], error) {
		var out flow.Result[T]
		if err := cc.Invoke(ctx, method, req, &out, append([]grpc.CallOption{CallOption()}, opts...)...); err != nil {
			return flow.Result[T]{}, err
		}
		return out, nil
	})
}
