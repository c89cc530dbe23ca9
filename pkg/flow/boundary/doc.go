// Package boundary adapts transports to flow.Result.
//
// Outbound calls are wrapped with Guard, Invoke or DecodeJSON so that
// transport errors surface as failed Results instead of errors or panics.
// Classify decides the failure kind. Inbound, WriteJSON encodes a Result
// for HTTP and JSONCodec carries Results over gRPC without generated code;
// UnaryServerRecovery and RecoverHTTP keep a panicking handler from
// crashing the server.
package boundary
