// Package proto contains the generated gRPC bindings for the loom federation
// wire protocol (served by every cluster) and the control-plane API (served
// by the loom daemon). Regenerate with `make proto` after editing
// federation.proto.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative federation.proto
package proto
