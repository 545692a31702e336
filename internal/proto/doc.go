// Package proto holds the zkp_auth service definition and the Go code
// generated from it. Regenerate after editing zkp_auth.proto:
//
//	go generate ./internal/proto
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative zkp_auth.proto
