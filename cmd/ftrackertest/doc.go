// Package ftrackertest contains black-box acceptance tests for the ftracker
// binary and its sources.
//
//	go build -o bin/ftracker ./cmd/ftracker
//	go test ./cmd/ftrackertest -binary-path=bin/ftracker -source-path=.
package ftrackertest
