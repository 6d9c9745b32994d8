// Command statictest is a vet tool bundling the analyzers the project is
// checked with:
//
//	go vet -vettool=$(pwd)/bin/statictest ./...
package main

//go:generate go build -o=../../bin/statictest

import (
	"golang.org/x/tools/go/analysis/unitchecker"
)

func main() {
	unitchecker.Main(analyzers()...)
}
