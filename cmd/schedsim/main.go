package main

import (
	"context"
	"fmt"
	"os"

	"github.com/viant/schedsim/tracing"
)

func main() {
	root := NewRootCmd()

	err := root.Execute()
	_ = tracing.Shutdown(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
