package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/limaJavier/advisories/pkg/model"
)

const (
	exitFailure    = 1
	exitValidation = 2
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "advisories: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, model.ErrValidation) {
		return exitValidation
	}
	return exitFailure
}
