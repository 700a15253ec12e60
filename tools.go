//go:build tools

// Package tools pins binary dependencies used for linting.
package tools

import (
	_ "github.com/edaniels/golinters/cmd/combined"
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
)
