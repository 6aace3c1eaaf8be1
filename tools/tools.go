//go:build tools
// +build tools

// Package tools includes the list of tools used in the project.
package tools

// $ go generate -tags tools tools/tools.go
import (
	//go:generate go install github.com/client9/misspell/cmd/misspell
	_ "github.com/client9/misspell/cmd/misspell"

	//go:generate go install github.com/timakin/bodyclose
	_ "github.com/timakin/bodyclose"
)
