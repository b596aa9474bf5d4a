//go:build tools

package tools

import (
	// Used by CI.
	_ "golang.org/x/lint/golint"
	// Used by CI.
	_ "mvdan.cc/gofumpt"
)
