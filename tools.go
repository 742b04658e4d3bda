//go:build tools
// +build tools

// Package voice_relay pins mockgen so `go generate ./...` resolves it from go.mod.
package voice_relay

import (
	_ "go.uber.org/mock/mockgen"
)
