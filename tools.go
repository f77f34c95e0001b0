//go:build tools
// +build tools

// Package tools pins the code generators invoked through go generate.
package guild_warden

import (
	_ "go.uber.org/mock/mockgen"
)
