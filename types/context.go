// Package types holds shared data passed between the CLI entry point and
// its subcommands.
package types

// DefaultVersion is used when no build-time version was injected.
const DefaultVersion = "dev"

// AppContext carries application-wide state into command Run methods.
type AppContext struct {
	Version string
}
