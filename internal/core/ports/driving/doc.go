// Package driving defines the inbound port interfaces through which the
// CLI, TUI and MCP adapters drive the core services.
package driving
