// Package driving defines the inbound ports of the application core:
// interfaces exposed to the CLI and other hosting surfaces.
package driving
