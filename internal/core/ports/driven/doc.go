// Package driven defines the outbound ports of the application core:
// interfaces implemented by storage, index, and LLM adapters.
package driven
