// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// One run reads a plan, builds the dependency graph, rejects cycles, and then
// prints two lines: the single-consumer order, and the simulated completion
// order followed by the tick count.
package app
