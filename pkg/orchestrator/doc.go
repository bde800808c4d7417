// Package orchestrator wires the record -> validator -> payload -> sink (Save)
// and record -> document -> renderer -> printer -> sharer (Export) pipelines,
// providing dependency injection friendly helpers for consumers that prefer a
// single entry point.
package orchestrator
