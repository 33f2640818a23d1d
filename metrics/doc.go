// Package metrics exposes Prometheus collectors for routing runs on a
// dedicated registry.
//
// A *Registry satisfies fuelpath.Observer, so it can be handed straight to
// fuelpath.WithObserver; RecordRoute adds per-route figures after decoding.
// Gatherer returns the underlying registry for an HTTP exporter owned by the
// caller.
package metrics
