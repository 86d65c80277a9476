// Package analysis is the instrumented facade over a social graph that the
// CLI and the HTTP server share.
//
// A Service owns one *core.Graph. Mutations take the service lock
// exclusively; algorithm runs share it, so a traversal never observes a
// half-applied mutation batch and Replace/Load swap the whole graph at once.
//
// Every call runs in an OpenTelemetry span from the "socialgraph.analysis"
// tracer, is counted and timed in Prometheus, and is logged at debug level
// through zap. Graph and algorithm packages stay free of all three.
package analysis
