// Package tracing wraps OpenTelemetry so that simulation, safety checks and
// resource requests can be traced without the rest of the code base importing
// the upstream packages directly.
package tracing
