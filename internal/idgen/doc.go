// Package idgen issues report and comparison identifiers. Identifiers are
// opaque strings; tests may replace NewFunc to make them predictable.
package idgen
