// Package policy declares the closed set of CPU scheduling policies supported
// by the simulator together with their parameters.
package policy
