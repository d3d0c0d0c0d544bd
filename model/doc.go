// Package model contains the in-memory representation of the simulator input
// and output.
//
// Process workloads and their reconstructed timelines live in the `process`
// sub-package, resource-allocation snapshots used by the Banker's safety check
// live in `resource`, simulation reports kept by the runtime live in `report`,
// and the error kinds shared by every service are declared in `types`.
package model
