// Package banker evaluates resource-allocation snapshots with the Banker's
// algorithm. It reports whether a snapshot is safe, the order in which the
// processes can finish, and whether a resource request may be granted
// without leaving the system unsafe. Caller state is never modified.
package banker
