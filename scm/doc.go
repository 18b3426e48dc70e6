// Package scm is the call boundary of the Simultaneous Clustering Model.
//
// A single call runs four stages in order:
//
//	MarshalInput   host cell {J}{I_j}[N_ij x D]  -> GroupedMatrixSet
//	ParseOptions   host struct (optional)        -> Configuration
//	Invoke         engine call with stdout redirected to the caller's console
//	MarshalOutput  ResultSet                     -> six host values
//
// Adapter.Cluster wires the stages together. Nothing is retained between
// calls; every stage copies the data it hands on.
//
// The clustering itself lives behind the Engine interface. See
// engine/libcluster for the native binding and engine/echo for a synthetic
// engine used in tests and dry runs.
package scm
