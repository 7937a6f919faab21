// Package preset holds the catalog of entity presets the generator renders
// from, and the registry used to look them up.
//
// The catalog is a literal table compiled into the binary. Additional
// presets can be supplied through an overlay file, which is validated
// against an embedded CUE schema before it is merged.
package preset
