// Package heragen generates mobile-first CRUD pages for the HERA ERP web
// application from a catalog of entity presets.
//
// The generator lives in compiler/gen, the quality gates in compiler/gate
// and the preset catalog in schema/preset. This package holds the errors
// shared between them.
package heragen
