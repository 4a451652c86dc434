package silt

import _ "embed"

// Version is the library version, embedded from the VERSION file at build time.
//
//go:embed VERSION
var Version string
