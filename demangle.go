package main

import "github.com/ianlancetaylor/demangle"

// demangleFrame maps a raw frame identifier to its display form. Handles
// both C++ and Rust manglings; unmangled names pass through untouched.
func demangleFrame(name string) string {
	return demangle.Filter(name, demangle.NoParams, demangle.NoTemplateParams)
}
