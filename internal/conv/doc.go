// Package conv defines the element-type contract shared by the vector
// packages.
//
// Every vector element satisfies Number: any integer or floating-point type,
// including named types built on them. Helpers here bridge the few places
// where the element type has to be routed through float64, such as taking a
// square root.
//
// For integral element types the float64 round trip truncates toward zero,
// matching Go's conversion rules.
package conv
