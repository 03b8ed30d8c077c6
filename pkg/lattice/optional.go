package lattice

// Optional scalar arguments are expressed as pointers so that "unset" is
// distinguishable from a zero value; an unset argument is never forwarded
// to the native parameter table. These helpers keep call sites short.

// Int returns a pointer to v for optional integer arguments.
func Int(v int) *int { return &v }

// Float returns a pointer to v for optional floating-point arguments.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v for optional flag arguments.
func Bool(v bool) *bool { return &v }

// Str returns a pointer to v for optional string arguments.
func Str(v string) *string { return &v }
