//go:build !debug

package debug

// Enabled is a global flag to fold blocks of code
const Enabled = false

// LogEnabled is always false without the "debug" tag
var LogEnabled = false

// Printf is a no-op without the "debug" tag
func Printf(string, ...interface{}) {}

// Dump is a no-op without the "debug" tag
func Dump(...interface{}) {}
