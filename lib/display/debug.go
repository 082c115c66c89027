//go:build gldebug

package display

// Builds tagged gldebug ask the driver for a debug context, which
// enables the GL debug message queue at some performance cost.
const debugContext = true
