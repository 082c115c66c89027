//go:build !gldebug

package display

const debugContext = false
