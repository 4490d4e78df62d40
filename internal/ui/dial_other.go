//go:build !linux

package ui

// open is a no-op on non-Linux platforms.
func (d *Dial) open() {}
