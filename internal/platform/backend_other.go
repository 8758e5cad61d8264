//go:build !linux

package platform

import (
	"fmt"
	"runtime"
)

// NewDisplayBackend reports that no window-system backend exists for this OS.
func NewDisplayBackend(display, prop string) (Backend, error) {
	return nil, fmt.Errorf("no window-system backend for %s; use --width with a static backend", runtime.GOOS)
}
