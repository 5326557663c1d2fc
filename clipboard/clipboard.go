// Package clipboard provides system clipboard access.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/fwojciec/diffpreview"
)

// Ensure System implements the Clipboard interface.
var _ diffpreview.Clipboard = (*System)(nil)

// System implements Clipboard using the platform clipboard utility
// (pbcopy, xclip, xsel, wl-copy or clip.exe).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	return clipboard.WriteAll(content)
}

// Available reports whether a clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}
