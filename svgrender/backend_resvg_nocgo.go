//go:build !cgo

package svgrender

import "errors"

// NewResvgBackend is unavailable without cgo; use the default backend or
// ExecBackend instead.
func NewResvgBackend() (Backend, error) {
	return nil, errors.New("resvg backend requires a cgo build")
}
