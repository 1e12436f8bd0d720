//go:build linux && cgo

package utils

import (
	"bytes"
	"image"

	"github.com/jdeng/goheif"
)

// goheif links against libde265, so HEIC support is limited to cgo builds.
func decodeHEIC(data []byte) (image.Image, error) {
	return goheif.Decode(bytes.NewReader(data))
}
