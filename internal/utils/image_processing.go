package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	productImageMaxSide   = 1600
	productImageThumbSize = 400
	productImageQuality   = 85
)

var allowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
	"image/heic": true,
	"image/heif": true,
}

// ProcessedImage is the pair of JPEG derivatives stored per product photo.
type ProcessedImage struct {
	Full      []byte
	Thumbnail []byte
	Width     int
	Height    int
	Format    string
}

func ValidateImageContentType(contentType string) bool {
	ct := strings.TrimSpace(strings.ToLower(contentType))
	if ct == "" {
		return false
	}
	return allowedImageContentTypes[ct]
}

func DetectContentType(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	return http.DetectContentType(sample)
}

// ProcessProductImage decodes the upload, applies EXIF orientation, and
// produces a bounded full-size JPEG plus a square thumbnail.
func ProcessProductImage(data []byte) (ProcessedImage, error) {
	if len(data) == 0 {
		return ProcessedImage{}, errors.New("empty image data")
	}

	img, format, err := decodeAndAutoRotate(data)
	if err != nil {
		return ProcessedImage{}, err
	}

	bounds := img.Bounds()
	out := ProcessedImage{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}

	full := imaging.Fit(img, productImageMaxSide, productImageMaxSide, imaging.Lanczos)
	if out.Full, err = encodeJPEG(full); err != nil {
		return ProcessedImage{}, err
	}

	thumb := imaging.Fill(img, productImageThumbSize, productImageThumbSize, imaging.Center, imaging.Lanczos)
	if out.Thumbnail, err = encodeJPEG(thumb); err != nil {
		return ProcessedImage{}, err
	}

	return out, nil
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: productImageQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isHeifFamily(data []byte) bool {
	// HEIC/HEIF use ISO BMFF: [size:4][ftyp:4][brand:4]...
	if len(data) < 12 {
		return false
	}
	if string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heix", "hevc", "hevx", "mif1", "msf1", "heif":
		return true
	default:
		return false
	}
}

func decodeAndAutoRotate(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if isHeifFamily(data) {
			if heicImg, heicErr := decodeHEIC(data); heicErr == nil {
				return heicImg, "heic", nil
			}
		}
		return nil, "", err
	}

	// Only JPEGs typically carry EXIF orientation; ignore errors.
	if strings.EqualFold(format, "jpeg") {
		if ex, exErr := exif.Decode(bytes.NewReader(data)); exErr == nil {
			if tag, tagErr := ex.Get(exif.Orientation); tagErr == nil {
				if orient, convErr := tag.Int(0); convErr == nil {
					switch orient {
					case 2:
						img = imaging.FlipH(img)
					case 3:
						img = imaging.Rotate180(img)
					case 4:
						img = imaging.FlipV(img)
					case 5:
						img = imaging.Transpose(img)
					case 6:
						img = imaging.Rotate270(img)
					case 7:
						img = imaging.Transverse(img)
					case 8:
						img = imaging.Rotate90(img)
					}
				}
			}
		}
	}

	return img, format, nil
}
