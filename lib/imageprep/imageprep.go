// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

// Package imageprep normalizes bet-slip screenshots before they are
// sent to the OCR endpoint. Oversized screenshots are downscaled to
// fit 1000x1000 and re-encoded as JPEG, which keeps request bodies
// small without hurting text recognition.
package imageprep

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Screenshot decoding.
	"os"

	"golang.org/x/image/draw"
)

// maxDimension is the bounding box for the downscale. Images already
// inside the box are re-encoded without resampling.
const maxDimension = 1000

// jpegQuality matches what the OCR backend was tuned against.
const jpegQuality = 85

// UnsupportedImageError is returned when the file is not a decodable
// PNG or JPEG.
type UnsupportedImageError struct {
	Path   string
	Reason string
}

func (err *UnsupportedImageError) Error() string {
	return fmt.Sprintf("imageprep: %s: %s", err.Path, err.Reason)
}

// Prepared is a screenshot ready for the OCR request.
type Prepared struct {
	// DataURL is the JPEG payload as a base64 data URL, the format
	// the OCR endpoint expects in its image field.
	DataURL string

	// Width and Height are the dimensions after downscaling.
	Width  int
	Height int

	// OriginalWidth and OriginalHeight are the source dimensions,
	// shown on the import page so the user can tell a downscale
	// happened.
	OriginalWidth  int
	OriginalHeight int
}

// PrepareFile loads a screenshot from disk and prepares it for the
// OCR request.
func PrepareFile(path string) (*Prepared, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imageprep: reading %s: %w", path, err)
	}
	prepared, err := Prepare(payload)
	if err != nil {
		var unsupported *UnsupportedImageError
		if errors.As(err, &unsupported) {
			unsupported.Path = path
		}
		return nil, err
	}
	return prepared, nil
}

// Prepare decodes a PNG or JPEG payload, downscales it to fit the
// bounding box (never upscales), and re-encodes as JPEG.
func Prepare(payload []byte) (*Prepared, error) {
	decoded, _, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, &UnsupportedImageError{Reason: err.Error()}
	}

	bounds := decoded.Bounds()
	originalWidth := bounds.Dx()
	originalHeight := bounds.Dy()

	width, height := fitDimensions(originalWidth, originalHeight)
	if width != originalWidth || height != originalHeight {
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), decoded, bounds, draw.Over, nil)
		decoded = scaled
	}

	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, decoded, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("imageprep: encoding jpeg: %w", err)
	}

	return &Prepared{
		DataURL:        "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(encoded.Bytes()),
		Width:          width,
		Height:         height,
		OriginalWidth:  originalWidth,
		OriginalHeight: originalHeight,
	}, nil
}

// fitDimensions scales (width, height) to fit maxDimension on the
// longer side, preserving aspect ratio. Images inside the box keep
// their dimensions.
func fitDimensions(width, height int) (int, int) {
	if width <= maxDimension && height <= maxDimension {
		return width, height
	}
	if width >= height {
		scaled := height * maxDimension / width
		if scaled < 1 {
			scaled = 1
		}
		return maxDimension, scaled
	}
	scaled := width * maxDimension / height
	if scaled < 1 {
		scaled = 1
	}
	return scaled, maxDimension
}
