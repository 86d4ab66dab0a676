// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package imageprep

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			canvas.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buffer bytes.Buffer
	if err := png.Encode(&buffer, canvas); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buffer.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(dataURL, prefix) {
		t.Fatalf("data URL prefix missing: %.40s", dataURL)
	}
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	if err != nil {
		t.Fatalf("decoding base64 payload: %v", err)
	}
	decoded, err := jpeg.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("decoding jpeg payload: %v", err)
	}
	return decoded
}

func TestPrepareKeepsSmallImages(t *testing.T) {
	prepared, err := Prepare(encodePNG(t, 640, 480))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if prepared.Width != 640 || prepared.Height != 480 {
		t.Errorf("dimensions = %dx%d, want unchanged 640x480", prepared.Width, prepared.Height)
	}
	decoded := decodeDataURL(t, prepared.DataURL)
	if decoded.Bounds().Dx() != 640 || decoded.Bounds().Dy() != 480 {
		t.Errorf("payload dimensions = %v", decoded.Bounds())
	}
}

func TestPrepareDownscalesWideImage(t *testing.T) {
	prepared, err := Prepare(encodePNG(t, 2000, 500))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if prepared.Width != 1000 || prepared.Height != 250 {
		t.Errorf("dimensions = %dx%d, want 1000x250", prepared.Width, prepared.Height)
	}
	if prepared.OriginalWidth != 2000 || prepared.OriginalHeight != 500 {
		t.Errorf("original dimensions = %dx%d", prepared.OriginalWidth, prepared.OriginalHeight)
	}
}

func TestPrepareDownscalesTallImage(t *testing.T) {
	prepared, err := Prepare(encodePNG(t, 600, 3000))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if prepared.Width != 200 || prepared.Height != 1000 {
		t.Errorf("dimensions = %dx%d, want 200x1000", prepared.Width, prepared.Height)
	}
}

func TestPrepareNeverUpscales(t *testing.T) {
	prepared, err := Prepare(encodePNG(t, 100, 80))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if prepared.Width != 100 || prepared.Height != 80 {
		t.Errorf("small image was resampled to %dx%d", prepared.Width, prepared.Height)
	}
}

func TestPrepareRejectsGarbage(t *testing.T) {
	_, err := Prepare([]byte("not an image at all"))
	var unsupported *UnsupportedImageError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedImageError, got %T: %v", err, err)
	}
}

func TestFitDimensions(t *testing.T) {
	cases := []struct {
		width, height         int
		wantWidth, wantHeight int
	}{
		{1000, 1000, 1000, 1000},
		{1001, 1000, 1000, 999},
		{500, 2500, 200, 1000},
		{4000, 4000, 1000, 1000},
		{1, 1, 1, 1},
	}
	for _, tc := range cases {
		gotWidth, gotHeight := fitDimensions(tc.width, tc.height)
		if gotWidth != tc.wantWidth || gotHeight != tc.wantHeight {
			t.Errorf("fitDimensions(%d, %d) = %dx%d, want %dx%d",
				tc.width, tc.height, gotWidth, gotHeight, tc.wantWidth, tc.wantHeight)
		}
	}
}
