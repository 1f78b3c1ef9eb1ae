package encoder

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := uint8(255)
			if x < width/2 {
				a = 0
			}
			img.Set(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 120, A: a})
		}
	}
	return img
}

func TestGet(t *testing.T) {
	tests := []struct {
		format string
		ok     bool
	}{
		{"webp", true},
		{"WEBP", true},
		{"png", true},
		{"Png", true},
		{"jpeg", true},
		{"jpg", true},
		{"JPG", true},
		{"gif", false},
		{"avif", false},
		{"tiff", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, ok := Get(tt.format)
			if ok != tt.ok {
				t.Errorf("Get(%q) ok = %v, want %v", tt.format, ok, tt.ok)
			}
		})
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, testImage(16, 16), EncodeOptions{}); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, format, err := image.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("bounds = %v, want 16x16", img.Bounds())
	}
}

func TestEncodeJPEG_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, testImage(16, 16), EncodeOptions{Quality: 80}); err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}

	_, format, err := image.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
}

func TestEncodeWebP_ForcesOpaqueRGB(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeWebP(&buf, testImage(16, 16), EncodeOptions{Quality: 50}); err != nil {
		t.Fatalf("EncodeWebP: %v", err)
	}

	img, format, err := image.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "webp" {
		t.Errorf("format = %q, want webp", format)
	}

	// Source has a fully transparent left half; the webp output must
	// be opaque everywhere.
	for _, pt := range []image.Point{{1, 1}, {8, 8}, {15, 15}} {
		_, _, _, a := img.At(pt.X, pt.Y).RGBA()
		if a != 0xffff {
			t.Errorf("pixel %v alpha = %#x, want fully opaque", pt, a)
		}
	}
}

func TestSniff(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "img.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage(4, 4)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	txtPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txtPath, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	format, err := Sniff(pngPath)
	if err != nil {
		t.Errorf("Sniff(png) error: %v", err)
	}
	if format != "png" {
		t.Errorf("Sniff(png) format = %q, want png", format)
	}

	if _, err := Sniff(txtPath); err == nil {
		t.Error("Sniff(text file) should fail")
	}
	if _, err := Sniff(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Sniff(missing file) should fail")
	}
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage(6, 3)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, format, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 3 {
		t.Errorf("bounds = %v, want 6x3", img.Bounds())
	}
}
