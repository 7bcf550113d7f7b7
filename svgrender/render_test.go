package svgrender

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const redSquare = `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"><rect x="0" y="0" width="4" height="4" fill="#ff0000"/></svg>`

func TestRenderBufferContract(t *testing.T) {
	for _, size := range []struct{ w, h uint32 }{
		{1, 1}, {4, 4}, {16, 9}, {100, 50}, {37, 113},
	} {
		img, err := Render([]byte(redSquare), size.w, size.h)
		if err != nil {
			t.Fatalf("Render(%dx%d): %v", size.w, size.h, err)
		}
		if img.Empty() {
			t.Fatalf("Render(%dx%d): empty image without error", size.w, size.h)
		}
		if want := int(size.w) * int(size.h) * 4; img.Len() != want {
			t.Errorf("Render(%dx%d): Len = %d, want %d", size.w, size.h, img.Len(), want)
		}
		if img.Width != size.w || img.Height != size.h {
			t.Errorf("Render(%dx%d): got %dx%d", size.w, size.h, img.Width, img.Height)
		}

		img.Release()
		if !img.Empty() || img.Width != 0 || img.Height != 0 {
			t.Error("Release did not reset to the canonical empty image")
		}
		img.Release() // second release is a no-op
	}
}

func TestRenderPixelContent(t *testing.T) {
	img, err := Render([]byte(redSquare), 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Release()

	// center pixel of a solid red square
	rgba := img.RGBA()
	c := rgba.RGBAAt(4, 4)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("center pixel = %v, want opaque red", c)
	}
}

func TestRenderTestdataIcons(t *testing.T) {
	files, err := filepath.Glob("testdata/*.svg")
	if err != nil || len(files) == 0 {
		t.Fatalf("no testdata icons: %v", err)
	}
	for _, f := range files {
		svg, err := os.ReadFile(f)
		if err != nil {
			t.Fatal(err)
		}
		img, err := Render(svg, 200, 200)
		if err != nil {
			t.Errorf("Render(%s): %v", f, err)
			continue
		}
		if img.Len() != 200*200*4 {
			t.Errorf("Render(%s): Len = %d", f, img.Len())
		}
		img.Release()
	}
}

func TestRenderFailures(t *testing.T) {
	tests := []struct {
		name    string
		svg     string
		w, h    uint32
		errPart string
	}{
		{"malformed", `<svg ><<<`, 10, 10, "parse"},
		{"truncated element", `<svg><rect width="4`, 10, 10, "parse"},
		{"empty input", ``, 10, 10, "empty svg"},
		{"zero width", redSquare, 0, 10, "invalid target size"},
		{"zero height", redSquare, 10, 0, "invalid target size"},
		{"oversized", redSquare, 1 << 16, 1 << 16, "pixel budget"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Render([]byte(tt.svg), tt.w, tt.h)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
			if !img.Empty() {
				t.Error("failed render did not return the canonical empty image")
			}
		})
	}
}

func TestImageRGBA(t *testing.T) {
	var empty Image
	if empty.RGBA() != nil {
		t.Error("empty image should yield a nil RGBA")
	}

	img, err := Render([]byte(redSquare), 5, 7)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Release()
	rgba := img.RGBA()
	if rgba == nil {
		t.Fatal("nil RGBA for a non-empty image")
	}
	if rgba.Stride != 5*4 || rgba.Rect.Dx() != 5 || rgba.Rect.Dy() != 7 {
		t.Errorf("unexpected RGBA geometry: stride %d, bounds %v", rgba.Stride, rgba.Rect)
	}
}
