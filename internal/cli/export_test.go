package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const testIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"><rect width="100" height="50" fill="#3949ab"/></svg>`

func TestExportSize(t *testing.T) {
	tests := []struct {
		name         string
		opts         exportOpts
		defaultZoom  float64
		wantW, wantH int
	}{
		{"default zoom", exportOpts{}, 1.0, 100, 50},
		{"config zoom", exportOpts{}, 2.0, 200, 100},
		{"explicit zoom wins", exportOpts{zoom: 0.5}, 2.0, 50, 25},
		{"explicit both", exportOpts{width: 33, height: 44}, 1.0, 33, 44},
		{"width keeps aspect", exportOpts{width: 200}, 1.0, 200, 100},
		{"height keeps aspect", exportOpts{height: 100}, 1.0, 200, 100},
		{"tiny zoom floors at one", exportOpts{zoom: 0.001}, 1.0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := exportSize([]byte(testIcon), tt.opts, tt.defaultZoom)
			if err != nil {
				t.Fatal(err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("exportSize = (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestExportSizeUnknownIntrinsic(t *testing.T) {
	noSize := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`)

	if _, _, err := exportSize(noSize, exportOpts{}, 1.0); err == nil {
		t.Error("expected an unknown-size error")
	}
	if _, _, err := exportSize(noSize, exportOpts{width: 100}, 1.0); err == nil {
		t.Error("a single explicit dimension still needs the intrinsic aspect")
	}
	// both dimensions explicit: no intrinsic size needed
	w, h, err := exportSize(noSize, exportOpts{width: 30, height: 40}, 1.0)
	if err != nil || w != 30 || h != 40 {
		t.Errorf("explicit dimensions: (%d, %d), %v", w, h, err)
	}
}

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.svg")
	if err := os.WriteFile(in, []byte(testIcon), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "icon.png")

	opts := exportOpts{output: out, zoom: 2.0}
	if err := runExport(context.Background(), defaultConfig(), opts, in); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("exported PNG is %dx%d, want 200x100", b.Dx(), b.Dy())
	}
}

func TestRunExportDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.svg")
	if err := os.WriteFile(in, []byte(testIcon), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runExport(context.Background(), defaultConfig(), exportOpts{}, in); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon.png")); err != nil {
		t.Errorf("default output path not written: %v", err)
	}
}

func TestRunExportMissingInput(t *testing.T) {
	err := runExport(context.Background(), defaultConfig(), exportOpts{}, filepath.Join(t.TempDir(), "absent.svg"))
	if err == nil {
		t.Error("expected an error for a missing input file")
	}
}

func TestReplaceExt(t *testing.T) {
	if got := replaceExt("dir/icon.svg", ".png"); got != "dir/icon.png" {
		t.Errorf("replaceExt = %q", got)
	}
	if got := replaceExt("noext", ".png"); got != "noext.png" {
		t.Errorf("replaceExt = %q", got)
	}
}
