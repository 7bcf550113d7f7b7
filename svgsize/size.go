// Package svgsize resolves an SVG document's intrinsic pixel size and
// computes export dimensions from a user-chosen scale.
//
// Only the root <svg> element is inspected: explicit width/height
// attributes when both convert to positive absolute lengths, with the
// viewBox width and height as fallback. No general XML processing beyond
// locating that tag is performed.
package svgsize

import (
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html/charset"
)

// Size is an intrinsic document size, in CSS reference pixels (96 per inch).
// Both dimensions are strictly positive for a valid size.
type Size struct {
	Width, Height float64
}

// IntrinsicSize reports the intrinsic pixel size declared by the document's
// root <svg> element. ok is false when no svg start tag is found or neither
// the width/height attributes nor the viewBox yield two strictly positive
// dimensions.
func IntrinsicSize(svg []byte) (size Size, ok bool) {
	return readIntrinsicSize(bytes.NewReader(svg))
}

func readIntrinsicSize(r io.Reader) (Size, bool) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			// EOF or malformed markup before any svg tag
			return Size{}, false
		}
		if se, isStart := t.(xml.StartElement); isStart && strings.EqualFold(se.Name.Local, "svg") {
			return sizeFromRootAttrs(se.Attr)
		}
	}
}

// sizeFromRootAttrs applies the sizing rules to the root tag's attribute
// list. The viewBox name is matched case-insensitively, width and height
// exactly.
func sizeFromRootAttrs(attrs []xml.Attr) (Size, bool) {
	var width, height, viewBox string
	for _, attr := range attrs {
		switch {
		case attr.Name.Local == "width":
			width = attr.Value
		case attr.Name.Local == "height":
			height = attr.Value
		case strings.EqualFold(attr.Name.Local, "viewBox"):
			viewBox = attr.Value
		}
	}
	if width != "" && height != "" {
		w, errW := ParseLength(width)
		h, errH := ParseLength(height)
		if errW == nil && errH == nil && w > 0 && h > 0 {
			return Size{Width: w, Height: h}, true
		}
	}
	return viewBoxSize(viewBox)
}

// viewBoxSize extracts the third and fourth numbers of a viewBox value,
// exactly four space or comma separated tokens.
func viewBoxSize(value string) (Size, bool) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 4 {
		return Size{}, false
	}
	w, errW := strconv.ParseFloat(fields[2], 64)
	h, errH := strconv.ParseFloat(fields[3], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

// TargetSize computes export pixel dimensions from an intrinsic size and a
// scale factor. Both dimensions are floored at one pixel, so a tiny scale
// never produces a degenerate zero-size request.
func TargetSize(size Size, scale float64) (width, height int) {
	width = int(math.Round(size.Width * scale))
	height = int(math.Round(size.Height * scale))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
