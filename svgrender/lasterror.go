package svgrender

// Bridge-style surface mirroring the C ABI of a foreign rasterization
// boundary: a render entry point that signals failure through a canonical
// empty return value, paired with per-goroutine last-error accessors. New
// code should call Render and use the returned error; this surface exists
// for callers porting from the foreign-function contract, where the error
// side channel and the copy-into-buffer accessor are part of the ABI.

import (
	"runtime"
	"strconv"
	"sync"
)

// lastErrs holds the most recent diagnostic per goroutine. A slot is
// cleared on every RenderRGBA entry and written only on failure, so it
// always reflects the goroutine's own last call.
var lastErrs sync.Map // goroutine id -> string

// goroutineID parses the numeric id from the runtime.Stack header, which
// reads "goroutine 42 [running]: ...".
func goroutineID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	s := buf[len("goroutine "):n]
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			id, _ := strconv.ParseUint(string(s[:i]), 10, 64)
			return id
		}
	}
	return 0
}

// RenderRGBA is Render with the boundary calling convention: on failure it
// returns the canonical empty image and records a diagnostic for the
// calling goroutine, retrievable with LastError or CopyLastError until
// this goroutine's next RenderRGBA call.
func RenderRGBA(svg []byte, width, height uint32) Image {
	id := goroutineID()
	lastErrs.Delete(id)
	img, err := Render(svg, width, height)
	if err != nil {
		lastErrs.Store(id, err.Error())
		return Image{}
	}
	return img
}

// LastError returns the calling goroutine's diagnostic from its most
// recent failing RenderRGBA call, if any. The slot is not cleared.
func LastError() (string, bool) {
	v, ok := lastErrs.Load(goroutineID())
	if !ok {
		return "", false
	}
	return v.(string), true
}

// CopyLastError copies the calling goroutine's diagnostic into dst,
// reserving one byte for a NUL terminator, and returns the number of
// message bytes written (excluding the terminator). It returns 0 and
// leaves dst untouched when there is no diagnostic or dst is empty.
func CopyLastError(dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	msg, ok := LastError()
	if !ok {
		return 0
	}
	n := len(msg)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	copy(dst, msg[:n])
	dst[n] = 0
	return n
}
