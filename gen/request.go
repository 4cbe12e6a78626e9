package gen

import (
	"github.com/npillmayer/lvfont/core"
)

// Converter defaults. 16px at 1 bit per pixel matches the embedded UI's
// monochrome display.
const (
	DefaultPixelSize = 16
	DefaultBPP       = 1
)

// Request describes a single font generation run.
type Request struct {
	LocaleCode string
	OutputPath string
	PixelSize  int // 0 means DefaultPixelSize
	BPP        int // 0 means DefaultBPP
}

// Normalize fills in defaults for unset parameters.
func (req *Request) Normalize() {
	if req.PixelSize == 0 {
		req.PixelSize = DefaultPixelSize
	}
	if req.BPP == 0 {
		req.BPP = DefaultBPP
	}
}

// Verify checks a request against the converter's limits.
func (req Request) Verify() error {
	if req.OutputPath == "" {
		return core.Error(core.EINVALID, "no output path given")
	}
	if req.PixelSize < 8 || req.PixelSize > 72 {
		return core.Error(core.EINVALID, "pixel size must be within 8…72, is %d", req.PixelSize)
	}
	switch req.BPP {
	case 1, 2, 4, 8:
	default:
		return core.Error(core.EINVALID, "bits-per-pixel must be 1, 2, 4 or 8, is %d", req.BPP)
	}
	return nil
}

// Result is the outcome of a single font generation run.
type Result struct {
	LocaleCode  string
	OutputPath  string
	Success     bool
	Diagnostics string // captured stderr of the converter
	Err         error
}
