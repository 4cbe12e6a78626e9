package gen

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/lvfont/core"
	"github.com/npillmayer/lvfont/core/codepoint"
	"github.com/npillmayer/lvfont/core/font"
	"github.com/npillmayer/lvfont/core/locale"
	"github.com/npillmayer/lvfont/core/locate/resources"
	"github.com/npillmayer/schuko"
)

// ConverterName is the binary we delegate all font compilation to.
const ConverterName = "lv_font_conv"

// findConverterBinary locates the converter. The configuration key
// 'lv-font-conv' takes precedence; otherwise PATH is searched.
//
// We call the binary instead of linking a library because the converter
// is an npm tool with no Go counterpart; its format knowledge stays
// entirely on its side of the process boundary.
func findConverterBinary(conf schuko.Configuration) (string, error) {
	bin := conf.GetString("lv-font-conv")
	if bin == "" {
		bin, err := exec.LookPath(ConverterName)
		if err != nil {
			return "", core.WrapError(err, core.EMISSING,
				"%s not found in PATH; install it using: npm install -g %s",
				ConverterName, ConverterName)
		}
		return bin, nil
	}
	if fi, err := os.Stat(bin); err != nil || (fi.Mode().Perm()&0100) == 0 {
		return "", core.WrapError(err, core.EMISSING,
			"configuration points to an invalid converter binary: %s", bin)
	}
	return bin, nil
}

// BuildCommand constructs the converter's argument list for a profile and
// request. assets maps font asset names to resolved file paths. The
// argument order is significant to the converter: each '--font' option
// owns the '-r' ranges that follow it.
func BuildCommand(p *locale.Profile, req Request, assets map[string]string) []string {
	args := []string{
		"--font", assets[p.BaseFont],
		"--autohint-off",
		"-r", p.Low.ArgString(),
	}
	if !p.High.IsEmpty() {
		args = append(args,
			"--font", assets[p.UpperFont],
			"--autohint-off",
			"-r", p.High.ArgString(),
		)
	}
	args = append(args,
		"--font", assets[p.SymbolFont],
		"-r", p.Symbols.ArgString(),
		"--size", strconv.Itoa(req.PixelSize),
		"--format", "bin",
		"--bpp", strconv.Itoa(req.BPP),
		"--no-compress",
		"-o", req.OutputPath,
	)
	return args
}

// Convert generates the binary font for a single locale by running the
// external converter. The converter writes to a temporary path which is
// renamed onto req.OutputPath only after a successful exit, so a failed
// run leaves no partial output behind.
func Convert(ctx context.Context, conf schuko.Configuration, req Request) Result {
	req.Normalize()
	result := Result{LocaleCode: req.LocaleCode, OutputPath: req.OutputPath}
	if err := req.Verify(); err != nil {
		result.Err = err
		return result
	}
	profile, err := locale.Resolve(req.LocaleCode)
	if err != nil {
		result.Err = err
		return result
	}
	assets, err := resolveAssets(conf, profile)
	if err != nil {
		result.Err = err
		return result
	}
	if conf.GetString("preflight") == "true" {
		preflight(profile, assets)
	}
	bin, err := findConverterBinary(conf)
	if err != nil {
		result.Err = err
		return result
	}
	if dir := filepath.Dir(req.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			result.Err = core.WrapError(err, core.EINTERNAL,
				"output directory cannot be created: %s", dir)
			return result
		}
	}
	tmpReq := req
	tmpReq.OutputPath = req.OutputPath + ".tmp"
	args := BuildCommand(profile, tmpReq, assets)
	tracer().Infof("running %s %s", bin, strings.Join(args, " "))
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr
	err = cmd.Run()
	result.Diagnostics = stderr.String()
	if err != nil {
		os.Remove(tmpReq.OutputPath)
		result.Err = core.WrapError(err, core.ECONVERSION,
			"%s failed for locale %s: %s", ConverterName, req.LocaleCode,
			strings.TrimSpace(result.Diagnostics))
		return result
	}
	if err := os.Rename(tmpReq.OutputPath, req.OutputPath); err != nil {
		result.Err = core.WrapError(err, core.EINTERNAL,
			"generated font cannot be moved to %s", req.OutputPath)
		return result
	}
	tracer().Infof("generated font for %s at %s", req.LocaleCode, req.OutputPath)
	result.Success = true
	return result
}

// resolveAssets resolves all source fonts of a profile concurrently and
// awaits the results.
func resolveAssets(conf schuko.Configuration, p *locale.Profile) (map[string]string, error) {
	promises := make(map[string]resources.AssetPromise)
	for _, name := range p.SourceFonts() {
		promises[name] = resources.ResolveFontAsset(conf, name)
	}
	assets := make(map[string]string)
	for name, promise := range promises {
		fpath, err := promise.Path()
		if err != nil {
			return nil, err
		}
		assets[name] = fpath
	}
	return assets, nil
}

// preflight sample-checks that the resolved fonts actually cover the
// ranges assigned to them. Gaps are logged, not fatal: GNU Unifont has a
// handful of unassigned codepoints inside the large CJK blocks and the
// converter simply skips codepoints without glyphs.
func preflight(p *locale.Profile, assets map[string]string) {
	reg := font.GlobalRegistry()
	for _, probe := range []struct {
		asset  string
		ranges *codepoint.Set
	}{
		{p.BaseFont, p.Low},
		{p.UpperFont, p.High},
		{p.SymbolFont, p.Symbols},
	} {
		if probe.ranges.IsEmpty() {
			continue
		}
		f, err := reg.Font(probe.asset, assets[probe.asset])
		if err != nil {
			tracer().Errorf("preflight cannot parse %s: %v", probe.asset, err)
			continue
		}
		if gaps := f.CoverageGaps(probe.ranges); len(gaps) > 0 {
			tracer().Infof("%s has no glyphs for %d probed codepoints, first is U+%04X",
				probe.asset, len(gaps), gaps[0])
		}
	}
}
