package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/lvfont/core"
	"github.com/npillmayer/lvfont/core/locale"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// A stand-in for lv_font_conv: skips to the '-o' option and writes a few
// bytes to the output path.
const okConverter = `#!/bin/sh
while [ "$#" -gt 0 ] && [ "$1" != "-o" ]; do shift; done
printf 'LVFONT' > "$2"
`

// A converter double that scribbles into the output path and then fails.
const failingConverter = `#!/bin/sh
while [ "$#" -gt 0 ] && [ "$1" != "-o" ]; do shift; done
printf 'garbage' > "$2"
echo "glyph table overflow" >&2
exit 1
`

func writeStubConverter(t *testing.T, script string) string {
	t.Helper()
	stub := filepath.Join(t.TempDir(), "lv_font_conv")
	if err := os.WriteFile(stub, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return stub
}

func writeStubAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, asset := range []string{
		locale.UnifontAsset, locale.UnifontUpperAsset,
		locale.UnifontJPAsset, locale.NerdFontAsset,
	} {
		if err := os.WriteFile(filepath.Join(dir, asset), []byte("stub"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestBuildCommandDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvfont.gen")
	defer teardown()
	//
	profile, err := locale.Resolve("en_US")
	if err != nil {
		t.Fatal(err)
	}
	req := Request{LocaleCode: "en_US", OutputPath: "out/en_US.lvfontbin"}
	req.Normalize()
	assets := map[string]string{
		profile.BaseFont:   "/fonts/unifont.otf",
		profile.UpperFont:  "/fonts/unifont_upper.otf",
		profile.SymbolFont: "/fonts/nerd.ttf",
	}
	args := BuildCommand(profile, req, assets)
	joined := " " + strings.Join(args, " ") + " "
	if !strings.HasPrefix(strings.Join(args, " "),
		"--font /fonts/unifont.otf --autohint-off -r "+profile.Low.ArgString()) {
		t.Errorf("unexpected leading arguments: %v", args[:4])
	}
	for _, want := range []string{
		" --font /fonts/unifont_upper.otf --autohint-off -r " + profile.High.ArgString() + " ",
		" --font /fonts/nerd.ttf -r 0xE000-0xF8FF ",
		" --size 16 ", " --bpp 1 ", " --format bin ", " --no-compress ",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("arguments miss %q:\n%s", want, joined)
		}
	}
	if args[len(args)-2] != "-o" || args[len(args)-1] != "out/en_US.lvfontbin" {
		t.Errorf("output path should be the final option, args end with %v", args[len(args)-2:])
	}
}

func TestBuildCommandJapaneseBaseFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvfont.gen")
	defer teardown()
	//
	profile, err := locale.Resolve("ja")
	if err != nil {
		t.Fatal(err)
	}
	req := Request{LocaleCode: "ja", OutputPath: "ja.lvfontbin"}
	req.Normalize()
	assets := map[string]string{
		profile.BaseFont:   "/fonts/unifont_jp.otf",
		profile.UpperFont:  "/fonts/unifont_upper.otf",
		profile.SymbolFont: "/fonts/nerd.ttf",
	}
	args := BuildCommand(profile, req, assets)
	if args[1] != "/fonts/unifont_jp.otf" {
		t.Errorf("Japanese must draw base glyphs from the JP Unifont build, uses %s", args[1])
	}
}

func TestConvertSuccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvfont.gen")
	defer teardown()
	//
	conf := testconfig.Conf{
		"fonts-dir":    writeStubAssets(t),
		"lv-font-conv": writeStubConverter(t, okConverter),
	}
	out := filepath.Join(t.TempDir(), "de_DE.lvfontbin")
	result := Convert(context.Background(), conf, Request{LocaleCode: "de_DE", OutputPath: out})
	if !result.Success {
		t.Fatalf("conversion failed: %v", result.Err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("no output file at %s: %v", out, err)
	}
	if fi.Size() == 0 {
		t.Errorf("output file is empty")
	}
}

func TestConvertFailureLeavesNoOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvfont.gen")
	defer teardown()
	//
	conf := testconfig.Conf{
		"fonts-dir":    writeStubAssets(t),
		"lv-font-conv": writeStubConverter(t, failingConverter),
	}
	out := filepath.Join(t.TempDir(), "ru.lvfontbin")
	result := Convert(context.Background(), conf, Request{LocaleCode: "ru", OutputPath: out})
	if result.Success {
		t.Fatalf("expected conversion to fail, didn't")
	}
	if core.Code(result.Err) != core.ECONVERSION {
		t.Errorf("expected error code ECONVERSION, have %d", core.Code(result.Err))
	}
	if !strings.Contains(result.Diagnostics, "glyph table overflow") {
		t.Errorf("converter stderr not captured, have %q", result.Diagnostics)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("failed conversion left a file at the target path")
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("failed conversion left a partial file behind")
	}
}

func TestConvertUnknownLocale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvfont.gen")
	defer teardown()
	//
	conf := testconfig.Conf{
		"fonts-dir":    writeStubAssets(t),
		"lv-font-conv": writeStubConverter(t, okConverter),
	}
	out := filepath.Join(t.TempDir(), "xx_YY.lvfontbin")
	result := Convert(context.Background(), conf, Request{LocaleCode: "xx_YY", OutputPath: out})
	if result.Success {
		t.Fatalf("expected unknown locale to fail")
	}
	if core.Code(result.Err) != core.EMISSING {
		t.Errorf("expected error code EMISSING, have %d", core.Code(result.Err))
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("unknown locale must not produce an output file")
	}
}

func TestConvertInvalidRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvfont.gen")
	defer teardown()
	//
	conf := testconfig.Conf{}
	result := Convert(context.Background(), conf,
		Request{LocaleCode: "en_US", OutputPath: "x.lvfontbin", BPP: 3})
	if core.Code(result.Err) != core.EINVALID {
		t.Errorf("expected error code EINVALID for bpp 3, have %d", core.Code(result.Err))
	}
	result = Convert(context.Background(), conf, Request{LocaleCode: "en_US"})
	if core.Code(result.Err) != core.EINVALID {
		t.Errorf("expected error code EINVALID for empty output path, have %d", core.Code(result.Err))
	}
}

func TestConvertMissingConverterBinary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvfont.gen")
	defer teardown()
	//
	conf := testconfig.Conf{
		"fonts-dir":    writeStubAssets(t),
		"lv-font-conv": "/no/such/binary",
	}
	out := filepath.Join(t.TempDir(), "sv.lvfontbin")
	result := Convert(context.Background(), conf, Request{LocaleCode: "sv", OutputPath: out})
	if result.Success || core.Code(result.Err) != core.EMISSING {
		t.Errorf("expected EMISSING for invalid converter binary, have %v", result.Err)
	}
}
