package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/lvfont/core"
	"github.com/npillmayer/lvfont/core/locale"
	"github.com/npillmayer/lvfont/gen"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'lvfont.gen'
func tracer() tracing.Trace {
	return tracing.Select("lvfont.gen")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	output := flag.String("output", "", "Output font file path (single-locale mode)")
	size := flag.Int("size", gen.DefaultPixelSize, "Font size in pixels")
	bpp := flag.Int("bpp", gen.DefaultBPP, "Bits per pixel")
	all := flag.Bool("all", false, "Generate fonts for all supported locales")
	outdir := flag.String("outdir", "out", "Output directory for batch mode")
	list := flag.Bool("list", false, "List supported locales and exit")
	fontsDir := flag.String("fonts", "fonts", "Directory holding the source font assets")
	converter := flag.String("converter", "", "Path to the lv_font_conv binary (default: search PATH)")
	mirror := flag.String("mirror", os.Getenv("LVFONT_MIRROR"), "Base URL for downloading missing font assets")
	preflight := flag.Bool("preflight", false, "Check source font coverage before converting")
	workers := flag.String("workers", "", "Parallel conversions in batch mode")
	flag.Parse()

	conf := testconfig.Conf{
		"app-key":                "lvfont",
		"tracing.adapter":        "go",
		"trace.lvfont.gen":       *tlevel,
		"trace.lvfont.locale":    *tlevel,
		"trace.lvfont.fonts":     *tlevel,
		"trace.lvfont.resources": *tlevel,
		"fonts-dir":              *fontsDir,
		"lv-font-conv":           *converter,
		"fonts-mirror":           *mirror,
	}
	if *preflight {
		conf["preflight"] = "true"
	}
	if *workers != "" {
		conf["batch-workers"] = *workers
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gconf.Initialize(conf)

	switch {
	case *list:
		listLocales()
	case *all:
		runBatch(conf, *outdir, *size, *bpp)
	default:
		runSingle(conf, flag.Arg(0), *output, *size, *bpp)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func listLocales() {
	for _, code := range locale.Supported() {
		profile, err := locale.Resolve(code)
		if err != nil {
			fail(err)
		}
		pterm.Printf("%-15s %-22s [%s]\n", profile.Code, profile.Name,
			strings.Join(profile.Scripts, ", "))
	}
}

func runSingle(conf testconfig.Conf, code string, output string, size int, bpp int) {
	if code == "" {
		fail(core.Error(core.EINVALID, "no locale code given; try -list for supported codes"))
	}
	if output == "" {
		fail(core.Error(core.EINVALID, "no output path given (-output)"))
	}
	req := gen.Request{
		LocaleCode: code,
		OutputPath: output,
		PixelSize:  size,
		BPP:        bpp,
	}
	result := gen.GenerateFont(context.Background(), conf, req).Result()
	if result.Err != nil {
		fail(result.Err)
	}
	pterm.Success.Printf("generated font for %s at %s\n", result.LocaleCode, result.OutputPath)
}

func runBatch(conf testconfig.Conf, outdir string, size int, bpp int) {
	batch, err := gen.Batch(context.Background(), conf, outdir, size, bpp)
	for _, result := range batch.Results {
		if result.Success {
			pterm.Success.Printf("%s\n", result.OutputPath)
		} else {
			pterm.Error.Printf("%s: %s\n", result.LocaleCode, core.UserMessage(result.Err))
		}
	}
	if err != nil {
		fail(err)
	}
	pterm.Info.Printf("generated %d fonts in %s\n", len(batch.Results), outdir)
}

func fail(err error) {
	tracer().Errorf(err.Error())
	core.UserError(err)
	os.Exit(core.Code(err))
}
