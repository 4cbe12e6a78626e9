package gen

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/npillmayer/lvfont/core"
	"github.com/npillmayer/lvfont/core/locale"
	"github.com/npillmayer/schuko"
)

// OutputName returns the canonical artifact name for a locale.
func OutputName(code string) string {
	return code + ".lvfontbin"
}

// BatchResult aggregates the outcomes of a batch run, one per supported
// locale, in the order of locale.Supported().
type BatchResult struct {
	Results []Result
	Failed  int
}

// GenerationPromise is the promise type returned by GenerateFont.
type GenerationPromise interface {
	Result() Result
}

type generationRun struct {
	await func(ctx context.Context) Result
}

func (run generationRun) Result() Result {
	return run.await(context.Background())
}

// GenerateFont starts a font generation run in the background and returns
// a promise for its result.
func GenerateFont(ctx context.Context, conf schuko.Configuration, req Request) GenerationPromise {
	// buffered so the worker can deliver and exit even if the awaiting
	// side gave up on a cancelled context
	ch := make(chan Result, 1)
	go func(ch chan<- Result) {
		ch <- Convert(ctx, conf, req)
		close(ch)
	}(ch)
	return generationRun{
		await: func(awaitCtx context.Context) Result {
			select {
			case <-awaitCtx.Done():
				return Result{LocaleCode: req.LocaleCode, OutputPath: req.OutputPath,
					Err: awaitCtx.Err()}
			case r := <-ch:
				return r
			}
		},
	}
}

// Batch generates fonts for every supported locale, writing
// '<code>.lvfontbin' files into outDir. Locales are independent of each
// other, so a bounded number of conversions runs concurrently
// (configuration key 'batch-workers', default 4).
//
// A failing locale never aborts the batch; failures are collected and the
// batch as a whole reports an error if any locale failed.
func Batch(ctx context.Context, conf schuko.Configuration, outDir string, size int, bpp int) (BatchResult, error) {
	codes := locale.Supported()
	batch := BatchResult{Results: make([]Result, len(codes))}
	sem := make(chan struct{}, batchWorkers(conf))
	var wg sync.WaitGroup
	for i, code := range codes {
		wg.Add(1)
		go func(slot int, code string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			req := Request{
				LocaleCode: code,
				OutputPath: filepath.Join(outDir, OutputName(code)),
				PixelSize:  size,
				BPP:        bpp,
			}
			batch.Results[slot] = Convert(ctx, conf, req)
		}(i, code)
	}
	wg.Wait()
	for _, r := range batch.Results {
		if !r.Success {
			batch.Failed++
			tracer().Errorf("locale %s failed: %v", r.LocaleCode, r.Err)
		}
	}
	if batch.Failed > 0 {
		return batch, core.Error(core.ECONVERSION,
			"%d of %d locales failed to generate", batch.Failed, len(codes))
	}
	return batch, nil
}

func batchWorkers(conf schuko.Configuration) int {
	if s := conf.GetString("batch-workers"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
		tracer().Infof("ignoring invalid batch-workers setting %q", s)
	}
	return 4
}
