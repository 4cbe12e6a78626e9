package resources

import (
	"context"
	"os"
	"path"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/lvfont/core"
	"github.com/npillmayer/schuko"
)

// NotFound returns an application error for a missing font asset.
func NotFound(asset string) error {
	return core.Error(core.EMISSING, "font asset not found: %s", asset)
}

type pathPlusErr struct {
	path string
	err  error
}

// AssetPromise is the promise type returned by ResolveFontAsset.
type AssetPromise interface {
	Path() (string, error)
}

type assetLoader struct {
	await func(ctx context.Context) (string, error)
}

func (loader assetLoader) Path() (string, error) {
	return loader.await(context.Background())
}

// ResolveFontAsset resolves a font asset name to a local file path.
//
// Lookup order: the configured assets directory (key 'fonts-dir'), then
// the platform font folders, then the user's cache directory. If the
// asset is nowhere to be found and a mirror is configured (key
// 'fonts-mirror'), it is downloaded into the cache.
func ResolveFontAsset(conf schuko.Configuration, name string) AssetPromise {
	// buffered so the resolver can deliver and exit even if the awaiting
	// side gave up on a cancelled context
	ch := make(chan pathPlusErr, 1)
	go func(ch chan<- pathPlusErr) {
		result := pathPlusErr{}
		result.path, result.err = findFontAsset(conf, name)
		ch <- result
		close(ch)
	}(ch)
	return assetLoader{
		await: func(ctx context.Context) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case r := <-ch:
				return r.path, r.err
			}
		},
	}
}

func findFontAsset(conf schuko.Configuration, name string) (string, error) {
	if dir := conf.GetString("fonts-dir"); dir != "" {
		fpath := path.Join(dir, name)
		if _, err := os.Stat(fpath); err == nil {
			tracer().Debugf("%s found in assets directory", name)
			return fpath, nil
		}
	}
	if fpath, err := findfont.Find(name); err == nil && fpath != "" {
		tracer().Debugf("%s is a system font", name)
		return fpath, nil
	}
	cachedir, err := CacheDirPath("fonts")
	if err != nil {
		return "", NotFound(name)
	}
	fpath := path.Join(cachedir, name)
	if _, err := os.Stat(fpath); err == nil {
		tracer().Debugf("%s found in cache", name)
		return fpath, nil
	}
	mirror := conf.GetString("fonts-mirror")
	if mirror == "" {
		tracer().Infof("no font mirror configured: key 'fonts-mirror' should point to an asset base URL")
		return "", NotFound(name)
	}
	if err := DownloadCachedFile(fpath, mirror+"/"+name); err != nil {
		core.UserError(err)
		return "", NotFound(name)
	}
	return fpath, nil
}
