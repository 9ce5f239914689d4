// Package observability carries library events to whoever is listening.
//
// The export, raster and cache packages never log. They report what they do
// through [ExportHooks] and [CacheHooks]; the CLI registers implementations
// that write debug log lines, and tests register recorders.
//
//	observability.SetExportHooks(myHooks)
//	defer observability.Reset()
//
// Libraries look the hooks up at the point of use:
//
//	observability.Export().OnDirEnsured(ctx, dir)
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// ExportHooks receives events from instruction generation and rasterization.
type ExportHooks interface {
	// OnDirEnsured fires after the export root or a platform directory exists.
	OnDirEnsured(ctx context.Context, dir string)

	// OnInstructionsWritten fires after EXPORT_INSTRUCTIONS.md is written.
	OnInstructionsWritten(ctx context.Context, path string, bytes int)

	// OnRasterStart fires before a PNG is handed to the converter. Cache
	// hits never start a conversion.
	OnRasterStart(ctx context.Context, filename string, width, height int)

	// OnRasterComplete fires when the converter returns; err is its failure.
	OnRasterComplete(ctx context.Context, filename string, duration time.Duration, err error)
}

// CacheHooks receives events from the raster cache.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, key string)
	OnCacheMiss(ctx context.Context, key string)
	OnCacheSet(ctx context.Context, key string, size int)
}

// NoopExportHooks ignores every event. Embed it to implement a subset.
type NoopExportHooks struct{}

func (NoopExportHooks) OnDirEnsured(context.Context, string)                           {}
func (NoopExportHooks) OnInstructionsWritten(context.Context, string, int)             {}
func (NoopExportHooks) OnRasterStart(context.Context, string, int, int)                {}
func (NoopExportHooks) OnRasterComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks ignores every event. Embed it to implement a subset.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// registry is replaced wholesale on every change so readers, which sit on
// the raster hot path, never take a lock.
type registry struct {
	export ExportHooks
	cache  CacheHooks
}

var (
	current atomic.Pointer[registry]
	writeMu sync.Mutex
)

func init() { Reset() }

func update(fn func(r *registry)) {
	writeMu.Lock()
	defer writeMu.Unlock()
	next := *current.Load()
	fn(&next)
	current.Store(&next)
}

// SetExportHooks registers h for export events. A nil h is ignored.
func SetExportHooks(h ExportHooks) {
	if h == nil {
		return
	}
	update(func(r *registry) { r.export = h })
}

// SetCacheHooks registers h for cache events. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	update(func(r *registry) { r.cache = h })
}

// Export returns the registered export hooks.
func Export() ExportHooks { return current.Load().export }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current.Load().cache }

// Reset restores the no-op hooks.
func Reset() {
	writeMu.Lock()
	defer writeMu.Unlock()
	current.Store(&registry{export: NoopExportHooks{}, cache: NoopCacheHooks{}})
}
