package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/driftpro/logoexport/pkg/observability"
)

// newLogger returns a charm logger writing to w with centisecond timestamps
// ("14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a command step took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rasterized 40 files (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks forwards library events to the logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnDirEnsured(_ context.Context, dir string) {
	h.logger.Debug("directory ready", "dir", dir)
}

func (h *logHooks) OnInstructionsWritten(_ context.Context, path string, bytes int) {
	h.logger.Debug("instructions written", "path", path, "bytes", bytes)
}

func (h *logHooks) OnRasterStart(_ context.Context, filename string, width, height int) {
	h.logger.Debug("rasterizing", "file", filename, "size", sizeLabel(width, height))
}

func (h *logHooks) OnRasterComplete(_ context.Context, filename string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("rasterize failed", "file", filename, "err", err)
		return
	}
	h.logger.Debug("rasterized", "file", filename, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", shortKey(key))
}

func (h *logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", shortKey(key))
}

func (h *logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", shortKey(key), "bytes", size)
}

var (
	_ observability.ExportHooks = (*logHooks)(nil)
	_ observability.CacheHooks  = (*logHooks)(nil)
)

// shortKey abbreviates the digest in a "raster:<sha256>:<w>x<h>" cache key.
func shortKey(key string) string {
	kind, rest, ok := strings.Cut(key, ":")
	if !ok {
		return key
	}
	digest, dims, hasDims := strings.Cut(rest, ":")
	if len(digest) > 12 {
		digest = digest[:12]
	}
	if !hasDims {
		return kind + ":" + digest
	}
	return kind + ":" + digest + ":" + dims
}
