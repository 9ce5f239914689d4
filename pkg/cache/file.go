package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/observability"
)

// entryExt is the extension of every entry file under the cache root.
const entryExt = ".png.entry"

// headerSize is the length of the expiry header that precedes the PNG bytes:
// a big-endian Unix nanosecond timestamp, zero for entries that never expire.
const headerSize = 8

// FileCache keeps rendered PNGs on disk, one file per key, sharded by the
// first two hex digits of the key's digest.
type FileCache struct {
	dir string
	now func() time.Time
}

var _ Cache = (*FileCache)(nil)

// NewFileCache opens (creating if needed) a cache rooted at dir.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Filesystem(err, "create cache directory %s", dir)
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

// Dir returns the cache root.
func (c *FileCache) Dir() string { return c.dir }

// Get returns the PNG stored under key. Entries that are expired or too short
// to hold a header are removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	hooks := observability.Cache()
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		hooks.OnCacheMiss(ctx, key)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Filesystem(err, "read cache entry")
	}

	if len(raw) < headerSize || c.expired(raw[:headerSize]) {
		_ = os.Remove(path)
		hooks.OnCacheMiss(ctx, key)
		return nil, false, nil
	}

	hooks.OnCacheHit(ctx, key)
	return raw[headerSize:], true, nil
}

func (c *FileCache) expired(header []byte) bool {
	deadline := int64(binary.BigEndian.Uint64(header))
	return deadline != 0 && c.now().UnixNano() > deadline
}

// Set stores data under key. A positive ttl bounds the entry's lifetime.
// The entry is written to a temporary file and renamed into place so
// concurrent exports never read a partial PNG.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var deadline int64
	if ttl > 0 {
		deadline = c.now().Add(ttl).UnixNano()
	}
	raw := make([]byte, headerSize, headerSize+len(data))
	binary.BigEndian.PutUint64(raw, uint64(deadline))
	raw = append(raw, data...)

	path := c.path(key)
	shard := filepath.Dir(path)
	if err := os.MkdirAll(shard, 0o755); err != nil {
		return apperr.Filesystem(err, "create cache shard")
	}

	tmp, err := os.CreateTemp(shard, ".tmp-*")
	if err != nil {
		return apperr.Filesystem(err, "create cache entry")
	}
	_, werr := tmp.Write(raw)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmp.Name())
		return apperr.Filesystem(err, "write cache entry")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return apperr.Filesystem(err, "store cache entry")
	}

	observability.Cache().OnCacheSet(ctx, key, len(data))
	return nil
}

// Delete removes the entry for key, if any.
func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperr.Filesystem(err, "delete cache entry")
	}
	return nil
}

// Stats reports the number of entries and their combined size on disk.
func (c *FileCache) Stats() (entries int, size int64, err error) {
	err = filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, entryExt) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries++
		size += info.Size()
		return nil
	})
	if err != nil {
		return 0, 0, apperr.Filesystem(err, "scan cache %s", c.dir)
	}
	return entries, size, nil
}

// Clear empties the cache, leaving its root directory in place.
func (c *FileCache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return apperr.Filesystem(err, "clear cache %s", c.dir)
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return apperr.Filesystem(err, "recreate cache %s", c.dir)
	}
	return nil
}

// Close is a no-op; entries are durable once Set returns.
func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+entryExt)
}
