package raster

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	apperr "github.com/driftpro/logoexport/pkg/errors"
)

// DefaultBinary is the librsvg command-line converter.
const DefaultBinary = "rsvg-convert"

const installHint = "Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin"

// RSVG rasterizes by shelling out to rsvg-convert, one process per call.
type RSVG struct {
	// Binary overrides the executable name or path. Empty means [DefaultBinary].
	Binary string
}

func (r RSVG) binary() string {
	if r.Binary == "" {
		return DefaultBinary
	}
	return r.Binary
}

// Available reports whether the converter binary can be found.
func (r RSVG) Available() error {
	if _, err := exec.LookPath(r.binary()); err != nil {
		return apperr.Wrap(apperr.ErrCodeToolMissing, err, "PNG export requires %s", r.binary()).WithHint("%s", installHint)
	}
	return nil
}

// Rasterize converts svg to a PNG of exactly width x height pixels.
func (r RSVG) Rasterize(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	if err := r.Available(); err != nil {
		return nil, err
	}

	args := []string{
		"-w", strconv.Itoa(width),
		"-h", strconv.Itoa(height),
		"-f", "png",
	}
	cmd := exec.CommandContext(ctx, r.binary(), args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, apperr.Wrap(apperr.ErrCodeConversion, err, "%s: %s", r.binary(), strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}

var _ Rasterizer = RSVG{}
