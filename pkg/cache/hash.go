package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// RasterKey returns the cache key for a PNG rendered from svg at
// width x height, in the form "raster:<svg sha256>:<w>x<h>".
func RasterKey(svg []byte, width, height int) string {
	return "raster:" + Hash(svg) + ":" + strconv.Itoa(width) + "x" + strconv.Itoa(height)
}
