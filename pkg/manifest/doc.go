// Package manifest defines the logo asset manifest: which source logos exist,
// which platform each one targets, and every raster size that must be exported
// from it.
//
// # Overview
//
// A [Manifest] is an ordered list of [LogoDefinition] values plus the brand
// notes printed at the end of the export instructions. Each definition owns an
// ordered list of [SizeSpec] values, one per PNG file that must exist after
// export. Declaration order is significant: documents and exports iterate the
// manifest exactly as declared.
//
// The built-in manifest is returned by [Default]. Alternative manifests can be
// loaded from TOML or YAML with [Load]:
//
//	m, err := manifest.Load("logos.toml")
//	if err != nil {
//	    return err
//	}
//	if err := m.Validate(); err != nil {
//	    return err // every violation, joined
//	}
//
// # Invariants
//
// [Manifest.Validate] checks, once, that every size is positive, that every
// output filename is a bare .png name unique across the whole manifest, and that
// every logo names a known [Platform]. Code downstream of validation assumes
// these hold.
package manifest
