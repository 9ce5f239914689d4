package manifest

import (
	"errors"
	"fmt"

	apperr "github.com/driftpro/logoexport/pkg/errors"
)

// Validate checks the manifest invariants and reports every violation at once.
// The returned error has code INVALID_MANIFEST and wraps the joined problems.
func (m *Manifest) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if len(m.Logos) == 0 {
		add("manifest has no logos")
	}
	if m.Brand == "" {
		add("brand cannot be empty")
	}
	if err := apperr.ValidateEmail(m.SupportEmail); err != nil {
		errs = append(errs, errors.New(apperr.UserMessage(err)))
	}
	for _, c := range m.Design.Colors {
		if err := apperr.ValidateHexColor(c.Hex); err != nil {
			add("color %q: %s", c.Name, apperr.UserMessage(err))
		}
	}

	names := make(map[string]bool, len(m.Logos))
	owners := make(map[string]string)
	for i, logo := range m.Logos {
		label := logo.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
			add("logo %s: name cannot be empty", label)
		} else if names[logo.Name] {
			add("logo %q: duplicate name", logo.Name)
		}
		names[logo.Name] = true

		if !logo.Platform.Valid() {
			add("logo %s: unknown platform %q (must be one of %v)", label, logo.Platform, Platforms)
		}
		if len(logo.Sizes) == 0 {
			add("logo %s: no sizes", label)
		}

		for _, spec := range logo.Sizes {
			if spec.Size <= 0 {
				add("logo %s: %s: size must be positive, got %d", label, spec.Filename, spec.Size)
			}
			if spec.Height < 0 {
				add("logo %s: %s: height cannot be negative, got %d", label, spec.Filename, spec.Height)
			}
			if err := apperr.ValidateLabel("subdir", spec.Subdir); err != nil {
				add("logo %s: %s: %s", label, spec.Filename, apperr.UserMessage(err))
			}
			if err := apperr.ValidateLabel("purpose", spec.Purpose); err != nil {
				add("logo %s: %s: %s", label, spec.Filename, apperr.UserMessage(err))
			}
			if err := apperr.ValidateFilename(spec.Filename, ".png"); err != nil {
				add("logo %s: %s", label, apperr.UserMessage(err))
				continue
			}
			if prev, dup := owners[spec.Filename]; dup {
				add("logo %s: filename %q already used by logo %s", label, spec.Filename, prev)
				continue
			}
			owners[spec.Filename] = label
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return apperr.Wrap(apperr.ErrCodeInvalidManifest, errors.Join(errs...), "manifest has %d problem(s)", len(errs))
}
