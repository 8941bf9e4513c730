package form

import (
	stderrors "errors"

	"github.com/vango-dev/forms/internal/errors"
)

// Lint reports configuration mistakes that rendering silently tolerates:
// empty or duplicate slugs, duplicate option slugs, option kinds without
// options, and fields without a value reader. It returns nil when the fields
// look sound, or an errors.Join of *errors.FormError values.
func Lint[S, M any](fields ...*Field[S, M]) error {
	var errs []error
	seen := make(map[string]bool, len(fields))

	for _, f := range fields {
		if f == nil || f.Kind == KindStatic {
			continue
		}

		switch {
		case f.Slug == "":
			errs = append(errs, errors.New("F001").
				WithDetail("A "+f.Kind.String()+" field labelled \""+f.Label+"\" has no slug.").
				WithSuggestion("Give the field a unique, non-empty slug"))
		case seen[f.Slug]:
			errs = append(errs, errors.New("F002").WithField(f.Slug).
				WithSuggestion("Rename one of the fields"))
		}
		seen[f.Slug] = true

		if f.Kind.HasOptions() {
			if len(f.Options) == 0 {
				errs = append(errs, errors.New("F004").WithField(f.Slug))
			}
			options := make(map[string]bool, len(f.Options))
			for _, opt := range f.Options {
				if options[opt.Slug] {
					errs = append(errs, errors.New("F003").WithField(f.Slug).
						WithSuggestion("Option \""+opt.Slug+"\" appears more than once"))
				}
				options[opt.Slug] = true
			}
		}

		if !hasReader(f) {
			errs = append(errs, errors.New("F005").WithField(f.Slug))
		}
	}

	return stderrors.Join(errs...)
}

func hasReader[S, M any](f *Field[S, M]) bool {
	switch f.Kind {
	case KindCheckbox:
		return f.Checked != nil
	case KindCheckboxGroup:
		return f.Checks != nil
	case KindAutocomplete:
		return f.Choice != nil && f.Filter != nil
	default:
		return f.primary() != nil
	}
}
