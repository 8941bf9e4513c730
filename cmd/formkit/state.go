package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/forms/pkg/form"
	"github.com/vango-dev/forms/pkg/schema"
)

// buildState returns the initial state of def with every slug=value
// assignment in sets applied. Checkbox fields take a boolean; checkbox
// groups take a comma-separated list of option slugs.
func buildState(def *schema.Definition, sets []string, today time.Time) (schema.State, error) {
	s := schema.NewState(def, today)
	for _, set := range sets {
		slug, value, ok := strings.Cut(set, "=")
		if !ok {
			return s, fmt.Errorf("invalid --set %q: want slug=value", set)
		}
		kind, found := fieldKind(def, slug)
		if !found {
			return s, fmt.Errorf("invalid --set %q: no field with slug %q", set, slug)
		}

		var msg schema.Msg
		switch kind {
		case form.KindCheckbox:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return s, fmt.Errorf("invalid --set %q: %w", set, err)
			}
			msg = schema.Msg{Kind: schema.MsgSetFlag, Slug: slug, Flag: b}
		case form.KindCheckboxGroup:
			picked := make(map[string]bool)
			for _, p := range strings.Split(value, ",") {
				picked[strings.TrimSpace(p)] = true
			}
			checks := make([]form.Check, 0, len(s.Checks[slug]))
			for _, c := range s.Checks[slug] {
				checks = append(checks, form.Check{Slug: c.Slug, Checked: picked[c.Slug]})
			}
			msg = schema.Msg{Kind: schema.MsgSetChecks, Slug: slug, Checks: checks}
		case form.KindStatic:
			return s, fmt.Errorf("invalid --set %q: static fields hold no value", set)
		default:
			msg = schema.Msg{Kind: schema.MsgSetValue, Slug: slug, Value: value}
		}
		s = def.Apply(s, msg, today)
	}
	return s, nil
}

func fieldKind(def *schema.Definition, slug string) (form.Kind, bool) {
	for _, f := range def.Fields {
		if f.Slug == slug {
			return form.ParseKind(f.Kind)
		}
	}
	return 0, false
}
