package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/forms/internal/errors"
	"github.com/vango-dev/forms/pkg/vdom"
)

func codes(err error) []string {
	var out []string
	for _, fe := range errors.All(err) {
		out = append(out, fe.Code+":"+fe.Field)
	}
	return out
}

func TestLint(t *testing.T) {
	tests := []struct {
		name   string
		fields []*Field[state, msg]
		want   []string
	}{
		{
			name:   "sound form",
			fields: allFields(),
		},
		{
			name:   "static fields are ignored",
			fields: []*Field[state, msg]{Static[state, msg](vdom.P("x")), Static[state, msg](nil)},
		},
		{
			name:   "empty slug",
			fields: []*Field[state, msg]{Text("", "Name", present(func(s state) string { return s.Name }), set(""))},
			want:   []string{"F001:"},
		},
		{
			name:   "duplicate slug",
			fields: []*Field[state, msg]{nameField(), colorField(), nameField()},
			want:   []string{"F002:name"},
		},
		{
			name: "duplicate option slug",
			fields: []*Field[state, msg]{
				Radio("c", "", []Option{Opt("A", "a"), Opt("B", "a")}, present(func(s state) string { return s.Color }), set("c")),
			},
			want: []string{"F003:c"},
		},
		{
			name: "missing options",
			fields: []*Field[state, msg]{
				Select("s", "", nil, present(func(s state) string { return s.Size }), set("s")),
			},
			want: []string{"F004:s"},
		},
		{
			name: "missing readers",
			fields: []*Field[state, msg]{
				Text[state, msg]("t", "", nil, nil),
				Checkbox[state, msg]("c", "", nil, nil),
				Autocomplete[state, msg]("a", "", countries, nil, nil, present(func(s state) string { return s.Country }), nil),
			},
			want: []string{"F005:t", "F005:c", "F005:a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Lint(tt.fields...)
			if diff := cmp.Diff(tt.want, codes(err)); diff != "" {
				t.Errorf("Lint() mismatch (-want +got):\n%s", diff)
			}
			if (err == nil) != (len(tt.want) == 0) {
				t.Errorf("Lint() = %v", err)
			}
		})
	}
}
