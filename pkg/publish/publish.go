package publish

import (
	"bytes"
	"context"
	"errors"
	"regexp"

	"github.com/vango-dev/forms/pkg/form"
	"github.com/vango-dev/forms/pkg/render"
	"github.com/vango-dev/forms/pkg/schema"
)

// ErrTooLarge is returned when a snapshot exceeds the publisher's size limit.
var ErrTooLarge = errors.New("publish: snapshot too large")

// ErrInvalidName is returned for names that are not safe as object keys or
// file names.
var ErrInvalidName = errors.New("publish: invalid snapshot name")

// Publisher stores rendered snapshots.
type Publisher interface {
	// Publish stores html under name and returns where it was written.
	Publish(ctx context.Context, name string, html []byte) (string, error)
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidName reports whether name can be used as a snapshot name.
func ValidName(name string) bool {
	return len(name) <= 128 && namePattern.MatchString(name) && name != "." && name != ".."
}

// Snapshot renders def in state s as a complete HTML document.
func Snapshot(def *schema.Definition, s schema.State, classes form.Classes) ([]byte, error) {
	r := render.NewRenderer(render.RendererConfig{OmitEventMarkers: true})
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, def.Page(s, classes)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
