package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/forms/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "input is void",
			node: vdom.Input(vdom.Type("text"), vdom.Name("email")),
			want: `<input name="email" type="text">`,
		},
		{
			name: "empty value is kept",
			node: vdom.Input(vdom.Value("")),
			want: `<input value="">`,
		},
		{
			name: "boolean attributes",
			node: vdom.Input(vdom.Type("checkbox"), vdom.Checked(true), vdom.Disabled(), vdom.Selected(false)),
			want: `<input checked disabled type="checkbox">`,
		},
		{
			name: "attribute escaping",
			node: vdom.Input(vdom.Value(`a"b<c>`)),
			want: `<input value="a&quot;b&lt;c&gt;">`,
		},
		{
			name: "nested",
			node: vdom.Div(vdom.Class("form-field"), vdom.Label(vdom.For("x"), "Name")),
			want: `<div class="form-field"><label for="x">Name</label></div>`,
		},
		{
			name: "fragment",
			node: vdom.Fragment(vdom.Span("a"), vdom.Span("b")),
			want: `<span>a</span><span>b</span>`,
		},
		{
			name: "raw",
			node: vdom.Div(vdom.Raw("<em>ok</em>")),
			want: `<div><em>ok</em></div>`,
		},
		{
			name: "component",
			node: vdom.Div(vdom.Func(func() *vdom.VNode { return vdom.P("inside") })),
			want: `<div><p>inside</p></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEventMarkers(t *testing.T) {
	node := vdom.Input(vdom.ID("name"), vdom.OnInput(func(v string) string { return v }))
	vdom.AssignHIDs(node, vdom.NewHIDGenerator())

	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `<input id="name" data-hid="h1" data-on-input="true">`; html != want {
		t.Errorf("got %q, want %q", html, want)
	}

	static, err := NewRenderer(RendererConfig{OmitEventMarkers: true}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(static, "data-on-input") {
		t.Errorf("markers should be omitted, got %q", static)
	}
}

func TestRenderNodes(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderNodes(&buf, []*vdom.VNode{vdom.Label("A"), nil, vdom.Hr()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "<label>A</label><hr>" {
		t.Errorf("got %q", buf.String())
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})
	html, err := renderer.RenderToString(vdom.Div(vdom.P("x")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "\n  <p>") || !strings.HasSuffix(html, "</div>\n") {
		t.Errorf("got %q", html)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(99)})
	if err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Body:        vdom.Div(vdom.Text("Hello")),
		Title:       "Sign <up>",
		StyleSheets: []string{"/forms.css"},
		Scripts:     []ScriptTag{{Src: "/live.js", Defer: true}, {Inline: "init()"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		"<title>Sign &lt;up&gt;</title>",
		`<link rel="stylesheet" href="/forms.css">`,
		"<div>Hello</div>",
		`<script src="/live.js" defer></script>`,
		"<script>init()</script>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestRenderRawTextElements(t *testing.T) {
	tests := []struct {
		name   string
		pretty bool
		node   *vdom.VNode
		want   string
	}{
		{"textarea", false, vdom.Textarea(vdom.Name("bio"), "\nabc"), "<textarea name=\"bio\">\n\nabc</textarea>"},
		{"empty textarea", false, vdom.Textarea(), "<textarea>\n</textarea>"},
		{"pretty textarea", true, vdom.Div(vdom.Textarea("a  b")), "<div>\n  <textarea>\na  b</textarea>\n</div>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRenderer(RendererConfig{Pretty: tt.pretty}).RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
