// Package render serializes vdom trees to HTML.
//
// The renderer handles text and attribute escaping, void elements, boolean
// attributes and deterministic attribute ordering. Event handlers are not
// serialized; elements that carry one get a data-on-<event> marker, and a
// data-hid attribute when the host assigned hydration IDs with
// vdom.AssignHIDs.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(form.Wrapper(form.Render(state, field)))
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "Sign up",
//	    Body:  body,
//	})
//
// # Security
//
// All text content is escaped. KindRaw nodes are written as is and must only
// carry trusted or sanitized markup.
package render
