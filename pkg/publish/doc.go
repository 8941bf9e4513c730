// Package publish renders a form snapshot to a standalone HTML page and
// stores it in an S3 bucket or a local directory.
//
// A snapshot is the form as it looks for one state, with event markers
// stripped so the page works without the preview runtime:
//
//	html, err := publish.Snapshot(def, state, form.DefaultClasses())
//	key, err := publisher.Publish(ctx, "signup", html)
package publish
