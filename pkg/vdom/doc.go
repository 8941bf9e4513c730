// Package vdom provides the virtual DOM node model emitted by form rendering.
//
// A VNode tree is a plain in-memory description of markup: elements, text,
// fragments and raw HTML. Props holds attributes and event handlers. Event
// handlers are ordinary Go functions that produce an application message; the
// host decides when to call them.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("form-field"), ID("email-field"),
//	    Label(For("email"), Text("Email")),
//	    Input(Type("email"), ID("email"), OnInput(func(v string) Msg { return SetEmail(v) })),
//	)
//
// Class attributes accumulate: passing Class twice joins both values.
//
// # Messages
//
// Handlers are typed by the message they produce. Map rewrites every handler
// in a tree from one message type to another, which lets a sub-component's
// view be embedded in a larger application:
//
//	vdom.Map(picker.View(), func(m datepicker.Msg) Msg { return PickerMsg{m} })
//
// Emit fires a handler by event name, which is how hosts and tests deliver
// browser events:
//
//	msg, ok := vdom.Emit[Msg](input, "input", "hello")
//
// # Hydration
//
// AssignHIDs walks the tree and assigns hydration IDs to interactive elements
// (those with event handlers). These IDs let a host route a browser event back
// to the node that declared the handler.
package vdom
