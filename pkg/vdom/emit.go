package vdom

import (
	"reflect"
	"strings"
)

// IsHandler reports whether a prop value is an event handler function.
func IsHandler(value any) bool {
	if value == nil {
		return false
	}
	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Func && !v.IsNil()
}

// Emit fires the node's handler for event and returns the message it produced.
// The payload is passed to func(string) M handlers; func(bool) M handlers
// receive true for "true", "on" and "checked". It returns false when the node
// has no handler for the event or the handler produces a different type.
func Emit[M any](node *VNode, event string, payload ...string) (M, bool) {
	var value string
	if len(payload) > 0 {
		value = payload[0]
	}
	return Invoke[M](node.Handler(event), value)
}

// Invoke calls a handler with the payload rules described on Emit.
func Invoke[M any](handler any, payload string) (M, bool) {
	var zero M
	switch fn := handler.(type) {
	case func() M:
		return fn(), true
	case func(string) M:
		return fn(payload), true
	case func(bool) M:
		return fn(parseBool(payload)), true
	default:
		return zero, false
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "checked", "1":
		return true
	default:
		return false
	}
}

// Map returns a copy of the tree in which every handler producing A is
// rewritten to produce B. Handlers of any other type are kept unchanged.
func Map[A, B any](node *VNode, f func(A) B) *VNode {
	if node == nil {
		return nil
	}
	out := &VNode{
		Kind: node.Kind,
		Tag:  node.Tag,
		Key:  node.Key,
		Text: node.Text,
		Comp: node.Comp,
		HID:  node.HID,
	}
	if node.Props != nil {
		out.Props = make(Props, len(node.Props))
		for key, value := range node.Props {
			if strings.HasPrefix(key, "on") {
				value = mapHandler(value, f)
			}
			out.Props[key] = value
		}
	}
	if node.Children != nil {
		out.Children = make([]*VNode, 0, len(node.Children))
		for _, child := range node.Children {
			out.Children = append(out.Children, Map(child, f))
		}
	}
	return out
}

func mapHandler[A, B any](handler any, f func(A) B) any {
	switch fn := handler.(type) {
	case func() A:
		return func() B { return f(fn()) }
	case func(string) A:
		return func(v string) B { return f(fn(v)) }
	case func(bool) A:
		return func(v bool) B { return f(fn(v)) }
	default:
		return handler
	}
}
