package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string,
// EventHandler, []EventHandler, or []any holding any of these.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	for _, arg := range args {
		node.apply(arg)
	}
	return node
}

func (v *VNode) apply(arg any) {
	switch a := arg.(type) {
	case nil:
		// Ignore nil (allows conditional attributes)

	case Attr:
		v.setAttr(a)

	case []Attr:
		for _, attr := range a {
			v.setAttr(attr)
		}

	case *VNode:
		if a != nil {
			v.Children = append(v.Children, a)
		}

	case []*VNode:
		for _, child := range a {
			if child != nil {
				v.Children = append(v.Children, child)
			}
		}

	case Component:
		v.Children = append(v.Children, &VNode{
			Kind: KindComponent,
			Comp: a,
		})

	case string:
		// Shorthand for text node
		v.Children = append(v.Children, Text(a))

	case EventHandler:
		if IsHandler(a.Handler) {
			v.Props[a.Event] = a.Handler
		}

	case []EventHandler:
		for _, h := range a {
			if IsHandler(h.Handler) {
				v.Props[h.Event] = h.Handler
			}
		}

	case []any:
		for _, nested := range a {
			v.apply(nested)
		}
	}
}

// setAttr stores a single attribute. Class values accumulate so that caller
// attributes and state classes can be combined on one element.
func (v *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	switch a.Key {
	case "key":
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	case "class":
		add, _ := a.Value.(string)
		if add == "" {
			return
		}
		if existing, ok := v.Props["class"].(string); ok && existing != "" {
			v.Props["class"] = existing + " " + add
			return
		}
	}
	v.Props[a.Key] = a.Value
}

// Document structure elements

func Body(args ...any) *VNode  { return createElement("body", args) }
func Title(args ...any) *VNode { return createElement("title", args) }

// Content elements

func Main(args ...any) *VNode { return createElement("main", args) }
func H1(args ...any) *VNode   { return createElement("h1", args) }
func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }
func A(args ...any) *VNode    { return createElement("a", args) }
func Hr(args ...any) *VNode   { return createElement("hr", args) }

// Table elements (calendar grids)

func Table(args ...any) *VNode { return createElement("table", args) }
func Thead(args ...any) *VNode { return createElement("thead", args) }
func Tbody(args ...any) *VNode { return createElement("tbody", args) }
func Tr(args ...any) *VNode    { return createElement("tr", args) }
func Th(args ...any) *VNode    { return createElement("th", args) }
func Td(args ...any) *VNode    { return createElement("td", args) }

// Form elements

func Form(args ...any) *VNode     { return createElement("form", args) }
func Input(args ...any) *VNode    { return createElement("input", args) }
func Textarea(args ...any) *VNode { return createElement("textarea", args) }
func Select(args ...any) *VNode   { return createElement("select", args) }
func Option(args ...any) *VNode   { return createElement("option", args) }
func Button(args ...any) *VNode   { return createElement("button", args) }
func Label(args ...any) *VNode    { return createElement("label", args) }
func Fieldset(args ...any) *VNode { return createElement("fieldset", args) }
func Legend(args ...any) *VNode   { return createElement("legend", args) }
