package vdom

import "testing"

type testMsg struct {
	Name  string
	Value string
	On    bool
}

type outerMsg struct {
	Inner testMsg
}

func TestEmit(t *testing.T) {
	input := Input(
		OnInput(func(v string) testMsg { return testMsg{Name: "input", Value: v} }),
		OnChange(func(on bool) testMsg { return testMsg{Name: "change", On: on} }),
		OnFocus(func() testMsg { return testMsg{Name: "focus"} }),
	)

	tests := []struct {
		name    string
		event   string
		payload []string
		want    testMsg
	}{
		{name: "string payload", event: "input", payload: []string{"abc"}, want: testMsg{Name: "input", Value: "abc"}},
		{name: "missing payload", event: "input", want: testMsg{Name: "input"}},
		{name: "bool payload", event: "change", payload: []string{"on"}, want: testMsg{Name: "change", On: true}},
		{name: "false bool payload", event: "change", payload: []string{"false"}, want: testMsg{Name: "change"}},
		{name: "no payload", event: "focus", want: testMsg{Name: "focus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Emit[testMsg](input, tt.event, tt.payload...)
			if !ok {
				t.Fatalf("Emit(%q) ok = false", tt.event)
			}
			if got != tt.want {
				t.Errorf("Emit(%q) = %+v, want %+v", tt.event, got, tt.want)
			}
		})
	}

	t.Run("missing handler", func(t *testing.T) {
		if _, ok := Emit[testMsg](input, "click"); ok {
			t.Error("Emit on missing handler should report false")
		}
	})

	t.Run("wrong message type", func(t *testing.T) {
		if _, ok := Emit[string](input, "focus"); ok {
			t.Error("Emit with a different message type should report false")
		}
	})
}

func TestMap(t *testing.T) {
	inner := Div(Class("picker"),
		Button(OnClick(func() testMsg { return testMsg{Name: "next"} }), "›"),
		Input(OnInput(func(v string) testMsg { return testMsg{Name: "typed", Value: v} })),
	)

	mapped := Map(inner, func(m testMsg) outerMsg { return outerMsg{Inner: m} })

	if mapped == inner {
		t.Fatal("Map should return a copy")
	}
	if got := mapped.Attr("class"); got != "picker" {
		t.Errorf("class = %q, want picker", got)
	}

	msg, ok := Emit[outerMsg](mapped.Children[0], "click")
	if !ok || msg.Inner.Name != "next" {
		t.Errorf("mapped click = %+v, %v", msg, ok)
	}
	msg, ok = Emit[outerMsg](mapped.Children[1], "input", "x")
	if !ok || msg.Inner.Value != "x" {
		t.Errorf("mapped input = %+v, %v", msg, ok)
	}

	// The original tree keeps its handler types.
	if _, ok := Emit[testMsg](inner.Children[0], "click"); !ok {
		t.Error("original handler should be untouched")
	}
}

func TestMapNil(t *testing.T) {
	if Map[testMsg, outerMsg](nil, func(m testMsg) outerMsg { return outerMsg{} }) != nil {
		t.Error("Map(nil) should be nil")
	}
}
