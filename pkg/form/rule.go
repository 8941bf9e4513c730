package form

import (
	"regexp"
	"strings"
)

// RuleKind identifies the variant of a Rule.
type RuleKind uint8

const (
	RuleNotEmpty RuleKind = iota
	RulePattern
	RuleCustom
)

// Rule is a validation rule over application state S. Message is shown when
// the rule fails.
type Rule[S any] struct {
	Kind    RuleKind
	Message string
	Pattern *regexp.Regexp
	Pred    func(S) bool
}

// NotEmpty fails when the field's value is absent or blank after trimming.
// It holds trivially for checkboxes, checkbox groups and static markup.
func NotEmpty[S any](msg string) Rule[S] {
	return Rule[S]{Kind: RuleNotEmpty, Message: msg}
}

// MatchesPattern fails when the value does not match pattern anywhere.
// It only applies to text, textarea and autocomplete fields and holds
// trivially for every other kind. It panics if pattern does not compile.
func MatchesPattern[S any](pattern, msg string) Rule[S] {
	return Matches[S](regexp.MustCompile(pattern), msg)
}

// Matches is MatchesPattern for a compiled expression.
func Matches[S any](re *regexp.Regexp, msg string) Rule[S] {
	return Rule[S]{Kind: RulePattern, Message: msg, Pattern: re}
}

// Custom fails when pred returns false. The predicate sees the whole state,
// so it can compare several fields.
func Custom[S any](pred func(S) bool, msg string) Rule[S] {
	return Rule[S]{Kind: RuleCustom, Message: msg, Pred: pred}
}

// holds evaluates the rule for a field of the given kind whose primary value
// is read by reader. A nil reader means the kind has no primary value.
func (r Rule[S]) holds(state S, kind Kind, reader func(S) (string, bool)) bool {
	switch r.Kind {
	case RuleNotEmpty:
		if reader == nil {
			return true
		}
		return strings.TrimSpace(read(reader, state)) != ""
	case RulePattern:
		if !kind.matchable() || r.Pattern == nil {
			return true
		}
		return r.Pattern.MatchString(read(reader, state))
	case RuleCustom:
		if r.Pred == nil {
			return true
		}
		return r.Pred(state)
	default:
		return true
	}
}
