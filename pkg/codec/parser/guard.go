package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"

	"c2e-dev/c2e/pkg/codec/ast"
	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

// Guard syntax. A bound inside a range is either a hex escape or a single
// literal character; the escape alternative comes first so "U+0041" is not
// consumed one character at a time.
var (
	unicodeFormPattern = regexp.MustCompile(`^[uU]\+([0-9a-fA-F]{6}|[0-9a-fA-F]{4})$`)
	rangePattern       = regexp.MustCompile(`(?s)^\(([uU]\+(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{4})|.)-([uU]\+(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{4})|.)\)$`)
)

// parseGuard compiles guard text into a predicate. Three mutually exclusive
// forms are tried in order: a single literal character, a U+HHHH/U+HHHHHH
// escape, and an inclusive range (A-B). The forms are equivalent by ordinal
// only; surrogate, control, and combining code points are all legal.
func parseGuard(text string, loc codecerrors.Location) (ast.Predicate, error) {
	if utf8.RuneCountInString(text) == 1 {
		r, _ := utf8.DecodeRuneInString(text)
		return ast.Eq(ast.NewCandidate(), ast.NewCodepoint(r)), nil
	}

	if m := unicodeFormPattern.FindStringSubmatch(text); m != nil {
		r, err := parseHexEscape(m[1], loc)
		if err != nil {
			return nil, err
		}
		return ast.Eq(ast.NewCandidate(), ast.NewCodepoint(r)), nil
	}

	if m := rangePattern.FindStringSubmatch(text); m != nil {
		lo, err := parseBound(m[1], loc)
		if err != nil {
			return nil, err
		}
		hi, err := parseBound(m[2], loc)
		if err != nil {
			return nil, err
		}
		if lo.Ord() > hi.Ord() {
			return nil, &codecerrors.Error{
				Type:       codecerrors.ErrorTypeMalformedGuard,
				Message:    fmt.Sprintf("range %q is reversed: U+%04X > U+%04X", text, lo.Ord(), hi.Ord()),
				Location:   loc,
				Suggestion: "the left bound of a range must not exceed the right bound by ordinal",
			}
		}
		lower := ast.Gte(ast.NewCandidate(), lo)
		upper := ast.Lte(ast.NewCandidate(), hi)
		return ast.And(lower, upper), nil
	}

	return nil, &codecerrors.Error{
		Type:       codecerrors.ErrorTypeMalformedGuard,
		Message:    fmt.Sprintf("guard %q matches no guard form", text),
		Location:   loc,
		Suggestion: "a guard is a single character, a U+HHHH/U+HHHHHH escape, or a range (A-B)",
	}
}

// parseBound turns one side of a range into a codepoint.
func parseBound(bound string, loc codecerrors.Location) (*ast.Codepoint, error) {
	if m := unicodeFormPattern.FindStringSubmatch(bound); m != nil {
		r, err := parseHexEscape(m[1], loc)
		if err != nil {
			return nil, err
		}
		return ast.NewCodepoint(r), nil
	}
	r, _ := utf8.DecodeRuneInString(bound)
	return ast.NewCodepoint(r), nil
}

// parseHexEscape converts the digits of a U+ escape into a rune. The digits
// already matched [0-9a-fA-F]{4} or {6}; only the scalar-value ceiling can
// still fail here.
func parseHexEscape(digits string, loc codecerrors.Location) (rune, error) {
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > uint64(unicode.MaxRune) {
		return 0, &codecerrors.Error{
			Type:     codecerrors.ErrorTypeMalformedGuard,
			Message:  fmt.Sprintf("U+%s is not a Unicode scalar value", digits),
			Location: loc,
		}
	}
	return rune(v), nil
}
