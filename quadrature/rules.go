package quadrature

import (
	"errors"
	"fmt"
	"strings"
)

// Rule names one quadrature formula.
type Rule string

const (
	// RuleLeft evaluates the integrand at each cell's left edge.
	RuleLeft Rule = "left"
	// RuleRight evaluates at the right edge.
	RuleRight Rule = "right"
	// RuleMiddle evaluates at the cell midpoint.
	RuleMiddle Rule = "middle"
	// RuleRandom evaluates at a uniformly drawn point inside the cell.
	RuleRandom Rule = "random"
	// RuleTrapezoid averages both edges.
	RuleTrapezoid Rule = "trapezoid"
	// RuleSimpson weights edges and midpoint 1:4:1.
	RuleSimpson Rule = "simpson"
)

// ErrUnknownRule is returned by ParseRule for unrecognized names.
var ErrUnknownRule = errors.New("quadrature: unknown rule")

// RectangleRules lists the four rectangle variants in report order.
var RectangleRules = []Rule{RuleMiddle, RuleLeft, RuleRight, RuleRandom}

// AllRules lists every rule in report order.
var AllRules = []Rule{RuleMiddle, RuleLeft, RuleRight, RuleRandom, RuleTrapezoid, RuleSimpson}

// Deterministic reports whether repeated calls on the same input always
// produce the same value.
func (r Rule) Deterministic() bool { return r != RuleRandom }

// Title returns a human-readable label.
func (r Rule) Title() string {
	switch r {
	case RuleLeft:
		return "Rectangle (left)"
	case RuleRight:
		return "Rectangle (right)"
	case RuleMiddle:
		return "Rectangle (middle)"
	case RuleRandom:
		return "Rectangle (random)"
	case RuleTrapezoid:
		return "Trapezoid"
	case RuleSimpson:
		return "Simpson"
	default:
		return string(r)
	}
}

// ParseRule maps a case-insensitive name to a Rule.
// "mid"/"midpoint", "trap" and "rect" are accepted as aliases; "rect"
// means the midpoint rectangle.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return RuleLeft, nil
	case "right":
		return RuleRight, nil
	case "middle", "mid", "midpoint", "rect":
		return RuleMiddle, nil
	case "random", "rand":
		return RuleRandom, nil
	case "trapezoid", "trap", "trapez":
		return RuleTrapezoid, nil
	case "simpson":
		return RuleSimpson, nil
	}

	return "", fmt.Errorf("ParseRule(%q): %w", s, ErrUnknownRule)
}

// ParseRules parses every name and keeps the input order.
func ParseRules(names []string) ([]Rule, error) {
	out := make([]Rule, 0, len(names))
	for _, s := range names {
		r, err := ParseRule(s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}
