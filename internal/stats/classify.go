package stats

import (
	"fmt"
	"math"
	"strings"
)

// Strength buckets an effect size the way the exercise sheet defines it.
func Strength(r float64) string {
	abs := math.Abs(r)
	switch {
	case abs < 0.1:
		return "none"
	case abs < 0.3:
		return "weak"
	case abs < 0.5:
		return "moderate"
	default:
		return "strong"
	}
}

// Direction reports the sign of a relation, with a no-relation band below 0.1.
func Direction(r float64) string {
	if math.Abs(r) < 0.1 {
		return "no relation"
	}
	if r > 0 {
		return "positive"
	}
	return "negative"
}

// FormatR renders a coefficient the way students see it in their statistics
// course: two decimals, decimal comma, significance stars. The comma is an
// explicit substitution, not a locale setting, so output never depends on
// the host platform.
func FormatR(r, p float64) string {
	stars := ""
	switch {
	case p < 0.001:
		stars = "***"
	case p < 0.01:
		stars = "**"
	case p < 0.05:
		stars = "*"
	}
	return strings.Replace(fmt.Sprintf("%.2f%s", r, stars), ".", ",", 1)
}
