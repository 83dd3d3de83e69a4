package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ComboTiers holds one combo's bodies keyed by condition token
// (e.g. "99↓", "100↑"). Several tiers may coexist under one combo name.
type ComboTiers map[string]string

// ComboCondition is a parsed condition token: an erosion-rate threshold
// with a direction. AtOrAbove selects when rate >= threshold (↑),
// otherwise when rate <= threshold (↓).
type ComboCondition struct {
	Threshold int
	AtOrAbove bool
}

// ParseComboCondition parses a token of the form <digits>↑ or <digits>↓.
func ParseComboCondition(token string) (ComboCondition, error) {
	var dir string
	switch {
	case strings.HasSuffix(token, "↑"):
		dir = "↑"
	case strings.HasSuffix(token, "↓"):
		dir = "↓"
	default:
		return ComboCondition{}, fmt.Errorf("condition %q must end with ↑ or ↓", token)
	}
	num := strings.TrimSuffix(token, dir)
	n, err := strconv.Atoi(num)
	if err != nil || num == "" {
		return ComboCondition{}, fmt.Errorf("condition %q must start with an integer", token)
	}
	return ComboCondition{Threshold: n, AtOrAbove: dir == "↑"}, nil
}

// Matches reports whether the condition admits the given erosion rate.
func (c ComboCondition) Matches(rate int) bool {
	if c.AtOrAbove {
		return rate >= c.Threshold
	}
	return rate <= c.Threshold
}

// String renders the condition back to its token form.
func (c ComboCondition) String() string {
	if c.AtOrAbove {
		return strconv.Itoa(c.Threshold) + "↑"
	}
	return strconv.Itoa(c.Threshold) + "↓"
}

// SelectComboTier picks the tier matching the erosion rate. Tiers are
// scanned in ascending (threshold, ↓ before ↑) order and the last match
// wins, so the tightest high-rate tier is preferred deterministically.
// Tokens that fail to parse are skipped.
func SelectComboTier(tiers ComboTiers, rate int) (condition, body string, ok bool) {
	type tier struct {
		cond  ComboCondition
		token string
	}
	parsed := make([]tier, 0, len(tiers))
	for token := range tiers {
		cond, err := ParseComboCondition(token)
		if err != nil {
			continue
		}
		parsed = append(parsed, tier{cond: cond, token: token})
	}
	sort.Slice(parsed, func(i, j int) bool {
		if parsed[i].cond.Threshold != parsed[j].cond.Threshold {
			return parsed[i].cond.Threshold < parsed[j].cond.Threshold
		}
		return !parsed[i].cond.AtOrAbove && parsed[j].cond.AtOrAbove
	})
	for _, t := range parsed {
		if t.cond.Matches(rate) {
			condition, body, ok = t.token, tiers[t.token], true
		}
	}
	return condition, body, ok
}
