package domain

import (
	"sort"
	"strings"
)

// MainAttributes are the four top-level stat categories every skill
// rolls against.
var MainAttributes = []string{"육체", "감각", "정신", "사회"}

// subToMain maps fixed skills to their governing main attribute. The
// match is a prefix match so variants like 백병술 still resolve.
var subToMain = map[string]string{
	"백병": "육체",
	"회피": "육체",
	"사격": "감각",
	"지각": "감각",
	"RC": "정신",
	"의지": "정신",
	"교섭": "사회",
	"조달": "사회",
}

// categoryPrefixes maps dynamic skill categories (운전:4륜, 지식:요리, ...)
// to their main attribute. Category rules win over the skill table when
// a token satisfies both.
var categoryPrefixes = map[string]string{
	"운전:": "육체",
	"정보:": "사회",
	"예술:": "감각",
	"지식:": "정신",
}

var (
	sortedCategoryPrefixes = sortedKeys(categoryPrefixes)
	sortedSubAttributes    = sortedKeys(subToMain)
)

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ResolveMainAttribute maps an attribute token to its governing main
// attribute. Unknown tokens resolve to themselves; the resolver never
// fails.
func ResolveMainAttribute(token string) string {
	if main, ok := SubAttributeMain(token); ok {
		return main
	}
	return token
}

// SubAttributeMain reports the main attribute a token belongs to via
// the category-prefix or skill tables. It returns false for tokens that
// are not governed by either rule (including the main attributes
// themselves), which the sheet view uses to group sub-attributes.
func SubAttributeMain(token string) (string, bool) {
	for _, prefix := range sortedCategoryPrefixes {
		if strings.HasPrefix(token, prefix) {
			return categoryPrefixes[prefix], true
		}
	}
	for _, sub := range sortedSubAttributes {
		if strings.HasPrefix(token, sub) {
			return subToMain[sub], true
		}
	}
	return "", false
}
