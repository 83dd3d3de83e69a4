package domain

import "strings"

// syndromeTranslation maps Korean syndrome names to their English
// rulebook spellings. Unknown names pass through and are upper-cased.
var syndromeTranslation = map[string]string{
	"엔젤 헤일로": "ANGEL HALO",
	"발로르":    "BALOR",
	"블랙독":    "BLACK DOG",
	"브람스토커":  "BRAM STOKER",
	"키마이라":   "CHIMAERA",
	"엑자일":    "EXILE",
	"하누만":    "HANUMAN",
	"모르페우스":  "MORPHEUS",
	"노이만":    "NEUMANN",
	"오르쿠스":   "ORCUS",
	"샐러맨더":   "SALAMANDRA",
	"솔라리스":   "SOLARIS",
	"우로보로스":  "OUROBOROS",
	"아자토스":   "AZATHOTH",
	"미스틸테인":  "MISTILTEN",
	"글레이프닐":  "GLEIPNIR",
}

// TranslateSyndrome converts a syndrome name to its upper-cased English
// form.
func TranslateSyndrome(name string) string {
	if en, ok := syndromeTranslation[name]; ok {
		return strings.ToUpper(en)
	}
	return strings.ToUpper(name)
}

// JoinSyndromes renders up to three syndromes the way the sheet view
// prints them.
func JoinSyndromes(names []string) string {
	translated := make([]string, len(names))
	for i, n := range names {
		translated[i] = TranslateSyndrome(n)
	}
	return strings.Join(translated, " × ")
}

// NoBreed is the sheet-view placeholder when no breed is set or the
// value is unrecognized.
const NoBreed = "브리드 없음"

// NormalizeBreed maps the three Korean breed words to their canonical
// tags, case-insensitively. Anything else reads as no breed.
func NormalizeBreed(breed string) string {
	switch strings.ToLower(breed) {
	case "퓨어":
		return "PURE"
	case "크로스":
		return "CROSS"
	case "트라이":
		return "TRI"
	default:
		return NoBreed
	}
}
