package transformers

import (
	"strings"
	"unicode"
)

// dedupKeyLength is the comparison prefix length. Truncating to 30
// characters is a deliberate fuzzy-match heuristic carried over from the
// previous implementation; keep it as-is for compatibility.
const dedupKeyLength = 30

var punctuationStripper = strings.NewReplacer(",", "", ".", "", "-", "")

var unitMarkerStripper = strings.NewReplacer("apt.", "", "apt", "", "unit.", "", "unit", "", "#", "")

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// DedupKey lowercases, strips punctuation, whitespace and apt/unit markers,
// then truncates. "123 Main St, Apt 4" and "123 main st apt4" reduce to the
// same key.
func (t *addressTransformer) DedupKey(address string) string {
	key := strings.ToLower(address)
	key = punctuationStripper.Replace(key)
	key = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, key)
	key = unitMarkerStripper.Replace(key)

	runes := []rune(key)
	if len(runes) > dedupKeyLength {
		return string(runes[:dedupKeyLength])
	}
	return key
}
