package fields

import "strings"

// stampKeywords flag pages likely carrying a seal or signature block.
// Recall-oriented: a false positive only costs the reviewer a glance.
var stampKeywords = []string{"盖章", "签字", "印章", "双方", "签署", "生效"}

// DetectStampPages returns the zero-based indices of pages whose text
// contains any stamp keyword. Formats without page structure yield nil.
func DetectStampPages(pages []string) []int {
	var flagged []int
	for i, page := range pages {
		for _, kw := range stampKeywords {
			if strings.Contains(page, kw) {
				flagged = append(flagged, i)
				break
			}
		}
	}
	return flagged
}
