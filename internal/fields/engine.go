// Package fields extracts structured business fields from contract and
// invoice text with ordered regex fallback chains. Matching is deliberately
// deterministic: per field the first pattern that matches wins and later
// candidates are never consulted.
package fields

import "regexp"

// firstMatch runs the chain in declared order and returns the first capture,
// trimmed by the caller's normalizer. Submatch 1 is the captured value.
func firstMatch(text string, chain []*regexp.Regexp) (string, bool) {
	for _, re := range chain {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func textField(text string, chain []*regexp.Regexp) *string {
	raw, ok := firstMatch(text, chain)
	if !ok {
		return nil
	}
	v := trim(raw)
	return &v
}

func dateField(text string, chain []*regexp.Regexp) *string {
	raw, ok := firstMatch(text, chain)
	if !ok {
		return nil
	}
	iso, ok := ParseDate(trim(raw))
	if !ok {
		return nil
	}
	return &iso
}

func amountField(text string, chain []*regexp.Regexp) *float64 {
	raw, ok := firstMatch(text, chain)
	if !ok {
		return nil
	}
	v, ok := ParseAmount(trim(raw))
	if !ok {
		return nil
	}
	return &v
}
