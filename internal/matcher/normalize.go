package matcher

import "strings"

// normalizeDescription lowercases s and strips every character that is not
// an ASCII letter or digit, so "AWS Cloud-Services" and "awscloudservices"
// compare equal.
func normalizeDescription(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// descriptionsSimilar reports whether either normalized description
// contains the other. Both sides must normalize to at least minLen
// characters: without that guard a description that is all punctuation
// would claim any amount/type-equal counterpart.
func descriptionsSimilar(a, b string, minLen int) bool {
	na := normalizeDescription(a)
	nb := normalizeDescription(b)
	if len(na) < minLen || len(nb) < minLen {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
