package engine

import "strings"

// regexMeta is the set of bytes that end a plain literal run in an RE2
// pattern. It is conservative: many of these are literal in some positions,
// but treating them all as metacharacters only costs prefilter recall, never
// correctness (a rule whose atom we fail to extract just always runs its
// regex, the same as before atom prefiltering existed).
const regexMeta = `\.^$*+?()[]{}|`

// extractAtom pulls the longest run of plain literal characters (length >=
// minLen) out of a regex source string, for use as an Aho-Corasick
// prefilter: if the literal never appears in the document, the regex can't
// match and is skipped entirely. Returns ("", false) when no run long
// enough to be worth prefiltering on exists, in which case the rule always
// runs its regex. This is a deliberately simplified cousin of the teacher's
// multi-branch alternation-aware atom extractor: a pattern containing
// alternation or a ?, * or {n,m} quantifier gets no atom at all (any of
// its literal runs may be optional), and character class contents are
// never taken as literal text.
func extractAtom(pattern string, minLen int) (string, bool) {
	if strings.ContainsAny(pattern, "|?*{") {
		return "", false
	}

	var best strings.Builder
	var cur strings.Builder
	flushBest := func() {
		if cur.Len() > best.Len() {
			best.Reset()
			best.WriteString(cur.String())
		}
		cur.Reset()
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' {
			flushBest()
			i++ // skip the escaped character; escapes often mean class shorthand
			continue
		}
		if c == '[' {
			flushBest()
			for i++; i < len(pattern) && pattern[i] != ']'; i++ {
				if pattern[i] == '\\' {
					i++
				}
			}
			continue
		}
		if strings.IndexByte(regexMeta, c) >= 0 {
			flushBest()
			continue
		}
		cur.WriteByte(c)
	}
	flushBest()

	if best.Len() < minLen {
		return "", false
	}
	return best.String(), true
}
