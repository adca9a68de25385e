package patcher

import (
	"strings"
)

const (
	// MarkerToken names the language-list accessor inside SDK bundles.
	// Only the first occurrence per file is ever patched.
	MarkerToken = "spellcheckGetLanguages"

	funcStartToken  = "function(){"
	terminatorToken = "};"
)

type spliceState int

const (
	seekMarker spliceState = iota
	seekFuncStart
	seekTerminator
	absorbDoubleClose
	spliceDone
)

// Splice replaces the body of the first marker function in content
// with `return <payload>;`. It reports false when content has no
// recognizable marker/function/terminator sequence, leaving the input
// unchanged. No JavaScript parsing happens here; the bundle is opaque
// text with one recognized splice point.
func Splice(content, payload string) (string, bool) {
	var markerAt, bodyAt, endAt int

	for state := seekMarker; state != spliceDone; {
		switch state {
		case seekMarker:
			markerAt = strings.Index(content, MarkerToken)
			if markerAt < 0 {
				return content, false
			}
			state = seekFuncStart
		case seekFuncStart:
			i := strings.Index(content[markerAt:], funcStartToken)
			if i < 0 {
				return content, false
			}
			bodyAt = markerAt + i + len(funcStartToken)
			state = seekTerminator
		case seekTerminator:
			i := strings.Index(content[markerAt:], terminatorToken)
			if i < 0 {
				return content, false
			}
			endAt = markerAt + i
			state = absorbDoubleClose
		case absorbDoubleClose:
			// Some minifiers emit the closer of the enclosing scope
			// immediately after the accessor's own "};". Extend the cut
			// past the doubled closer so it is not left dangling after
			// the splice. Known minifier artifact, do not generalize.
			if strings.HasPrefix(content[endAt+len(terminatorToken):], terminatorToken) {
				endAt += len(terminatorToken)
			}
			state = spliceDone
		}
	}

	var b strings.Builder
	b.Grow(bodyAt + len("return ") + len(payload) + len(terminatorToken) + len(content) - endAt)
	b.WriteString(content[:bodyAt])
	b.WriteString("return ")
	b.WriteString(payload)
	b.WriteString(terminatorToken)
	b.WriteString(content[endAt+len(terminatorToken):])
	return b.String(), true
}
