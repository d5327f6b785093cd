// Package merge implements the tag-region merge engine: locating tagged
// zone regions in a template buffer and running the ordered delete, global,
// and zoned substitution passes over it.
package merge

import (
	"fmt"
	"strings"

	"github.com/ernestfoo/zonemerge/pattern"
)

// DefaultPrefix is the tag prefix zone names are wrapped with in templates:
// <ls_NAME>…</ls_NAME>.
const DefaultPrefix = "ls_"

// RowTag is the fixed tag name of the repeating-row template nested inside a
// zone body: <ls_row>…</ls_row>.
const RowTag = "row"

// Span is a located tag region. [Start,End) covers the start tag through the
// end tag, widened by any newline the config's strip flags consume. Body is
// the text between the tags, nested tags included verbatim.
type Span struct {
	Start int
	End   int
	Body  string
}

// FindRegions returns every outermost, non-overlapping tag region described
// by cfg, scanning left to right with lazy-match semantics. A same-name tag
// nested inside a region stays in its body: each nested start tag opens a
// scope tracked by depth, and the span extends to the balancing end tag.
// An unterminated start tag yields no span and ends the scan — never a
// partial or cross-region match. cfg must be a tag-pair config.
func FindRegions(buf string, cfg pattern.Config) ([]Span, error) {
	if cfg.Kind != pattern.KindTagBody {
		return nil, fmt.Errorf("find regions: config is not a tag pair")
	}
	// Strip widening is applied from the config flags after pairing, so the
	// matcher itself is built without them.
	re, err := pattern.Build(pattern.TagPair(cfg.Prefix, cfg.Tag))
	if err != nil {
		return nil, fmt.Errorf("find regions for tag %q: %w", cfg.Tag, err)
	}

	startTok := cfg.StartTag()
	endTok := cfg.EndTag()

	var spans []Span
	pos := 0
	for pos < len(buf) {
		m := re.FindStringSubmatchIndex(buf[pos:])
		if m == nil {
			break
		}
		regionStart := pos + m[0]
		bodyStart := pos + m[4]
		regionEnd := pos + m[1]

		// The lazy body stops at the first end tag, so every same-name
		// start tag inside it is a nested scope the matched end tag did
		// not close. Walk forward until all scopes are balanced.
		depth := strings.Count(buf[bodyStart:pos+m[5]], startTok)
		balanced := true
		for depth > 0 {
			rest := buf[regionEnd:]
			si := strings.Index(rest, startTok)
			ei := strings.Index(rest, endTok)
			if ei < 0 {
				balanced = false
				break
			}
			if si >= 0 && si < ei {
				depth++
				regionEnd += si + len(startTok)
				continue
			}
			depth--
			regionEnd += ei + len(endTok)
		}
		if !balanced {
			// Unterminated start tag: nothing after it can form a span.
			break
		}

		body := buf[bodyStart : regionEnd-len(endTok)]
		s, e := widen(buf, regionStart, regionEnd, pos, cfg)
		spans = append(spans, Span{Start: s, End: e, Body: body})
		pos = e
	}
	return spans, nil
}

// widen grows a span to consume one optional \r\n or \n on each side,
// according to the config's strip flags. The start never reaches back past
// floor, so a newline already consumed by the previous span's StripAfter is
// not claimed twice and spans stay non-overlapping.
func widen(buf string, start, end, floor int, cfg pattern.Config) (int, int) {
	if cfg.StripBefore {
		switch {
		case start >= floor+2 && buf[start-2:start] == "\r\n":
			start -= 2
		case start >= floor+1 && buf[start-1] == '\n':
			start--
		}
	}
	if cfg.StripAfter {
		switch {
		case strings.HasPrefix(buf[end:], "\r\n"):
			end += 2
		case strings.HasPrefix(buf[end:], "\n"):
			end++
		}
	}
	return start, end
}
