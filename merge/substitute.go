package merge

import (
	"sort"
	"strings"

	"github.com/ernestfoo/zonemerge/core"
	"github.com/ernestfoo/zonemerge/pattern"
)

// Options configure how the substitution passes treat the template.
type Options struct {
	// Prefix is the zone tag prefix. Empty means DefaultPrefix.
	Prefix string

	// KeepNewlines disables removal of the one adjacent newline on each
	// side of a deleted region.
	KeepNewlines bool
}

func (o Options) prefix() string {
	if o.Prefix == "" {
		return DefaultPrefix
	}
	return o.Prefix
}

// DeleteZone removes every outermost tagged region of the zone from buf,
// tags and body included. Unless KeepNewlines is set, one adjacent newline
// on each side of a region is removed with it, so a deleted block does not
// leave a blank line. A zone with no occurrences leaves buf unchanged.
func DeleteZone(buf string, zone *core.Zone, opts Options) (string, error) {
	cfg := pattern.TagPair(opts.prefix(), zone.Name)
	if !opts.KeepNewlines {
		cfg = cfg.StripNewlines()
	}
	spans, err := FindRegions(buf, cfg)
	if err != nil {
		return "", err
	}
	if len(spans) == 0 {
		return buf, nil
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		b.WriteString(buf[prev:s.Start])
		prev = s.End
	}
	b.WriteString(buf[prev:])
	return b.String(), nil
}

// ReplaceGlobal substitutes every [[key]] placeholder of the global zone
// across the entire buffer, unscoped by any tag region.
func ReplaceGlobal(buf string, zone *core.Zone) string {
	return replaceKeys(buf, zone.Keys)
}

// ReplaceZone substitutes the zone's [[key]] placeholders inside its tagged
// regions only, then expands the nested row template against the zone's row
// items. The outer zone tags are retained in the buffer; only the row tags
// are consumed by expansion. A zone with no matching tag, or with rows but
// no row template in its body, leaves the unmatched part untouched.
func ReplaceZone(buf string, zone *core.Zone, opts Options) (string, error) {
	cfg := pattern.TagPair(opts.prefix(), zone.Name)
	spans, err := FindRegions(buf, cfg)
	if err != nil {
		return "", err
	}
	if len(spans) == 0 {
		return buf, nil
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		body := replaceKeys(s.Body, zone.Keys)
		if len(zone.Rows) > 0 {
			body, err = expandRows(body, zone.Rows, opts)
			if err != nil {
				return "", err
			}
		}
		b.WriteString(buf[prev:s.Start])
		b.WriteString(cfg.StartTag())
		b.WriteString(body)
		b.WriteString(cfg.EndTag())
		prev = s.End
	}
	b.WriteString(buf[prev:])
	return b.String(), nil
}

// expandRows replaces the first <prefix+row>…</prefix+row> span in body,
// tags included, with the row template merged once per row item, items
// separated by single newlines. A body without a row template is returned
// unchanged; reporting that mismatch is the caller's concern.
func expandRows(body string, rows []core.RowItem, opts Options) (string, error) {
	spans, err := FindRegions(body, pattern.TagPair(opts.prefix(), RowTag))
	if err != nil {
		return "", err
	}
	if len(spans) == 0 {
		return body, nil
	}

	row := spans[0]
	items := make([]string, len(rows))
	for i, r := range rows {
		items[i] = replaceKeys(row.Body, r)
	}
	return body[:row.Start] + strings.Join(items, "\n") + body[row.End:], nil
}

// replaceKeys substitutes all [[key]] placeholders in one simultaneous
// scan. Replaced text is never rescanned, so a value that itself contains
// [[otherkey]] is inserted verbatim. Keys are applied in sorted order: the
// replacer tries them in argument order, so without a fixed order a key
// whose placeholder is a prefix of another's (possible when a key contains
// "]]") would make the result depend on map iteration.
func replaceKeys(s string, keys map[string]string) string {
	if len(keys) == 0 {
		return s
	}
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range names {
		pairs = append(pairs, "[["+k+"]]", keys[k])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
