// Package pattern builds safe, escaped regular expressions for the tag and
// placeholder syntax used by the merge engine: <prefix+name>…</prefix+name>
// zone tags and [[key]] placeholders. Externally supplied names are always
// escaped, so any string is a valid input.
package pattern

import "regexp"

// Kind selects what the matcher body matches between (or without) tags.
type Kind int

const (
	// KindTagBody matches <prefix+tag>BODY</prefix+tag> where BODY is the
	// minimal span of any characters, newlines included.
	KindTagBody Kind = iota

	// KindKey matches the literal placeholder [[key]].
	KindKey

	// KindLiteral matches an exact, fully escaped literal text. Used to
	// re-locate a previously extracted span for controlled replacement.
	KindLiteral
)

// Config is an immutable matcher specification. Construct one with TagPair,
// Key, or Literal and pass it to Build.
type Config struct {
	Kind   Kind
	Prefix string // tag prefix, KindTagBody only
	Tag    string // tag name, KindTagBody only
	Text   string // key name or literal text, other kinds

	// StripBefore and StripAfter extend the match to consume one optional
	// \r\n or \n immediately before/after the span, so removing a tagged
	// region also removes the blank line it would leave behind.
	StripBefore bool
	StripAfter  bool
}

// TagPair returns a Config matching a <prefix+tag>…</prefix+tag> region
// with a lazy body.
func TagPair(prefix, tag string) Config {
	return Config{Kind: KindTagBody, Prefix: prefix, Tag: tag}
}

// Key returns a Config matching the placeholder [[key]].
func Key(key string) Config {
	return Config{Kind: KindKey, Text: key}
}

// Literal returns a Config matching the exact text.
func Literal(text string) Config {
	return Config{Kind: KindLiteral, Text: text}
}

// StripNewlines returns a copy of the Config that also consumes one
// adjacent newline on each side of the match.
func (c Config) StripNewlines() Config {
	c.StripBefore = true
	c.StripAfter = true
	return c
}

// StartTag returns the literal start tag for a KindTagBody config.
func (c Config) StartTag() string {
	return "<" + c.Prefix + c.Tag + ">"
}

// EndTag returns the literal end tag for a KindTagBody config.
func (c Config) EndTag() string {
	return "</" + c.Prefix + c.Tag + ">"
}

// Build compiles the matcher described by cfg. For KindTagBody the compiled
// expression has three capture groups: start tag, body, end tag. Since every
// externally supplied string is escaped, a compile failure indicates a bug
// in this package rather than bad input.
func Build(cfg Config) (*regexp.Regexp, error) {
	return regexp.Compile(cfg.expr())
}

func (c Config) expr() string {
	var expr string
	switch c.Kind {
	case KindKey:
		expr = `\[\[` + regexp.QuoteMeta(c.Text) + `\]\]`
	case KindLiteral:
		expr = regexp.QuoteMeta(c.Text)
	default:
		// (?s) lets the lazy body cross line boundaries.
		expr = "(?s)(" + regexp.QuoteMeta(c.StartTag()) + ")(.*?)(" + regexp.QuoteMeta(c.EndTag()) + ")"
	}
	if c.StripBefore {
		expr = `(?:\r?\n)?` + expr
	}
	if c.StripAfter {
		expr += `(?:\r?\n)?`
	}
	return expr
}
