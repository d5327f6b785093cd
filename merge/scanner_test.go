package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ernestfoo/zonemerge/pattern"
)

func TestFindRegions(t *testing.T) {
	tests := []struct {
		name string
		cfg  pattern.Config
		in   string
		want []Span
	}{
		{
			name: "single region",
			cfg:  pattern.TagPair("ls_", "z"),
			in:   "a<ls_z>b</ls_z>c",
			want: []Span{{Start: 1, End: 15, Body: "b"}},
		},
		{
			name: "multiple regions left to right",
			cfg:  pattern.TagPair("ls_", "z"),
			in:   "<ls_z>one</ls_z>-<ls_z>two</ls_z>",
			want: []Span{
				{Start: 0, End: 16, Body: "one"},
				{Start: 17, End: 33, Body: "two"},
			},
		},
		{
			name: "multiline body",
			cfg:  pattern.TagPair("ls_", "z"),
			in:   "<ls_z>line one\nline two</ls_z>",
			want: []Span{{Start: 0, End: 30, Body: "line one\nline two"}},
		},
		{
			name: "differently named tags stay in the body",
			cfg:  pattern.TagPair("ls_", "outer"),
			in:   "<ls_outer>a<ls_inner>b</ls_inner>c</ls_outer>",
			want: []Span{{Start: 0, End: 45, Body: "a<ls_inner>b</ls_inner>c"}},
		},
		{
			name: "self-nested tag reports the outermost pair",
			cfg:  pattern.TagPair("ls_", "z"),
			in:   "<ls_z>a<ls_z>b</ls_z>c</ls_z>",
			want: []Span{{Start: 0, End: 29, Body: "a<ls_z>b</ls_z>c"}},
		},
		{
			name: "doubly self-nested",
			cfg:  pattern.TagPair("ls_", "z"),
			in:   "<ls_z><ls_z><ls_z>x</ls_z></ls_z></ls_z>",
			want: []Span{{Start: 0, End: 40, Body: "<ls_z><ls_z>x</ls_z></ls_z>"}},
		},
		{
			name: "no occurrences",
			cfg:  pattern.TagPair("ls_", "missing"),
			in:   "plain text [[key]] nothing tagged",
			want: nil,
		},
		{
			name: "unterminated start tag yields nothing",
			cfg:  pattern.TagPair("ls_", "z"),
			in:   "<ls_z>never closed",
			want: nil,
		},
		{
			name: "unterminated outer suppresses nested pair",
			cfg:  pattern.TagPair("ls_", "z"),
			in:   "<ls_z>a<ls_z>b</ls_z>",
			want: nil,
		},
		{
			name: "stray end tag at depth zero is ignored",
			cfg:  pattern.TagPair("ls_", "z"),
			in:   "x</ls_z>y<ls_z>z</ls_z>",
			want: []Span{{Start: 9, End: 23, Body: "z"}},
		},
		{
			name: "strip flags widen the span",
			cfg:  pattern.TagPair("ls_", "z").StripNewlines(),
			in:   "a\n<ls_z>b</ls_z>\nc",
			want: []Span{{Start: 1, End: 17, Body: "b"}},
		},
		{
			name: "strip flags widen over crlf",
			cfg:  pattern.TagPair("ls_", "z").StripNewlines(),
			in:   "a\r\n<ls_z>b</ls_z>\r\nc",
			want: []Span{{Start: 1, End: 19, Body: "b"}},
		},
		{
			name: "strip flags at buffer edges",
			cfg:  pattern.TagPair("ls_", "z").StripNewlines(),
			in:   "<ls_z>b</ls_z>",
			want: []Span{{Start: 0, End: 14, Body: "b"}},
		},
		{
			// Only one span may claim the newline between adjacent
			// regions; the second span must not start before the first
			// one ends.
			name: "strip flags never overlap adjacent spans",
			cfg:  pattern.TagPair("ls_", "z").StripNewlines(),
			in:   "a\n<ls_z>1</ls_z>\n<ls_z>2</ls_z>\nb",
			want: []Span{
				{Start: 1, End: 17, Body: "1"},
				{Start: 17, End: 32, Body: "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRegions(tt.in, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindRegionsRejectsNonTagConfig(t *testing.T) {
	_, err := FindRegions("anything", pattern.Key("k"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a tag pair")
}
