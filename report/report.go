// Package report inspects a template against its zone data and renders an
// ANSI-colored summary: regions found per zone, placeholder hit counts, and
// template/data mismatches that the merge engine would silently skip.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/ernestfoo/zonemerge/core"
	"github.com/ernestfoo/zonemerge/merge"
	"github.com/ernestfoo/zonemerge/pattern"
)

const defaultWidth = 100

// ZoneInfo is the analysis result for one zone.
type ZoneInfo struct {
	Zone            *core.Zone
	Regions         int // outermost tag regions in the template
	PlaceholderHits int // [[key]] occurrences the zone's keys would consume

	// MissingTag is set for a non-global zone with no tag region — the
	// merge would be a no-op for it.
	MissingTag bool

	// MissingRowTemplate is set for a zone that has row data but no
	// <prefix+row> span inside any of its regions.
	MissingRowTemplate bool
}

// Analyze inspects every zone of the collection against the template.
func Analyze(c *core.Collection, template string, opts merge.Options) ([]ZoneInfo, error) {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = merge.DefaultPrefix
	}

	infos := make([]ZoneInfo, 0, len(c.Zones))
	for i := range c.Zones {
		z := &c.Zones[i]
		info := ZoneInfo{Zone: z}

		spans, err := merge.FindRegions(template, pattern.TagPair(prefix, z.Name))
		if err != nil {
			return nil, fmt.Errorf("analyze zone %q: %w", z.Name, err)
		}
		info.Regions = len(spans)

		if z.IsGlobal() {
			info.PlaceholderHits = countKeyHits(template, z.Keys)
		} else {
			info.MissingTag = len(spans) == 0
			for _, s := range spans {
				info.PlaceholderHits += countKeyHits(s.Body, z.Keys)
			}
			if len(z.Rows) > 0 && len(spans) > 0 {
				info.MissingRowTemplate = !hasRowTemplate(spans, prefix)
			}
		}

		infos = append(infos, info)
	}
	return infos, nil
}

func countKeyHits(text string, keys map[string]string) int {
	total := 0
	for k := range keys {
		re, err := pattern.Build(pattern.Key(k))
		if err != nil {
			continue
		}
		total += len(re.FindAllStringIndex(text, -1))
	}
	return total
}

func hasRowTemplate(spans []merge.Span, prefix string) bool {
	for _, s := range spans {
		rows, err := merge.FindRegions(s.Body, pattern.TagPair(prefix, merge.RowTag))
		if err == nil && len(rows) > 0 {
			return true
		}
	}
	return false
}

// Renderer pretty-prints a zone analysis to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a report Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render analyzes the collection against the template and writes the
// summary to w.
func (r *Renderer) Render(w io.Writer, c *core.Collection, template string, opts merge.Options) error {
	infos, err := Analyze(c, template, opts)
	if err != nil {
		return err
	}
	width := r.termWidth()

	fmt.Fprintln(w, styleTitle.Render("TEMPLATE")+styleMeta.Render(
		fmt.Sprintf("  %d chars  %d zones", len(template), len(c.Zones))))

	for _, info := range infos {
		fmt.Fprintln(w, lipgloss.NewStyle().MaxWidth(width).Render(zoneLine(info)))
	}
	for _, info := range infos {
		for _, warning := range warnings(info) {
			fmt.Fprintln(w, styleWarn.Render("! "+warning))
		}
	}
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func zoneLine(info ZoneInfo) string {
	z := info.Zone

	var badge string
	switch {
	case z.Delete:
		badge = styleDeleteBadge.Render("delete")
	case z.IsGlobal():
		badge = styleGlobalBadge.Render("global")
	default:
		badge = styleZonedBadge.Render("zoned")
	}

	parts := []string{styleTitle.Render(z.Name), badge}
	if !z.IsGlobal() {
		parts = append(parts, fmt.Sprintf("%d regions", info.Regions))
	}
	if len(z.Keys) > 0 {
		parts = append(parts, fmt.Sprintf("%d keys", len(z.Keys)))
	}
	if len(z.Rows) > 0 {
		parts = append(parts, fmt.Sprintf("%d rows", len(z.Rows)))
	}
	if !z.Delete {
		parts = append(parts, styleMeta.Render(fmt.Sprintf("%d placeholder hits", info.PlaceholderHits)))
	}
	return strings.Join(parts, "  ")
}

func warnings(info ZoneInfo) []string {
	var out []string
	if info.MissingTag {
		out = append(out, fmt.Sprintf("zone %q has no tag in the template", info.Zone.Name))
	}
	if info.MissingRowTemplate {
		out = append(out, fmt.Sprintf("zone %q has row data but no row template in its region", info.Zone.Name))
	}
	return out
}
