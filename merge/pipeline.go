package merge

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ernestfoo/zonemerge/core"
)

// Pipeline precondition and reuse errors.
var (
	ErrNoTemplate    = errors.New("no template loaded")
	ErrNoZones       = errors.New("no zone data loaded")
	ErrAlreadyMerged = errors.New("pipeline has already run")
)

// State tracks how far a pipeline has advanced through the merge passes.
type State int

const (
	StateLoaded State = iota
	StateDeleted
	StateGlobalReplaced
	StateZoneReplaced
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateDeleted:
		return "deleted"
	case StateGlobalReplaced:
		return "global-replaced"
	case StateZoneReplaced:
		return "zone-replaced"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Pipeline runs the ordered merge passes — delete, global replace, zoned
// replace — over one mutable buffer. Deletion runs first so no placeholder
// inside a doomed region is ever substituted; global substitution runs
// before the zoned pass so shared placeholder names resolve at the outer
// scope. A Pipeline is single-use: rerunning it against already-merged text
// is unsupported.
type Pipeline struct {
	opts  Options
	buf   string
	zones *core.Collection
	state State
}

var _ core.Merger = (*Pipeline)(nil)

// New creates a Pipeline with the given options.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// LoadTemplate stores the full template text to merge into.
func (p *Pipeline) LoadTemplate(text string) {
	p.buf = text
}

// LoadZones stores the validated zone collection to merge from.
func (p *Pipeline) LoadZones(zones *core.Collection) {
	p.zones = zones
}

// State returns the pipeline's current stage.
func (p *Pipeline) State() State {
	return p.state
}

// Result returns the merged buffer. Valid after Merge has succeeded.
func (p *Pipeline) Result() string {
	return p.buf
}

// Merge runs all passes in order. It fails before touching the buffer when
// the template or zone data is missing, or when the pipeline already ran.
func (p *Pipeline) Merge() error {
	if p.state != StateLoaded {
		return ErrAlreadyMerged
	}
	if p.buf == "" {
		return ErrNoTemplate
	}
	if p.zones == nil {
		return ErrNoZones
	}

	if err := p.deletePass(); err != nil {
		return err
	}
	p.globalPass()
	return p.zonedPass()
}

// deletePass removes every zone marked for deletion, in collection order.
func (p *Pipeline) deletePass() error {
	for i := range p.zones.Zones {
		z := &p.zones.Zones[i]
		if !z.Delete {
			continue
		}
		log.Debug("deleting zone", "zone", z.Name)
		buf, err := DeleteZone(p.buf, z, p.opts)
		if err != nil {
			return fmt.Errorf("delete zone %q: %w", z.Name, err)
		}
		p.buf = buf
	}
	p.state = StateDeleted
	return nil
}

// globalPass applies the reserved global zone's keys to the whole buffer.
// A collection without a global zone passes the buffer through unchanged.
func (p *Pipeline) globalPass() {
	if g := p.zones.Global(); g != nil && !g.Delete {
		log.Debug("replacing global keys", "keys", len(g.Keys))
		p.buf = ReplaceGlobal(p.buf, g)
	}
	p.state = StateGlobalReplaced
}

// zonedPass applies key substitution and row expansion for every remaining
// zone — all zones except the global one and those already deleted — in
// collection order.
func (p *Pipeline) zonedPass() error {
	for i := range p.zones.Zones {
		z := &p.zones.Zones[i]
		if z.Delete || z.IsGlobal() {
			continue
		}
		log.Debug("replacing zone", "zone", z.Name, "keys", len(z.Keys), "rows", len(z.Rows))
		buf, err := ReplaceZone(p.buf, z, p.opts)
		if err != nil {
			return fmt.Errorf("replace zone %q: %w", z.Name, err)
		}
		p.buf = buf
	}
	p.state = StateZoneReplaced
	return nil
}
