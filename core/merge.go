package core

// Merger is the narrow surface external callers need from a merge engine:
// load a template, load zone data, run the merge, retrieve the result.
type Merger interface {
	// LoadTemplate stores the full template text to merge into.
	LoadTemplate(text string)

	// LoadZones stores the validated zone collection to merge from.
	LoadZones(zones *Collection)

	// Merge runs every merge pass over the buffer. It may be called at
	// most once per template/zones pairing.
	Merge() error

	// Result returns the merged buffer after a successful Merge.
	Result() string
}
