package snapshot

// Options is the configuration bag take_snapshot consumes. It carries no
// behavior; the dispatcher (C6) reads it to pick a mode and to parameterize
// the transforms and formatters.
type Options struct {
	// Interactive restricts AX/fiber output to interactive-class nodes,
	// promoting children of non-interactive ancestors to the same depth.
	Interactive bool
	// Compact elides semantically empty structural nodes.
	Compact bool
	// React selects the fiber source instead of the AX tree.
	React bool
	// Full selects the raw DOM source.
	Full bool
	// Mini selects the collapsed DOM source.
	Mini bool
	// MaxDepth caps rendered tree depth when set.
	MaxDepth *int
	// Filter is a substring or glob pattern (glob when it contains '*')
	// matched against node names.
	Filter string
}

// Mode is the resolved snapshot source, chosen by precedence from Options.
type Mode int

const (
	ModeAX Mode = iota
	ModeReact
	ModeFull
	ModeMini
)

// ResolveMode applies the mode precedence mini > full > react > ax.
func (o Options) ResolveMode() Mode {
	switch {
	case o.Mini:
		return ModeMini
	case o.Full:
		return ModeFull
	case o.React:
		return ModeReact
	default:
		return ModeAX
	}
}

// depthLimited reports whether depth exceeds the configured max depth, if any.
func (o Options) depthLimited(depth int) bool {
	return o.MaxDepth != nil && depth > *o.MaxDepth
}

// hasFilter reports whether a name filter is active.
func (o Options) hasFilter() bool {
	return o.Filter != ""
}
