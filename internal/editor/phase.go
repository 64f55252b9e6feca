package editor

// Phase describes the logical phase of an editing session with respect to
// its history.
type Phase int

const (
	// PhaseFresh means no history has accumulated yet.
	PhaseFresh Phase = iota

	// PhaseEditable means past states exist and no redo branch is open.
	PhaseEditable

	// PhaseBranched means one or more undos have opened a redo branch.
	// The next edit discards that branch permanently.
	PhaseBranched
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFresh:
		return "fresh"
	case PhaseEditable:
		return "editable"
	case PhaseBranched:
		return "branched"
	default:
		return "unknown"
	}
}
