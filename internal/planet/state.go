package planet

import "fmt"

// State is the generator lifecycle stage.
type State int32

const (
	Uninitialized State = iota
	Initializing
	Generating
	Coloring
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Generating:
		return "generating"
	case Coloring:
		return "coloring"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}
