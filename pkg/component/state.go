package component

// State is the lifecycle state of an instance.
type State uint8

const (
	// Mounted is the resting state between renders.
	Mounted State = iota
	// UpdatingSelf means the instance re-renders because its own state changed.
	UpdatingSelf
	// UpdatingExternal means the instance re-renders because its owner's
	// props or a store it consumes changed.
	UpdatingExternal
	// Unmounted is terminal.
	Unmounted
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case Mounted:
		return "Mounted"
	case UpdatingSelf:
		return "Updating(self)"
	case UpdatingExternal:
		return "Updating(external)"
	case Unmounted:
		return "Unmounted"
	default:
		return "Unknown"
	}
}
