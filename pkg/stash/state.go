// pkg/stash/state.go
package stash

// state is one step of the cache flow. Transitions are strictly forward;
// stateDone is terminal and carries at most one error.
type state int

const (
	stateStart state = iota
	stateCheckManifest
	stateCheckCli
	stateComputeKey
	stateExtracting
	stateInstalling
	stateArchiving
	stateDone
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "Start"
	case stateCheckManifest:
		return "CheckManifest"
	case stateCheckCli:
		return "CheckCli"
	case stateComputeKey:
		return "ComputeKey"
	case stateExtracting:
		return "Extracting"
	case stateInstalling:
		return "Installing"
	case stateArchiving:
		return "Archiving"
	case stateDone:
		return "Done"
	default:
		return "Unknown"
	}
}
