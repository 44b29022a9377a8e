package transition

import "fmt"

// IllegalActionError reports an action applied to a configuration whose
// preconditions do not hold. The configuration is left unchanged. Always a
// programming error: decoding masks illegal actions before selection.
type IllegalActionError struct {
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s: %s", e.Action, e.Reason)
}

// MalformedGoldDerivationError reports a gold action outside the legal set
// of the configuration the gold sequence reached. Fatal for the sentence;
// indicates corrupt gold data, never skipped or corrected.
type MalformedGoldDerivationError struct {
	Step   int
	Action Action
	Legal  ActionSet
}

func (e *MalformedGoldDerivationError) Error() string {
	return fmt.Sprintf("malformed gold derivation at step %d: gold action %s not in legal set %s",
		e.Step, e.Action, e.Legal)
}

// DimensionMismatchError reports a vector or score slice whose width does
// not match the model's configured dimensions. Fatal at the call site;
// dimensions are fixed at construction time.
type DimensionMismatchError struct {
	Op   string
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch in %s: want %d, got %d", e.Op, e.Want, e.Got)
}
