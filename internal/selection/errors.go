package selection

import "fmt"

// SelectionErrorKind tags the reason no reference row could be selected.
type SelectionErrorKind string

const (
	NoMatch     SelectionErrorKind = "no_match"
	UnusableRow SelectionErrorKind = "unusable_row"
)

type ErrSelection struct {
	Kind SelectionErrorKind
	error
}

func NewErrNoMatch(material string, thickness *float64) *ErrSelection {
	if thickness == nil {
		return &ErrSelection{Kind: NoMatch, error: fmt.Errorf("no reference row found for material %q", material)}
	}
	return &ErrSelection{Kind: NoMatch, error: fmt.Errorf("no reference row found for material %q and thickness %g", material, *thickness)}
}

func NewErrUnusableRow(material string, reason string) *ErrSelection {
	return &ErrSelection{Kind: UnusableRow, error: fmt.Errorf("reference row for material %q is unusable: %s", material, reason)}
}
