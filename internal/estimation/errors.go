package estimation

import "fmt"

// InputErrorKind tags the reason an input was rejected.
type InputErrorKind string

const (
	InputMissing           InputErrorKind = "missing"
	InputNotNumeric        InputErrorKind = "not_numeric"
	InputOutOfRange        InputErrorKind = "out_of_range"
	InputZeroConstant      InputErrorKind = "zero_constant"
	InputNoResult          InputErrorKind = "no_result"
	InputMissingReportName InputErrorKind = "missing_report_name"
)

// ErrInput is returned when a user supplied value or a reference row constant
// cannot be used by a calculation stage.
type ErrInput struct {
	Kind  InputErrorKind
	Field string
	error
}

func NewErrMissing(field string) *ErrInput {
	return &ErrInput{Kind: InputMissing, Field: field, error: fmt.Errorf("%s is missing", field)}
}

func NewErrNotNumeric(field string, value any) *ErrInput {
	return &ErrInput{Kind: InputNotNumeric, Field: field, error: fmt.Errorf("%s must be a number, got %q", field, fmt.Sprint(value))}
}

func NewErrMustBePositive(field string, value float64) *ErrInput {
	return &ErrInput{Kind: InputOutOfRange, Field: field, error: fmt.Errorf("%s must be > 0, got %g", field, value)}
}

func NewErrMustBeNonNegative(field string, value float64) *ErrInput {
	return &ErrInput{Kind: InputOutOfRange, Field: field, error: fmt.Errorf("%s must be >= 0, got %g", field, value)}
}

func NewErrZeroConstant(field string) *ErrInput {
	return &ErrInput{Kind: InputZeroConstant, Field: field, error: fmt.Errorf("%s of the reference row cannot be zero", field)}
}

func NewErrNoResult() *ErrInput {
	return &ErrInput{Kind: InputNoResult, error: fmt.Errorf("no cost result to report")}
}

func NewErrMissingReportName() *ErrInput {
	return &ErrInput{Kind: InputMissingReportName, Field: "report_name", error: fmt.Errorf("report name is required")}
}
