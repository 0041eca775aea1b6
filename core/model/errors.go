package model

import "fmt"

// ParseError reports a malformed time string or SPARE cell token. Recovered
// locally: the offending value is skipped and the run continues.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}

// NoBlocksError marks a schedule row whose block list is empty after
// trimming. The train is excluded with a warning, not a run failure.
type NoBlocksError struct {
	TrainID string
}

func (e *NoBlocksError) Error() string {
	return fmt.Sprintf("train %s: no usable blocks", e.TrainID)
}

// NotFoundError marks a train that never appears in any Pull column of the
// yard table. The train is excluded with a warning, not a run failure.
type NotFoundError struct {
	TrainID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("train %s: no pull event in yard table", e.TrainID)
}

// MissingColumnError reports a structurally broken input table. Fatal for the
// whole run: every per-train computation depends on the table shape.
type MissingColumnError struct {
	Table  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s table: required column %q missing", e.Table, e.Column)
}
