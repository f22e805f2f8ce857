package pipecheck

import "encoding/json"

// Side identifies which of the two input collections an error refers to.
type Side string

const (
	SideNodes Side = "nodes"
	SideEdges Side = "edges"
)

// ShapeError reports that a decoded input was not a list. The messages are
// fixed strings surfaced to clients as-is.
type ShapeError struct {
	Side Side
}

func (e *ShapeError) Error() string {
	if e.Side == SideEdges {
		return "Edges data must be a list"
	}
	return "Nodes data must be a list"
}

// DecodeError reports that a raw input string could not be parsed as JSON.
// The underlying decoder message is surfaced verbatim.
type DecodeError struct {
	Side Side
	Err  error
}

func (e *DecodeError) Error() string { return e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeList parses a JSON document into a generic value for Validate.
// Failures come back as a *DecodeError tagged with the given side.
func DecodeList(side Side, doc string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		return nil, &DecodeError{Side: side, Err: err}
	}
	return v, nil
}
