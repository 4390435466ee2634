package physics

import "fmt"

// InvalidParameterError reports a process parameter or material property
// that violates the engine preconditions. The raw formulas are total
// functions; this is the boundary check that keeps NaN/Inf out of results.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

func invalidParam(name string, value float64, reason string) error {
	return &InvalidParameterError{Name: name, Value: value, Reason: reason}
}

func requirePositive(name string, value float64) error {
	if !(value > 0) {
		return invalidParam(name, value, "must be > 0")
	}
	return nil
}
