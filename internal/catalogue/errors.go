package catalogue

import "fmt"

// UnknownStopError is returned when ingest references a stop name that
// has not been added via AddStop.
type UnknownStopError struct {
	Name string
}

func (e *UnknownStopError) Error() string {
	return fmt.Sprintf("catalogue: unknown stop %q", e.Name)
}
