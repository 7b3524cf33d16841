package args

import "fmt"

// SchemaError reports a malformed command schema, such as two options
// claiming the same destination key or flag spelling. It is a
// programming defect caught while the registry is built, never a user
// input error.
type SchemaError struct {
	Command string
	Detail  string
}

func (e *SchemaError) Error() string {
	if e.Command == "" {
		return "schema error: " + e.Detail
	}

	return fmt.Sprintf("schema error in command %q: %s", e.Command, e.Detail)
}

// ValidationError reports a single option value rejected by its
// converter.
type ValidationError struct {
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is invalid for this parameter, %s", e.Value, e.Reason)
}
