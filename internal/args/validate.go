package args

import "strconv"

// PositiveInt converts raw to an integer, rejecting anything that is
// not strictly positive. It is wired into option parsing as a value
// converter and reports failures as *ValidationError.
func PositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, &ValidationError{Value: raw, Reason: "should be a positive integer value"}
	}

	return n, nil
}
