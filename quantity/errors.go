package quantity

import "errors"

// ErrUnitMismatch reports an operation between units with incompatible
// physical dimensions.
var ErrUnitMismatch = errors.New("incompatible units")
