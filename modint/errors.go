package modint

import "errors"

// errOutOfRange is returned when a canonical value is not strictly less
// than its modulus.
var errOutOfRange = errors.New("modint: value not less than modulus")
