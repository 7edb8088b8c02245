package rigidwalk

import "errors"

// ErrInvalidParameter is returned when a walk cannot be planned from the
// given inputs: non-positive offset, negative displacement, non-finite
// values, allowed angles that do not bracket the target, or an offset so
// small that the leg count overflows.
var ErrInvalidParameter = errors.New("rigidwalk: invalid parameter")
