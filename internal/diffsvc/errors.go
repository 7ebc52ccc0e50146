package diffsvc

import "errors"

// ErrInputTooLarge is returned when the LCS table for a request would exceed
// the configured cell limit and no fallback is enabled.
var ErrInputTooLarge = errors.New("input too large for LCS alignment")
