package config

import "errors"

// ErrInvalidTuning reports a tuning file whose values contradict each other.
var ErrInvalidTuning = errors.New("invalid tuning")
