package hashkv

import "errors"

// ErrInvalidConfiguration is returned by constructors and LoadConfig when a
// table configuration names an unknown hash function, probing method or
// strategy, or carries an out-of-range capacity or load factor threshold.
var ErrInvalidConfiguration = errors.New("invalid hash table configuration")
