package idgen

import "github.com/google/uuid"

// NewFunc generates identifiers, a random UUID by default.
var NewFunc = func() string { return uuid.NewString() }

// New returns a new identifier.
func New() string { return NewFunc() }
