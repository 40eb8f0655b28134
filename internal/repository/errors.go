package repository

import "errors"

// ErrNotFound reports an update or delete against an identifier that no
// longer exists. The store itself treats that as success; we surface it
// as a distinct outcome.
var ErrNotFound = errors.New("document not found")
