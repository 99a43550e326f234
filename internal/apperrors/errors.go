package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// A row that exists but belongs to another user is reported identically,
// so callers cannot learn about rows they do not own.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates a transition attempted on a terminal or otherwise
// illegal state, e.g. settling an already-paid debt or editing its amount.
var ErrInvalidState = errors.New("invalid state transition")

// ErrIntegrityViolation indicates a reference to an entity that exists but
// does not belong to the requesting user.
var ErrIntegrityViolation = errors.New("referential integrity violation")

// ErrStoreUnavailable wraps transient storage failures; callers may retry.
var ErrStoreUnavailable = errors.New("store unavailable")
