package usecase

import (
	"errors"
	"fmt"
)

// Base classes. Handlers only need to match these; the specific errors below wrap them.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("invalid pin")
	ErrConflict     = errors.New("record changed concurrently, try again")
)

var (
	ErrInvalidNeedID     = fmt.Errorf("%w: need id is required", ErrInvalidInput)
	ErrInvalidRecordID   = fmt.Errorf("%w: record id is required", ErrInvalidInput)
	ErrInvalidPledgeID   = fmt.Errorf("%w: pledge id is required", ErrInvalidInput)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	ErrInvalidQuantity   = fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	ErrInvalidPin        = fmt.Errorf("%w: pin must be exactly 4 digits", ErrInvalidInput)
	ErrInvalidNeed       = fmt.Errorf("%w: need item is required", ErrInvalidInput)
	ErrInvalidRecord     = fmt.Errorf("%w: record is missing required fields", ErrInvalidInput)
	ErrInvalidPatch      = fmt.Errorf("%w: patch contains no updatable fields", ErrInvalidInput)
	ErrUnknownCollection = fmt.Errorf("%w: unknown collection", ErrInvalidInput)
	ErrInvalidRole       = fmt.Errorf("%w: role must be owner or pledger", ErrInvalidInput)
	ErrInvalidEventID    = fmt.Errorf("%w: event id is required", ErrInvalidInput)
	ErrInvalidEvent      = fmt.Errorf("%w: event needs a title, a valid type, a date and at least one volunteer slot", ErrInvalidInput)

	ErrNeedNotFound   = fmt.Errorf("need %w", ErrNotFound)
	ErrRecordNotFound = fmt.Errorf("record %w", ErrNotFound)
	ErrPledgeNotFound = fmt.Errorf("pledge %w", ErrNotFound)
	ErrEventNotFound  = fmt.Errorf("event %w", ErrNotFound)

	ErrAlreadyFulfilled = errors.New("need already fulfilled")
	ErrNeedClosed       = errors.New("need already received")
	ErrReopenTooEarly   = errors.New("need was pledged recently and cannot be reopened yet")
	ErrTooManyAttempts  = errors.New("too many failed pin attempts, try again later")
	ErrEventFull        = errors.New("event has no open volunteer slots")
)
