package domain

import "errors"

var (
	ErrSlotNotFound     = errors.New("slot not found")
	ErrBonusNotFound    = errors.New("bonus not found")
	ErrReminderNotFound = errors.New("reminder not found")
)

var (
	ErrSlotTaken          = errors.New("slot is already taken")
	ErrCrossQueueConflict = errors.New("claimant already holds this hour in another queue")
	ErrSlotPassed         = errors.New("slot start time has already passed")
)

var (
	ErrNotOwner = errors.New("reservation belongs to a different claimant")
)

var (
	ErrValidation = errors.New("validation error")
)
