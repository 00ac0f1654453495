package account

import (
	"context"
	"errors"
)

// Storage errors shared by all Repository implementations.
var (
	// ErrNotFound is returned when no account exists for the given number.
	ErrNotFound = errors.New("account not found")

	// ErrDuplicateNumber is returned when saving an account whose number is
	// already taken.
	ErrDuplicateNumber = errors.New("account number already exists")
)

// Repository is the storage port the account module depends on. The number
// generator uses ByNumber as its collision probe; implementations must
// return ErrNotFound (possibly wrapped) for absent numbers so collisions
// are distinguishable from lookup failures.
type Repository interface {
	// ByNumber returns the account with the given number, or ErrNotFound.
	ByNumber(ctx context.Context, no string) (Account, error)

	// Save stores a new account, or ErrDuplicateNumber if the number is taken.
	Save(ctx context.Context, acc Account) error

	// Update replaces the stored account with the same number, or ErrNotFound.
	Update(ctx context.Context, acc Account) error
}
