package account

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrGeneratorExhausted is returned when no unused number was found within
// the generator's attempt budget.
var ErrGeneratorExhausted = errors.New("no unused account number found within attempt budget")

const (
	defaultNumberPrefix = "AC"
	defaultNumberDigits = 12
	defaultMaxAttempts  = 64
)

// NumberGenerator draws random account numbers and retries until one does
// not collide with an existing account in the repository.
//
// A repository lookup failure is, by default, treated the same as "not
// found": the candidate is considered available and the loop terminates
// with it. WithStrictLookups turns lookup failures into errors instead.
// Each invocation keeps all state in local variables, so a single
// generator may be used from many goroutines at once.
type NumberGenerator struct {
	repo        Repository
	prefix      string
	digits      int
	maxAttempts int
	strict      bool
}

type GeneratorOption func(*NumberGenerator)

// WithNumberPrefix sets the fixed prefix of generated numbers.
func WithNumberPrefix(prefix string) GeneratorOption {
	return func(g *NumberGenerator) { g.prefix = prefix }
}

// WithNumberDigits sets how many random digits follow the prefix.
func WithNumberDigits(digits int) GeneratorOption {
	return func(g *NumberGenerator) {
		if digits > 0 {
			g.digits = digits
		}
	}
}

// WithMaxAttempts bounds the retry loop. Zero or negative removes the
// bound, restoring the original unbounded behavior; the caller is then
// responsible for cancelling the context if the repository misbehaves.
func WithMaxAttempts(n int) GeneratorOption {
	return func(g *NumberGenerator) { g.maxAttempts = n }
}

// WithStrictLookups makes repository lookup failures abort generation
// instead of counting the candidate as available.
func WithStrictLookups() GeneratorOption {
	return func(g *NumberGenerator) { g.strict = true }
}

// NewNumberGenerator creates a generator probing the given repository for
// collisions. Defaults: prefix "AC", 12 random digits, 64 attempts.
func NewNumberGenerator(repo Repository, opts ...GeneratorOption) *NumberGenerator {
	g := &NumberGenerator{
		repo:        repo,
		prefix:      defaultNumberPrefix,
		digits:      defaultNumberDigits,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a fresh account number absent from the repository. It draws
// a random candidate, probes the repository, and redraws while the
// candidate collides. It honors context cancellation between attempts.
func (g *NumberGenerator) Next(ctx context.Context) (string, error) {
	for attempt := 0; g.maxAttempts <= 0 || attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := g.draw()
		if err != nil {
			return "", fmt.Errorf("draw account number: %w", err)
		}

		taken, err := g.taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check account number %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", ErrGeneratorExhausted
}

// taken reports whether the candidate collides with an existing account.
// Only strict generators surface lookup failures.
func (g *NumberGenerator) taken(ctx context.Context, candidate string) (bool, error) {
	_, err := g.repo.ByNumber(ctx, candidate)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	case g.strict:
		return false, err
	default:
		return false, nil
	}
}

func (g *NumberGenerator) draw() (string, error) {
	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(g.digits)), nil)
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", g.prefix, g.digits, n), nil
}
