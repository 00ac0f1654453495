package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finkit/accountkit/pkg/money"
)

// Service composes the factory, number generator and repository into the
// account use cases: opening, fetching and closing accounts.
type Service struct {
	factory *Factory
	gen     *NumberGenerator
	repo    Repository
	log     *slog.Logger
}

type ServiceOption func(*Service)

// WithFactory overrides the account factory (strategy, clock).
func WithFactory(f *Factory) ServiceOption {
	return func(s *Service) {
		if f != nil {
			s.factory = f
		}
	}
}

// WithGenerator overrides the number generator.
func WithGenerator(g *NumberGenerator) ServiceOption {
	return func(s *Service) {
		if g != nil {
			s.gen = g
		}
	}
}

// WithLogger sets the structured logger. Discarded by default.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService wires the account module around a repository.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		factory: NewFactory(),
		repo:    repo,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = NewNumberGenerator(repo)
	}
	return s
}

// Factory exposes the service's account factory for direct construction.
func (s *Service) Factory() *Factory {
	return s.factory
}

// OpenCheckingParams carries the open-checking inputs. An empty No asks
// the service to generate a fresh number. Absent dates default per the
// factory; a zero Balance opens the account empty.
type OpenCheckingParams struct {
	No       string
	Name     string
	OpenedAt *time.Time
	ClosedAt *time.Time
	Balance  money.Money
}

// OpenSavingsParams is OpenCheckingParams plus the mandatory interest rate.
type OpenSavingsParams struct {
	No       string
	Name     string
	Rate     decimal.Decimal
	OpenedAt *time.Time
	ClosedAt *time.Time
	Balance  money.Money
}

// OpenChecking validates, constructs and persists a checking account.
func (s *Service) OpenChecking(ctx context.Context, p OpenCheckingParams) (Account, error) {
	no, err := s.number(ctx, p.No)
	if err != nil {
		return Account{}, err
	}

	acc, err := s.factory.Checking(no, p.Name, p.OpenedAt, p.ClosedAt, p.Balance)
	if err != nil {
		return Account{}, err
	}

	if err := s.repo.Save(ctx, acc); err != nil {
		return Account{}, fmt.Errorf("save account %s: %w", acc.No, err)
	}

	s.log.InfoContext(ctx, "account opened",
		slog.String("account_no", acc.No),
		slog.String("type", string(acc.Type)))
	return acc, nil
}

// OpenSavings validates, constructs and persists a savings account.
func (s *Service) OpenSavings(ctx context.Context, p OpenSavingsParams) (Account, error) {
	no, err := s.number(ctx, p.No)
	if err != nil {
		return Account{}, err
	}

	acc, err := s.factory.Savings(no, p.Name, p.Rate, p.OpenedAt, p.ClosedAt, p.Balance)
	if err != nil {
		return Account{}, err
	}

	if err := s.repo.Save(ctx, acc); err != nil {
		return Account{}, fmt.Errorf("save account %s: %w", acc.No, err)
	}

	s.log.InfoContext(ctx, "account opened",
		slog.String("account_no", acc.No),
		slog.String("type", string(acc.Type)),
		slog.String("rate_of_interest", acc.RateOfInterest.String()))
	return acc, nil
}

// Get returns the account with the given number.
func (s *Service) Get(ctx context.Context, no string) (Account, error) {
	return s.repo.ByNumber(ctx, no)
}

// Close marks an account closed as of the given date (defaulting to the
// factory clock's "today") and persists the updated value.
func (s *Service) Close(ctx context.Context, no string, closedAt *time.Time) (Account, error) {
	acc, err := s.repo.ByNumber(ctx, no)
	if err != nil {
		return Account{}, err
	}

	at := s.factory.now()
	if closedAt != nil {
		at = *closedAt
	}

	closed, err := s.factory.Close(acc, at)
	if err != nil {
		return Account{}, err
	}

	if err := s.repo.Update(ctx, closed); err != nil {
		return Account{}, fmt.Errorf("update account %s: %w", no, err)
	}

	s.log.InfoContext(ctx, "account closed",
		slog.String("account_no", no),
		slog.Time("close_date", at))
	return closed, nil
}

// number returns the caller-supplied account number unchanged, or draws a
// fresh non-colliding one when the caller left it empty.
func (s *Service) number(ctx context.Context, no string) (string, error) {
	if no != "" {
		return no, nil
	}

	generated, err := s.gen.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("generate account number: %w", err)
	}
	return generated, nil
}
