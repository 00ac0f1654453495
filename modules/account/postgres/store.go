// Package postgres implements account.Repository on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finkit/accountkit/modules/account"
	"github.com/finkit/accountkit/pkg/money"
	"github.com/finkit/accountkit/pkg/pg"
)

// Store persists accounts in the accounts table (see the migrations
// directory for the schema).
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a Postgres-backed account repository.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const selectColumns = `
	account_no, type, name, open_date, close_date,
	balance_amount::text, balance_currency, rate_of_interest::text`

// ByNumber implements account.Repository.
func (s *Store) ByNumber(ctx context.Context, no string) (account.Account, error) {
	row := s.db.QueryRow(ctx,
		`SELECT`+selectColumns+` FROM accounts WHERE account_no = $1`, no)

	acc, err := scanAccount(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return account.Account{}, fmt.Errorf("%w: %s", account.ErrNotFound, no)
		}
		return account.Account{}, fmt.Errorf("query account %s: %w", no, err)
	}
	return acc, nil
}

// Save implements account.Repository.
func (s *Store) Save(ctx context.Context, acc account.Account) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO accounts (
			account_no, type, name, open_date, close_date,
			balance_amount, balance_currency, rate_of_interest
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		acc.No, string(acc.Type), acc.Name, acc.OpenDate, acc.CloseDate,
		acc.Balance.Amount().String(), acc.Balance.Currency().Code(), rateParam(acc),
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", account.ErrDuplicateNumber, acc.No)
		}
		return fmt.Errorf("insert account %s: %w", acc.No, err)
	}
	return nil
}

// Update implements account.Repository.
func (s *Store) Update(ctx context.Context, acc account.Account) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE accounts SET
			name = $2, open_date = $3, close_date = $4,
			balance_amount = $5, balance_currency = $6, rate_of_interest = $7
		WHERE account_no = $1`,
		acc.No, acc.Name, acc.OpenDate, acc.CloseDate,
		acc.Balance.Amount().String(), acc.Balance.Currency().Code(), rateParam(acc),
	)
	if err != nil {
		return fmt.Errorf("update account %s: %w", acc.No, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", account.ErrNotFound, acc.No)
	}
	return nil
}

// rateParam maps the savings rate to a nullable column; checking accounts
// store NULL.
func rateParam(acc account.Account) *string {
	if acc.Type != account.Savings {
		return nil
	}
	rate := acc.RateOfInterest.String()
	return &rate
}

type row interface {
	Scan(dest ...any) error
}

func scanAccount(r row) (account.Account, error) {
	var (
		acc             account.Account
		kind            string
		closeDate       *time.Time
		balanceAmount   string
		balanceCurrency string
		rate            *string
	)

	if err := r.Scan(
		&acc.No, &kind, &acc.Name, &acc.OpenDate, &closeDate,
		&balanceAmount, &balanceCurrency, &rate,
	); err != nil {
		return account.Account{}, err
	}

	acc.Type = account.Type(kind)
	acc.CloseDate = closeDate

	amount, err := decimal.NewFromString(balanceAmount)
	if err != nil {
		return account.Account{}, fmt.Errorf("parse balance %q: %w", balanceAmount, err)
	}
	if balanceCurrency != "" {
		cur, err := money.NewCurrency(balanceCurrency)
		if err != nil {
			return account.Account{}, err
		}
		acc.Balance = money.New(amount, cur)
	} else {
		acc.Balance = money.New(amount, money.Currency{})
	}

	if rate != nil {
		acc.RateOfInterest, err = decimal.NewFromString(*rate)
		if err != nil {
			return account.Account{}, fmt.Errorf("parse rate %q: %w", *rate, err)
		}
	}

	return acc, nil
}

var _ account.Repository = (*Store)(nil)
