package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/finkit/accountkit/pkg/money"
	"github.com/finkit/accountkit/pkg/requestid"
	"github.com/finkit/accountkit/pkg/validator"
)

// Handle returns the module's HTTP surface:
//
//	POST /checking        open a checking account
//	POST /savings         open a savings account
//	GET  /{number}        fetch an account
//	POST /{number}/close  close an account
//
// Validation failures are reported as 422 responses carrying every
// field-level message the configured strategy surfaced.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Post("/checking", s.openChecking)
	r.Post("/savings", s.openSavings)
	r.Get("/{number}", s.getAccount)
	r.Post("/{number}/close", s.closeAccount)

	return r
}

type openRequest struct {
	AccountNo string      `json:"account_no,omitempty"`
	Name      string      `json:"name"`
	Rate      *string     `json:"rate_of_interest,omitempty"`
	OpenedAt  *time.Time  `json:"open_date,omitempty"`
	ClosedAt  *time.Time  `json:"close_date,omitempty"`
	Balance   money.Money `json:"balance"`
}

type closeRequest struct {
	ClosedAt *time.Time `json:"close_date,omitempty"`
}

func (s *Service) openChecking(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	acc, err := s.OpenChecking(r.Context(), OpenCheckingParams{
		No:       req.AccountNo,
		Name:     req.Name,
		OpenedAt: req.OpenedAt,
		ClosedAt: req.ClosedAt,
		Balance:  req.Balance,
	})
	if err != nil {
		s.respondFailure(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusCreated, acc)
}

func (s *Service) openSavings(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	// The rate is parsed leniently here; the factory owns positivity checks.
	var rate decimal.Decimal
	if req.Rate != nil {
		var err error
		rate, err = decimal.NewFromString(*req.Rate)
		if err != nil {
			s.respondError(w, r, http.StatusBadRequest, err)
			return
		}
	}

	acc, err := s.OpenSavings(r.Context(), OpenSavingsParams{
		No:       req.AccountNo,
		Name:     req.Name,
		Rate:     rate,
		OpenedAt: req.OpenedAt,
		ClosedAt: req.ClosedAt,
		Balance:  req.Balance,
	})
	if err != nil {
		s.respondFailure(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusCreated, acc)
}

func (s *Service) getAccount(w http.ResponseWriter, r *http.Request) {
	acc, err := s.Get(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		s.respondFailure(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, acc)
}

func (s *Service) closeAccount(w http.ResponseWriter, r *http.Request) {
	var req closeRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.respondError(w, r, http.StatusBadRequest, err)
			return
		}
	}

	acc, err := s.Close(r.Context(), chi.URLParam(r, "number"), req.ClosedAt)
	if err != nil {
		s.respondFailure(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, acc)
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// respondFailure maps domain errors onto HTTP statuses.
func (s *Service) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		fields := make(map[string][]string, len(verrs.Fields()))
		for _, field := range verrs.Fields() {
			fields[field] = verrs.Get(field)
		}
		s.respondJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
			Error:  err.Error(),
			Fields: fields,
		})
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		s.respondError(w, r, http.StatusNotFound, err)
	case errors.Is(err, ErrDuplicateNumber):
		s.respondError(w, r, http.StatusConflict, err)
	case errors.Is(err, ErrGeneratorExhausted):
		s.respondError(w, r, http.StatusServiceUnavailable, err)
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		s.respondError(w, r, http.StatusInternalServerError, errors.New("internal error"))
	}
}

func (s *Service) respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.respondJSON(w, r, status, errorResponse{Error: err.Error()})
}

func (s *Service) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(r.Context(), "encode response", slog.Any("error", err))
	}
}
