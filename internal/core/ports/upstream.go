package ports

import (
	"context"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

// UserDirectory is the outbound port for the upstream /usuarios resource.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
	CreateUser(ctx context.Context, in UserInput) error
	CreateUsersBatch(ctx context.Context, in []UserInput) error
	UpdateUser(ctx context.Context, id int, in UserInput) error
	DeleteUser(ctx context.Context, id int) error
}

// Catalog is the outbound port for /livros, /autores and the exemplar routes.
type Catalog interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	SearchBooks(ctx context.Context, query string) ([]domain.Book, error)
	GetBook(ctx context.Context, isbn string) (*domain.Book, error)
	CreateBook(ctx context.Context, in BookInput) error
	LinkAuthors(ctx context.Context, isbn string, authorIDs []int) error
	UpdateBook(ctx context.Context, id int, in BookInput) error
	DeleteBook(ctx context.Context, isbn string) error
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	AvailableCopies(ctx context.Context, isbn string) ([]domain.Copy, error)
	UnavailableCopies(ctx context.Context, isbn string) ([]domain.Copy, error)
	AddCopy(ctx context.Context, isbn, codigo string) error
	RemoveCopy(ctx context.Context, codigo string) error
}

// LoanLedger is the outbound port for /emprestimos. Loans are addressed by
// their composite key; there is no surrogate id upstream.
type LoanLedger interface {
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	CreateLoan(ctx context.Context, in LoanInput) error
	RenewLoan(ctx context.Context, key LoanKey) error
	ReturnLoan(ctx context.Context, key LoanKey) error
	DeleteLoan(ctx context.Context, key LoanKey) error
}

// ReservationBook is the outbound port for /reservas.
type ReservationBook interface {
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, in ReservationInput) error
}

// PenaltyRegistry is the outbound port for /penalidade.
type PenaltyRegistry interface {
	ListPenalties(ctx context.Context) ([]domain.Penalty, error)
	CreatePenalty(ctx context.Context, in PenaltyInput) error
	FulfillPenalty(ctx context.Context, key PenaltyKey) error
	DeletePenalty(ctx context.Context, key PenaltyKey) error
	ListPenaltyTypes(ctx context.Context) ([]domain.PenaltyType, error)
	ListPenaltyCauses(ctx context.Context) ([]domain.PenaltyCause, error)
}

// Authenticator is the outbound port for the upstream /login.
type Authenticator interface {
	Login(ctx context.Context, email, senha string) (token string, profile domain.Profile, err error)
}
