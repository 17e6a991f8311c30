package ports

import (
	"context"
	"io"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

// ListQuery carries the view parameters shared by every list page: a free
// text query, the selected filter field (empty means match any field), and a
// flag forcing a reload from upstream before deriving the view.
type ListQuery struct {
	Query   string
	Field   string
	Refresh bool
}

// LoanListQuery adds the sortable-column state to the common parameters.
type LoanListQuery struct {
	ListQuery
	SortField string // "inicio" or "devolucao"
	Ascending bool
}

// PenaltyListQuery adds the pending-only toggle of the penalties page.
type PenaltyListQuery struct {
	ListQuery
	PendingOnly bool
}

// UserService drives the users screen.
type UserService interface {
	List(ctx context.Context, q ListQuery) ([]domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
	Create(ctx context.Context, in UserInput) error
	Import(ctx context.Context, csvFile io.Reader) (int, error)
	ImportBatch(ctx context.Context, users []UserInput) (int, error)
	Update(ctx context.Context, id int, in UserInput) error
	Delete(ctx context.Context, id int) error
}

// CatalogService drives the books screen and its copy management.
type CatalogService interface {
	List(ctx context.Context, q ListQuery) ([]domain.Book, error)
	Search(ctx context.Context, query string) ([]domain.Book, error)
	Get(ctx context.Context, isbn string) (*domain.Book, error)
	Create(ctx context.Context, in BookInput) error
	Update(ctx context.Context, id int, in BookInput) error
	Delete(ctx context.Context, isbn string) error
	Authors(ctx context.Context) ([]domain.Author, error)
	AvailableCopies(ctx context.Context, isbn string) ([]domain.Copy, error)
	UnavailableCopies(ctx context.Context, isbn string) ([]domain.Copy, error)
	AddCopy(ctx context.Context, isbn, codigo string) error
	RemoveCopy(ctx context.Context, codigo string) error
}

// LoanService drives the loans screen.
type LoanService interface {
	List(ctx context.Context, q LoanListQuery) ([]domain.Loan, error)
	Create(ctx context.Context, in LoanInput) error
	Renew(ctx context.Context, key LoanKey) error
	Return(ctx context.Context, key LoanKey) error
	Delete(ctx context.Context, key LoanKey) error
}

// ReservationService drives the reservations screen.
type ReservationService interface {
	List(ctx context.Context, q ListQuery) ([]domain.Reservation, error)
	Create(ctx context.Context, in ReservationInput) error
}

// PenaltyService drives the penalties screen.
type PenaltyService interface {
	List(ctx context.Context, q PenaltyListQuery) ([]domain.Penalty, error)
	Create(ctx context.Context, in PenaltyInput) error
	Fulfill(ctx context.Context, key PenaltyKey) error
	Delete(ctx context.Context, key PenaltyKey) error
	Types(ctx context.Context) ([]domain.PenaltyType, error)
	Causes(ctx context.Context) ([]domain.PenaltyCause, error)
}

// SessionService owns login, logout and token resolution.
type SessionService interface {
	Login(ctx context.Context, email, senha string) (token string, sess *domain.Session, err error)
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// SessionStore persists sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
