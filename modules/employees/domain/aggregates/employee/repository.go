package employee

import (
	"context"

	"github.com/ostech/hrconsole/pkg/serrors"
)

// ErrNotFound is returned when the directory has no record for the requested
// identifier.
var ErrNotFound = serrors.NewError("EMPLOYEE_NOT_FOUND", "employee not found", "")

// Repository is the directory contract. The canonical implementation is the
// remote REST client; it returns the entire unfiltered collection from GetAll
// and leaves search and pagination to the caller.
type Repository interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, data Employee) (Employee, error)
	Update(ctx context.Context, data Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
}
