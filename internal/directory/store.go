package directory

import (
	"context"

	id "docflow/pkg/domain"
)

// Stores are interface-driven to keep the domain logic testable and to allow
// swapping in-memory, cached, or external persistence without rewiring
// business code. Implementations return sentinel.ErrNotFound for missing
// records.
type Store interface {
	SaveEmployee(ctx context.Context, employee Employee) error
	FindEmployeeByID(ctx context.Context, empID id.EmployeeID) (Employee, error)
	FindEmployeeByName(ctx context.Context, name string) (Employee, error)
	SaveOffice(ctx context.Context, office Office) error
	FindOffice(ctx context.Context, officeID id.OfficeID) (Office, error)
}
