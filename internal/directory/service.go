package directory

import (
	"context"
	"errors"
	"strings"

	"docflow/internal/workflow"
	id "docflow/pkg/domain"
	dErrors "docflow/pkg/domain-errors"
	"docflow/pkg/platform/sentinel"
)

// Service is the Directory Cache surface the rest of the application reads:
// employee lookup by id or free-text name, office lookup, and actor snapshot
// construction for the workflow engine.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// LookupEmployee resolves an employee by UUID when the input parses as one,
// otherwise by name. Name matching is exact after whitespace/case folding;
// ambiguous free text fails closed with not-found rather than guessing.
func (s *Service) LookupEmployee(ctx context.Context, nameOrID string) (Employee, error) {
	trimmed := strings.TrimSpace(nameOrID)
	if trimmed == "" {
		return Employee{}, dErrors.New(dErrors.CodeInvalidInput, "employee name or id is required")
	}

	if empID, err := id.ParseEmployeeID(trimmed); err == nil {
		employee, err := s.store.FindEmployeeByID(ctx, empID)
		if err != nil {
			return Employee{}, translateNotFound(err, "employee")
		}
		return employee, nil
	}

	employee, err := s.store.FindEmployeeByName(ctx, trimmed)
	if err != nil {
		return Employee{}, translateNotFound(err, "employee")
	}
	return employee, nil
}

// LookupOffice resolves an office record by id.
func (s *Service) LookupOffice(ctx context.Context, officeID id.OfficeID) (Office, error) {
	office, err := s.store.FindOffice(ctx, officeID)
	if err != nil {
		return Office{}, translateNotFound(err, "office")
	}
	return office, nil
}

// ActorFor builds the workflow snapshot for an employee, resolving the office
// name when the employee belongs to one.
func (s *Service) ActorFor(ctx context.Context, empID id.EmployeeID) (workflow.Actor, error) {
	employee, err := s.store.FindEmployeeByID(ctx, empID)
	if err != nil {
		return workflow.Actor{}, translateNotFound(err, "employee")
	}

	officeName := ""
	if !employee.OfficeID.IsNil() {
		office, err := s.store.FindOffice(ctx, employee.OfficeID)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return workflow.Actor{}, dErrors.Wrap(err, dErrors.CodeInternal, "resolve employee office")
		}
		officeName = office.Name
	}
	return employee.Actor(officeName), nil
}

// DepartmentOf resolves a submitter's department from free-text input. An
// unknown submitter yields an empty department, which the routing engine
// treats as fail-closed.
func (s *Service) DepartmentOf(ctx context.Context, submitterName string) (string, id.EmployeeID, error) {
	employee, err := s.LookupEmployee(ctx, submitterName)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return "", id.EmployeeID{}, nil
		}
		return "", id.EmployeeID{}, err
	}

	dept := employee.Department
	if dept == "" && !employee.OfficeID.IsNil() {
		if office, err := s.store.FindOffice(ctx, employee.OfficeID); err == nil {
			dept = office.Name
		}
	}
	return dept, employee.ID, nil
}

func translateNotFound(err error, entity string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "directory lookup failed")
}
