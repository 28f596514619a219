package directory

import (
	"context"
	"strings"
	"sync"

	id "docflow/pkg/domain"
	"docflow/pkg/platform/sentinel"
)

// InMemoryStore keeps the directory lightweight and testable. It intentionally
// favors clarity over performance.
type InMemoryStore struct {
	mu        sync.RWMutex
	employees map[id.EmployeeID]Employee
	byName    map[string]id.EmployeeID
	offices   map[id.OfficeID]Office
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		employees: make(map[id.EmployeeID]Employee),
		byName:    make(map[string]id.EmployeeID),
		offices:   make(map[id.OfficeID]Office),
	}
}

func (s *InMemoryStore) SaveEmployee(_ context.Context, employee Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.employees[employee.ID]; ok {
		delete(s.byName, nameKey(prev.Name))
	}
	s.employees[employee.ID] = employee
	s.byName[nameKey(employee.Name)] = employee.ID
	return nil
}

func (s *InMemoryStore) FindEmployeeByID(_ context.Context, empID id.EmployeeID) (Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if employee, ok := s.employees[empID]; ok {
		return employee, nil
	}
	return Employee{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindEmployeeByName(_ context.Context, name string) (Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if empID, ok := s.byName[nameKey(name)]; ok {
		return s.employees[empID], nil
	}
	return Employee{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) SaveOffice(_ context.Context, office Office) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offices[office.ID] = office
	return nil
}

func (s *InMemoryStore) FindOffice(_ context.Context, officeID id.OfficeID) (Office, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if office, ok := s.offices[officeID]; ok {
		return office, nil
	}
	return Office{}, sentinel.ErrNotFound
}

// Name lookups are case- and whitespace-insensitive: submitter names arrive
// as free text from upload forms.
func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
