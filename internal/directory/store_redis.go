package directory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	id "docflow/pkg/domain"
)

// CachedStore layers a Redis read-through cache over another Store. The
// directory changes rarely but is consulted on every routing decision, so
// lookups are cached with a TTL; writes pass through and invalidate.
type CachedStore struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
}

func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, client: client, ttl: ttl}
}

func employeeKey(empID id.EmployeeID) string { return "directory:employee:" + empID.String() }
func nameIndexKey(name string) string        { return "directory:employee:name:" + nameKey(name) }
func officeKey(officeID id.OfficeID) string  { return "directory:office:" + officeID.String() }

func (s *CachedStore) SaveEmployee(ctx context.Context, employee Employee) error {
	if err := s.inner.SaveEmployee(ctx, employee); err != nil {
		return err
	}
	// Invalidate rather than write-through: the next read repopulates.
	s.client.Del(ctx, employeeKey(employee.ID), nameIndexKey(employee.Name))
	return nil
}

func (s *CachedStore) FindEmployeeByID(ctx context.Context, empID id.EmployeeID) (Employee, error) {
	var cached Employee
	if ok := s.getJSON(ctx, employeeKey(empID), &cached); ok {
		return cached, nil
	}
	employee, err := s.inner.FindEmployeeByID(ctx, empID)
	if err != nil {
		return Employee{}, err
	}
	s.setJSON(ctx, employeeKey(empID), employee)
	return employee, nil
}

func (s *CachedStore) FindEmployeeByName(ctx context.Context, name string) (Employee, error) {
	if idStr, err := s.client.Get(ctx, nameIndexKey(name)).Result(); err == nil {
		if empID, err := id.ParseEmployeeID(idStr); err == nil {
			return s.FindEmployeeByID(ctx, empID)
		}
	}
	employee, err := s.inner.FindEmployeeByName(ctx, name)
	if err != nil {
		return Employee{}, err
	}
	s.client.Set(ctx, nameIndexKey(name), employee.ID.String(), s.ttl)
	s.setJSON(ctx, employeeKey(employee.ID), employee)
	return employee, nil
}

func (s *CachedStore) SaveOffice(ctx context.Context, office Office) error {
	if err := s.inner.SaveOffice(ctx, office); err != nil {
		return err
	}
	s.client.Del(ctx, officeKey(office.ID))
	return nil
}

func (s *CachedStore) FindOffice(ctx context.Context, officeID id.OfficeID) (Office, error) {
	var cached Office
	if ok := s.getJSON(ctx, officeKey(officeID), &cached); ok {
		return cached, nil
	}
	office, err := s.inner.FindOffice(ctx, officeID)
	if err != nil {
		return Office{}, err
	}
	s.setJSON(ctx, officeKey(officeID), office)
	return office, nil
}

// getJSON loads and unmarshals a cached value. Any cache error degrades to a
// miss; the backing store stays authoritative.
func (s *CachedStore) getJSON(ctx context.Context, key string, dest any) bool {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// setJSON writes a cached value best-effort.
func (s *CachedStore) setJSON(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.client.Set(ctx, key, raw, s.ttl).Err()
}
