//go:build integration

package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"docflow/internal/directory"
	id "docflow/pkg/domain"
	"docflow/pkg/testutil/containers"
)

type CachedStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestCachedStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedStoreSuite))
}

func (s *CachedStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *CachedStoreSuite) TearDownSuite() {
	_ = s.redis.Client.Close()
	_ = s.redis.Container.Terminate(context.Background())
}

func (s *CachedStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *CachedStoreSuite) TestReadThrough() {
	ctx := context.Background()
	inner := directory.NewInMemoryStore()
	cached := directory.NewCachedStore(inner, s.redis.Client, time.Minute)

	employee := directory.Employee{
		ID:         id.NewEmployeeID(),
		Name:       "Alma Reyes",
		Position:   "Secretary",
		Department: "FALS",
	}
	s.Require().NoError(cached.SaveEmployee(ctx, employee))

	// First read populates the cache from the inner store.
	got, err := cached.FindEmployeeByID(ctx, employee.ID)
	s.Require().NoError(err)
	s.Equal(employee, got)

	// Replace the inner store; the cache must still serve the record.
	stale := directory.NewCachedStore(directory.NewInMemoryStore(), s.redis.Client, time.Minute)
	got, err = stale.FindEmployeeByID(ctx, employee.ID)
	s.Require().NoError(err)
	s.Equal(employee.ID, got.ID)
}

func (s *CachedStoreSuite) TestWriteInvalidates() {
	ctx := context.Background()
	inner := directory.NewInMemoryStore()
	cached := directory.NewCachedStore(inner, s.redis.Client, time.Minute)

	employee := directory.Employee{
		ID:         id.NewEmployeeID(),
		Name:       "Diego Santos",
		Position:   "Program Head",
		Department: "FALS",
	}
	s.Require().NoError(cached.SaveEmployee(ctx, employee))

	_, err := cached.FindEmployeeByName(ctx, "Diego Santos")
	s.Require().NoError(err)

	// A directory update must not be shadowed by the earlier cached read.
	employee.Department = "Registrar"
	s.Require().NoError(cached.SaveEmployee(ctx, employee))

	got, err := cached.FindEmployeeByName(ctx, "Diego Santos")
	s.Require().NoError(err)
	s.Equal("Registrar", got.Department)
}
