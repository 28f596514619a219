//go:build integration

package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"docflow/internal/directory"
	id "docflow/pkg/domain"
	"docflow/pkg/platform/sentinel"
	"docflow/pkg/testutil/containers"
)

const directoryDDL = `
CREATE TABLE IF NOT EXISTS offices (
    id   UUID PRIMARY KEY,
    name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS employees (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    name_key   TEXT NOT NULL UNIQUE,
    position   TEXT NOT NULL,
    department TEXT NOT NULL DEFAULT '',
    office_id  UUID REFERENCES offices(id)
)`

type DirectoryPostgresSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *directory.PostgresStore
}

func TestDirectoryPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DirectoryPostgresSuite))
}

func (s *DirectoryPostgresSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(s.postgres.ApplySchema(context.Background(), directoryDDL))
	s.store = directory.NewPostgresStore(s.postgres.Pool)
}

func (s *DirectoryPostgresSuite) TearDownSuite() {
	s.postgres.Pool.Close()
	_ = s.postgres.Container.Terminate(context.Background())
}

func (s *DirectoryPostgresSuite) SetupTest() {
	_, err := s.postgres.Pool.Exec(context.Background(), "TRUNCATE employees, offices")
	s.Require().NoError(err)
}

func (s *DirectoryPostgresSuite) TestEmployeeRoundTrip() {
	ctx := context.Background()
	office := directory.Office{ID: id.NewOfficeID(), Name: "Faculty of Agriculture and Life Sciences (FALS)"}
	s.Require().NoError(s.store.SaveOffice(ctx, office))

	employee := directory.Employee{
		ID:         id.NewEmployeeID(),
		Name:       "Alma Reyes",
		Position:   "Secretary",
		Department: "FALS",
		OfficeID:   office.ID,
	}
	s.Require().NoError(s.store.SaveEmployee(ctx, employee))

	s.Run("find by id", func() {
		got, err := s.store.FindEmployeeByID(ctx, employee.ID)
		s.Require().NoError(err)
		s.Equal(employee, got)
	})

	s.Run("find by name is case and whitespace insensitive", func() {
		got, err := s.store.FindEmployeeByName(ctx, "  alma   REYES ")
		s.Require().NoError(err)
		s.Equal(employee.ID, got.ID)
	})

	s.Run("upsert replaces in place", func() {
		employee.Position = "Program Head"
		s.Require().NoError(s.store.SaveEmployee(ctx, employee))
		got, err := s.store.FindEmployeeByID(ctx, employee.ID)
		s.Require().NoError(err)
		s.Equal("Program Head", got.Position)
	})

	s.Run("missing employee", func() {
		_, err := s.store.FindEmployeeByID(ctx, id.NewEmployeeID())
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *DirectoryPostgresSuite) TestOfficeRoundTrip() {
	ctx := context.Background()
	office := directory.Office{ID: id.NewOfficeID(), Name: "Office of the Registrar"}
	s.Require().NoError(s.store.SaveOffice(ctx, office))

	got, err := s.store.FindOffice(ctx, office.ID)
	s.Require().NoError(err)
	s.Equal(office, got)

	_, err = s.store.FindOffice(ctx, id.NewOfficeID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}
