// Package directory is the read model over the organization's employee and
// office records. The routing engine consumes it to resolve submitters,
// departments, and office names; it never writes through this package except
// for the seed/import path.
package directory

import (
	"docflow/internal/workflow"
	id "docflow/pkg/domain"
)

// Employee is a directory record. Position and Department are free text as
// entered by HR; normalization happens inside the workflow engine.
type Employee struct {
	ID         id.EmployeeID `json:"id"`
	Name       string        `json:"name"`
	Position   string        `json:"position"`
	Department string        `json:"department"`
	OfficeID   id.OfficeID   `json:"office_id"`
}

// Office is an organizational unit record.
type Office struct {
	ID   id.OfficeID `json:"id"`
	Name string      `json:"name"`
}

// Actor converts a directory record into the snapshot the workflow engine
// acts on. officeName may be empty when the employee has no office record.
func (e Employee) Actor(officeName string) workflow.Actor {
	return workflow.Actor{
		ID:         e.ID,
		Name:       e.Name,
		Position:   e.Position,
		Department: e.Department,
		OfficeName: officeName,
	}
}
