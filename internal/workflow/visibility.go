package workflow

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// VisibleTo decides whether a single document may be shown to an employee.
//
// The submitter always sees their own submission, regardless of the
// department-match outcome. For everyone else department scoping is mandatory
// and evaluated first; failing it hides the document no matter what. After
// scoping passes, any of the following grants visibility:
//
//   - the document is assigned to the employee or they are the current handler
//   - the current or next office canonically matches the employee's position
//   - the employee is the submitter (already handled above)
func VisibleTo(doc Document, employee Actor) bool {
	if isSubmitter(doc, employee) {
		return true
	}
	if !SameDepartment(doc.Department, employee.Department, employee.OfficeName) {
		return false
	}
	if doc.IsAssignedTo(employee.ID) {
		return true
	}
	if doc.CurrentOffice != PositionNone && PositionMatches(string(doc.CurrentOffice), employee.Position) {
		return true
	}
	if doc.NextOffice != PositionNone && PositionMatches(string(doc.NextOffice), employee.Position) {
		return true
	}
	return false
}

func isSubmitter(doc Document, employee Actor) bool {
	if !doc.SubmitterID.IsNil() && doc.SubmitterID == employee.ID {
		return true
	}
	return doc.SubmittedBy != "" && strings.EqualFold(strings.TrimSpace(doc.SubmittedBy), strings.TrimSpace(employee.Name))
}

// VisibleDocuments filters the employee's permitted subset out of the given
// snapshots, preserving input order. The per-document check is a pure read, so
// the scan fans out across goroutines; the context only bounds the group.
func VisibleDocuments(ctx context.Context, employee Actor, documents []Document) ([]Document, error) {
	if len(documents) == 0 {
		return nil, nil
	}

	visible := make([]bool, len(documents))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range documents {
		g.Go(func() error {
			visible[i] = VisibleTo(documents[i], employee)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Document
	for i, ok := range visible {
		if ok {
			out = append(out, documents[i])
		}
	}
	return out, nil
}
