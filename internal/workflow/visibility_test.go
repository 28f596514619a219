package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "docflow/pkg/domain"
)

func TestVisibleTo(t *testing.T) {
	t.Run("department scoping is evaluated first", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		doc.CurrentOffice = PositionCommunication
		viewer := testActor("Communication", "College of Engineering")
		// Position matches the current office, but the department does not.
		assert.False(t, VisibleTo(doc, viewer))
	})

	t.Run("assignment grants visibility", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		viewer := testActor("Registrar", "FALS")
		doc.AssignedTo = []id.EmployeeID{viewer.ID}
		assert.True(t, VisibleTo(doc, viewer))
	})

	t.Run("current handler grants visibility", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		viewer := testActor("Registrar", "FALS")
		doc.CurrentHandler = viewer.ID
		assert.True(t, VisibleTo(doc, viewer))
	})

	t.Run("current office position match grants visibility", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		doc.CurrentOffice = PositionVicePresident
		assert.True(t, VisibleTo(doc, testActor("VP", "FALS")))
	})

	t.Run("next office position match grants visibility", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		doc.NextOffice = PositionProgramHead
		assert.True(t, VisibleTo(doc, testActor("Program Head", "FALS")))
	})

	t.Run("no grounds means no visibility", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		doc.CurrentOffice = PositionVicePresident
		assert.False(t, VisibleTo(doc, testActor("Registrar", "FALS")))
	})

	t.Run("submitter sees own submission despite department mismatch", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		submitter := Actor{ID: doc.SubmitterID, Name: doc.SubmittedBy, Position: "Faculty", Department: "College of Engineering"}
		assert.True(t, VisibleTo(doc, submitter))
	})

	t.Run("submitter matched by name when id unresolved", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		doc.SubmitterID = id.EmployeeID{}
		viewer := testActor("Faculty", "Somewhere Else")
		viewer.Name = " alma reyes "
		assert.True(t, VisibleTo(doc, viewer))
	})

	t.Run("unresolved department hides from everyone but the submitter", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "")
		doc.CurrentOffice = PositionCommunication
		assert.False(t, VisibleTo(doc, testActor("Communication", "FALS")))

		submitter := Actor{ID: doc.SubmitterID, Name: doc.SubmittedBy}
		assert.True(t, VisibleTo(doc, submitter))
	})
}

func TestVisibleDocuments(t *testing.T) {
	viewer := testActor("Program Head", "FALS")

	mine := testDocument(CategoryFacultyLoading, "FALS")
	mine.NextOffice = PositionProgramHead

	foreign := testDocument(CategoryFacultyLoading, "College of Engineering")
	foreign.NextOffice = PositionProgramHead

	assigned := testDocument(CategoryTravelOrder, "FALS")
	assigned.AssignedTo = []id.EmployeeID{viewer.ID}

	hidden := testDocument(CategoryTravelOrder, "FALS")
	hidden.CurrentOffice = PositionDean

	got, err := VisibleDocuments(context.Background(), viewer, []Document{mine, foreign, assigned, hidden})
	require.NoError(t, err)

	require.Len(t, got, 2)
	// Input order is preserved.
	assert.Equal(t, mine.ID, got[0].ID)
	assert.Equal(t, assigned.ID, got[1].ID)
}

func TestVisibleDocuments_Empty(t *testing.T) {
	got, err := VisibleDocuments(context.Background(), testActor("Dean", "FALS"), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
