package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "docflow/pkg/domain-errors"
)

var actionNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestApplyAction_ApproveAndForward(t *testing.T) {
	doc := testDocument(CategoryEndorsementForm, "FALS")
	actor := testActor("Communication", "FALS")

	updated, entry, err := ApplyAction(doc, ActionApproveForward, actor, "looks good", actionNow)
	require.NoError(t, err)

	assert.Equal(t, StatusProcessing, updated.Status)
	assert.Equal(t, PositionProgramHead, updated.CurrentOffice)
	assert.Equal(t, PositionProgramHead, updated.NextOffice)

	require.Len(t, updated.History, 1)
	assert.Equal(t, EntryApproved, entry.Action)
	assert.Equal(t, PositionCommunication, entry.Office)
	assert.Equal(t, PositionProgramHead, entry.ToOffice)
	assert.Equal(t, actor.Name, entry.PerformedBy)
	assert.Equal(t, actionNow, entry.Timestamp)

	// The input snapshot is untouched.
	assert.Equal(t, StatusSubmitted, doc.Status)
	assert.Empty(t, doc.History)
}

func TestApplyAction_ForwardOnly(t *testing.T) {
	doc := testDocument(CategoryRequestedSubject, "FALS")
	actor := testActor("Program Head", "FALS")

	updated, entry, err := ApplyAction(doc, ActionForwardOnly, actor, "", actionNow)
	require.NoError(t, err)

	assert.Equal(t, StatusProcessing, updated.Status)
	assert.Equal(t, PositionDean, updated.CurrentOffice)
	assert.Equal(t, PositionDean, updated.NextOffice)
	assert.Equal(t, EntryForwarded, entry.Action)
}

func TestApplyAction_ForwardAtTerminalFails(t *testing.T) {
	doc := testDocument(CategoryFacultyLoading, "FALS")
	actor := testActor("Academic VP", "FALS")

	_, _, err := ApplyAction(doc, ActionApproveForward, actor, "", actionNow)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNoNextStage))
}

func TestApplyAction_FinalApprove(t *testing.T) {
	t.Run("terminal approver closes the chain", func(t *testing.T) {
		doc := testDocument(CategoryFacultyLoading, "FALS")
		doc.Status = StatusProcessing
		doc.CurrentOffice = PositionAcademicVicePresident
		doc.NextOffice = PositionAcademicVicePresident
		actor := testActor("Academic Vice President", "FALS")

		updated, entry, err := ApplyAction(doc, ActionFinalApprove, actor, "approved", actionNow)
		require.NoError(t, err)

		assert.Equal(t, StatusApproved, updated.Status)
		assert.Equal(t, PositionNone, updated.NextOffice)
		assert.Equal(t, PositionAcademicVicePresident, updated.CurrentOffice)
		assert.Equal(t, EntryApproved, entry.Action)
		assert.True(t, updated.IsTerminal())
	})

	t.Run("mid-chain position may not final-approve", func(t *testing.T) {
		doc := testDocument(CategoryFacultyLoading, "FALS")
		actor := testActor("Dean", "FALS")

		_, _, err := ApplyAction(doc, ActionFinalApprove, actor, "", actionNow)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeIllegalTransition))
	})
}

func TestApplyAction_Reject(t *testing.T) {
	t.Run("rejection clears both offices", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		doc.Status = StatusProcessing
		doc.CurrentOffice = PositionProgramHead
		doc.NextOffice = PositionProgramHead
		actor := testActor("Program Head", "FALS")

		updated, entry, err := ApplyAction(doc, ActionRejectReturn, actor, "missing attachments", actionNow)
		require.NoError(t, err)

		assert.Equal(t, StatusRejected, updated.Status)
		assert.Equal(t, PositionNone, updated.CurrentOffice)
		assert.Equal(t, PositionNone, updated.NextOffice)
		assert.Equal(t, EntryRejected, entry.Action)
		assert.Equal(t, "missing attachments", entry.Comments)
		assert.True(t, updated.IsTerminal())
	})

	t.Run("rejection without justification fails and changes nothing", func(t *testing.T) {
		doc := testDocument(CategoryEndorsementForm, "FALS")
		actor := testActor("Communication", "FALS")

		unchanged, _, err := ApplyAction(doc, ActionRejectReturn, actor, "   ", actionNow)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeMissingJustification))
		assert.Equal(t, doc, unchanged)
		assert.Empty(t, unchanged.History)
	})

	t.Run("department mismatch forbids rejection too", func(t *testing.T) {
		// Symmetric closure: an employee who cannot see the document cannot
		// act on it either.
		doc := testDocument(CategoryEndorsementForm, "FALS")
		actor := testActor("Communication", "College of Engineering")

		_, _, err := ApplyAction(doc, ActionRejectReturn, actor, "not ours", actionNow)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func TestApplyAction_TerminalDocumentIsImmutable(t *testing.T) {
	for _, setup := range []struct {
		name string
		mod  func(*Document)
	}{
		{"rejected", func(d *Document) {
			d.Status = StatusRejected
			d.CurrentOffice = PositionNone
			d.NextOffice = PositionNone
		}},
		{"approved terminal", func(d *Document) {
			d.Status = StatusApproved
			d.NextOffice = PositionNone
		}},
	} {
		t.Run(setup.name, func(t *testing.T) {
			doc := testDocument(CategoryEndorsementForm, "FALS")
			setup.mod(&doc)
			actor := testActor("Communication", "FALS")

			_, _, err := ApplyAction(doc, ActionApproveForward, actor, "", actionNow)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeIllegalTransition))
		})
	}
}

func TestApplyAction_LedgerAppendOnly(t *testing.T) {
	doc := testDocument(CategoryEndorsementForm, "FALS")

	steps := []struct {
		action  Action
		actor   Actor
		comment string
	}{
		{ActionApproveForward, testActor("Communication", "FALS"), "ok"},
		{ActionApproveForward, testActor("Program Head", "FALS"), "ok"},
		{ActionForwardOnly, testActor("VP", "FALS"), ""},
		{ActionFinalApprove, testActor("OP", "FALS"), "final"},
	}

	now := actionNow
	for i, step := range steps {
		before := len(doc.History)
		updated, _, err := ApplyAction(doc, step.action, step.actor, step.comment, now)
		require.NoError(t, err, "step %d", i)
		require.Len(t, updated.History, before+1)
		// Earlier entries are untouched.
		for j := range before {
			assert.Equal(t, doc.History[j], updated.History[j])
		}
		doc = updated
		now = now.Add(time.Hour)
	}

	assert.Equal(t, StatusApproved, doc.Status)
	assert.Equal(t, PositionNone, doc.NextOffice)
	assert.True(t, doc.IsTerminal())
}

func TestApplyAction_NextOfficeEmptyIffTerminal(t *testing.T) {
	doc := testDocument(CategoryRequestedSubject, "FALS")

	updated, _, err := ApplyAction(doc, ActionApproveForward, testActor("Program Head", "FALS"), "", actionNow)
	require.NoError(t, err)
	assert.False(t, updated.IsTerminal())
	assert.NotEqual(t, PositionNone, updated.NextOffice)

	updated, _, err = ApplyAction(updated, ActionApproveForward, testActor("Dean", "FALS"), "", actionNow.Add(time.Hour))
	require.NoError(t, err)
	assert.NotEqual(t, PositionNone, updated.NextOffice)

	updated, _, err = ApplyAction(updated, ActionFinalApprove, testActor("VP", "FALS"), "", actionNow.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, PositionNone, updated.NextOffice)
	assert.True(t, updated.IsTerminal())
}

func TestAcknowledge(t *testing.T) {
	doc := testDocument(CategoryEndorsementForm, "FALS")
	actor := testActor("Communication", "FALS")

	updated, entry, err := Acknowledge(doc, actor, actionNow)
	require.NoError(t, err)
	assert.Equal(t, StatusUnderReview, updated.Status)
	assert.Equal(t, EntryReceived, entry.Action)
	require.Len(t, updated.History, 1)

	// Acknowledging again only appends; status stays under review.
	again, _, err := Acknowledge(updated, actor, actionNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, StatusUnderReview, again.Status)
	require.Len(t, again.History, 2)
}

func TestEffectiveStatus(t *testing.T) {
	doc := testDocument(CategoryEndorsementForm, "FALS")

	// Stored "approved" with a pending next office displays as processing.
	doc.Status = StatusApproved
	doc.NextOffice = PositionProgramHead
	assert.Equal(t, StatusProcessing, doc.EffectiveStatus())
	assert.False(t, doc.IsTerminal())

	doc.NextOffice = PositionNone
	assert.Equal(t, StatusApproved, doc.EffectiveStatus())
	assert.True(t, doc.IsTerminal())

	doc.Status = StatusRejected
	assert.Equal(t, StatusRejected, doc.EffectiveStatus())
}
