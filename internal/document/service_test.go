package document

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"docflow/internal/audit"
	"docflow/internal/document/mocks"
	"docflow/internal/workflow"
	id "docflow/pkg/domain"
	dErrors "docflow/pkg/domain-errors"
	"docflow/pkg/platform/sentinel"
	"docflow/pkg/requestcontext"
)

type serviceFixture struct {
	store     *mocks.MockStore
	directory *mocks.MockDirectory
	audit     *mocks.MockAuditSink
	service   *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)
	f := &serviceFixture{
		store:     mocks.NewMockStore(ctrl),
		directory: mocks.NewMockDirectory(ctrl),
		audit:     mocks.NewMockAuditSink(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.service = NewService(f.store, f.directory, f.audit, nil, logger)
	return f
}

func fixedCtx(now time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), now)
}

func TestService_Submit(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	submitterID := id.NewEmployeeID()

	t.Run("resolves department and applies defaults", func(t *testing.T) {
		f := newServiceFixture(t)
		ctx := fixedCtx(now)

		f.directory.EXPECT().DepartmentOf(gomock.Any(), "Alma Reyes").
			Return("FALS", submitterID, nil)
		var saved workflow.Document
		f.store.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc workflow.Document) error {
				saved = doc
				return nil
			})
		f.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		doc, err := f.service.Submit(ctx, SubmitRequest{
			Title:       "Endorsement for new elective",
			Category:    workflow.CategoryEndorsementForm,
			SubmittedBy: "Alma Reyes",
		})
		require.NoError(t, err)

		assert.Equal(t, workflow.StatusSubmitted, doc.Status)
		assert.Equal(t, "FALS", doc.Department)
		assert.Equal(t, submitterID, doc.SubmitterID)
		assert.Equal(t, float64(workflow.DefaultExpectedHours), doc.ExpectedHours)
		assert.Equal(t, now, doc.DateUploaded)
		assert.Empty(t, doc.History)
		assert.Equal(t, int64(1), doc.Version)
		assert.Equal(t, saved.ID, doc.ID)
	})

	t.Run("unknown submitter leaves department unresolved", func(t *testing.T) {
		f := newServiceFixture(t)

		f.directory.EXPECT().DepartmentOf(gomock.Any(), "Ghost Writer").
			Return("", id.EmployeeID{}, nil)
		f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		f.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		doc, err := f.service.Submit(fixedCtx(now), SubmitRequest{
			SubmittedBy: "Ghost Writer",
			Category:    workflow.CategoryOther,
		})
		require.NoError(t, err)
		assert.Empty(t, doc.Department)
		assert.True(t, doc.SubmitterID.IsNil())
	})

	t.Run("missing submitter name is rejected", func(t *testing.T) {
		f := newServiceFixture(t)
		_, err := f.service.Submit(fixedCtx(now), SubmitRequest{Title: "untitled"})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("assignees are deduped before parsing", func(t *testing.T) {
		f := newServiceFixture(t)
		assignee := id.NewEmployeeID()

		f.directory.EXPECT().DepartmentOf(gomock.Any(), "Alma Reyes").
			Return("FALS", submitterID, nil)
		f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		f.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		doc, err := f.service.Submit(fixedCtx(now), SubmitRequest{
			SubmittedBy: "Alma Reyes",
			AssignedTo:  []string{assignee.String(), " " + assignee.String() + " ", ""},
		})
		require.NoError(t, err)
		assert.Equal(t, []id.EmployeeID{assignee}, doc.AssignedTo)
	})
}

func TestService_ApplyAction(t *testing.T) {
	now := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	actorID := id.NewEmployeeID()
	actor := workflow.Actor{
		ID:         actorID,
		Name:       "Carla Dizon",
		Position:   "Secretary",
		Department: "FALS",
	}

	pending := func() workflow.Document {
		return workflow.Document{
			ID:           id.NewDocumentID(),
			Category:     workflow.CategoryEndorsementForm,
			SubmittedBy:  "Alma Reyes",
			Department:   "FALS",
			Status:       workflow.StatusSubmitted,
			DateUploaded: now.Add(-2 * time.Hour),
			Version:      1,
		}
	}

	t.Run("approve and forward persists the engine result", func(t *testing.T) {
		f := newServiceFixture(t)
		doc := pending()

		f.store.EXPECT().FindByID(gomock.Any(), doc.ID).Return(doc, nil)
		f.directory.EXPECT().ActorFor(gomock.Any(), actorID).Return(actor, nil)
		f.store.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d workflow.Document) (workflow.Document, error) {
				d.Version++
				return d, nil
			})
		var emitted audit.Event
		f.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Event) error {
				emitted = e
				return nil
			})

		saved, entry, err := f.service.ApplyAction(fixedCtx(now), doc.ID,
			workflow.ActionApproveForward, actorID, "looks good")
		require.NoError(t, err)

		assert.Equal(t, workflow.StatusProcessing, saved.Status)
		assert.Equal(t, workflow.PositionProgramHead, saved.NextOffice)
		assert.Equal(t, int64(2), saved.Version)
		assert.Equal(t, workflow.EntryApproved, entry.Action)

		assert.Equal(t, doc.ID, emitted.DocumentID)
		assert.Equal(t, string(workflow.ActionApproveForward), emitted.Action)
		assert.Equal(t, now, emitted.Timestamp)
	})

	t.Run("engine failure skips the store write", func(t *testing.T) {
		f := newServiceFixture(t)
		doc := pending()

		f.store.EXPECT().FindByID(gomock.Any(), doc.ID).Return(doc, nil)
		f.directory.EXPECT().ActorFor(gomock.Any(), actorID).Return(actor, nil)

		_, _, err := f.service.ApplyAction(fixedCtx(now), doc.ID,
			workflow.ActionRejectReturn, actorID, "")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeMissingJustification))
	})

	t.Run("version conflict surfaces as conflict", func(t *testing.T) {
		f := newServiceFixture(t)
		doc := pending()

		f.store.EXPECT().FindByID(gomock.Any(), doc.ID).Return(doc, nil)
		f.directory.EXPECT().ActorFor(gomock.Any(), actorID).Return(actor, nil)
		f.store.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(workflow.Document{}, sentinel.ErrVersionConflict)

		_, _, err := f.service.ApplyAction(fixedCtx(now), doc.ID,
			workflow.ActionApproveForward, actorID, "ok")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("missing document maps to not found", func(t *testing.T) {
		f := newServiceFixture(t)
		docID := id.NewDocumentID()

		f.store.EXPECT().FindByID(gomock.Any(), docID).
			Return(workflow.Document{}, sentinel.ErrNotFound)

		_, _, err := f.service.ApplyAction(fixedCtx(now), docID,
			workflow.ActionApproveForward, actorID, "ok")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestService_VisibleDocuments(t *testing.T) {
	now := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	viewerID := id.NewEmployeeID()
	viewer := workflow.Actor{
		ID:         viewerID,
		Name:       "Diego Santos",
		Position:   "ProgramHead",
		Department: "FALS",
	}

	inDept := workflow.Document{
		ID:         id.NewDocumentID(),
		Department: "FALS",
		Status:     workflow.StatusProcessing,
		NextOffice: workflow.PositionProgramHead,
	}
	otherDept := workflow.Document{
		ID:         id.NewDocumentID(),
		Department: "Registrar",
		Status:     workflow.StatusProcessing,
		NextOffice: workflow.PositionProgramHead,
	}

	f := newServiceFixture(t)
	f.directory.EXPECT().ActorFor(gomock.Any(), viewerID).Return(viewer, nil)
	f.store.EXPECT().List(gomock.Any()).
		Return([]workflow.Document{inDept, otherDept}, nil)

	visible, err := f.service.VisibleDocuments(fixedCtx(now), viewerID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, inDept.ID, visible[0].ID)
}

func TestService_HistoryAndTimeReport(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	viewerID := id.NewEmployeeID()
	viewer := workflow.Actor{
		ID:         viewerID,
		Name:       "Diego Santos",
		Position:   "ProgramHead",
		Department: "FALS",
	}

	doc := workflow.Document{
		ID:            id.NewDocumentID(),
		Department:    "FALS",
		Status:        workflow.StatusProcessing,
		NextOffice:    workflow.PositionProgramHead,
		DateUploaded:  now.Add(-30 * time.Hour),
		ExpectedHours: 24,
		History: workflow.History{
			{Action: workflow.EntryForwarded, Timestamp: now.Add(-20 * time.Hour)},
			{Action: workflow.EntryReceived, Timestamp: now.Add(-30 * time.Hour)},
		},
	}

	t.Run("history is returned in total order", func(t *testing.T) {
		f := newServiceFixture(t)
		f.store.EXPECT().FindByID(gomock.Any(), doc.ID).Return(doc, nil)
		f.directory.EXPECT().ActorFor(gomock.Any(), viewerID).Return(viewer, nil)

		history, err := f.service.History(fixedCtx(now), doc.ID, viewerID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, workflow.EntryReceived, history[0].Action)
	})

	t.Run("time report runs against the request clock", func(t *testing.T) {
		f := newServiceFixture(t)
		f.store.EXPECT().FindByID(gomock.Any(), doc.ID).Return(doc, nil)
		f.directory.EXPECT().ActorFor(gomock.Any(), viewerID).Return(viewer, nil)

		report, err := f.service.TimeReport(fixedCtx(now), doc.ID, viewerID)
		require.NoError(t, err)
		assert.True(t, report.Exceeded)
		assert.InDelta(t, 30, report.SpentHours, 0.001)
		assert.Equal(t, float64(100), report.Percentage)
	})

	t.Run("invisible document is forbidden", func(t *testing.T) {
		f := newServiceFixture(t)
		outsider := workflow.Actor{
			ID:         viewerID,
			Name:       "Nora Lim",
			Position:   "Dean",
			Department: "Registrar",
		}
		f.store.EXPECT().FindByID(gomock.Any(), doc.ID).Return(doc, nil)
		f.directory.EXPECT().ActorFor(gomock.Any(), viewerID).Return(outsider, nil)

		_, err := f.service.History(fixedCtx(now), doc.ID, viewerID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func TestService_NextStage(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	actorID := id.NewEmployeeID()
	actor := workflow.Actor{
		ID:         actorID,
		Name:       "Diego Santos",
		Position:   "ProgramHead",
		Department: "FALS",
	}
	doc := workflow.Document{
		ID:         id.NewDocumentID(),
		Category:   workflow.CategoryEndorsementForm,
		Department: "FALS",
		Status:     workflow.StatusProcessing,
		NextOffice: workflow.PositionProgramHead,
	}

	f := newServiceFixture(t)
	f.store.EXPECT().FindByID(gomock.Any(), doc.ID).Return(doc, nil)
	f.directory.EXPECT().ActorFor(gomock.Any(), actorID).Return(actor, nil)

	next, err := f.service.NextStage(fixedCtx(now), doc.ID, actorID)
	require.NoError(t, err)
	assert.Equal(t, workflow.PositionVicePresident, next)
}
