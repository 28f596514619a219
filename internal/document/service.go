package document

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"docflow/internal/audit"
	"docflow/internal/workflow"
	wfmetrics "docflow/internal/workflow/metrics"
	id "docflow/pkg/domain"
	dErrors "docflow/pkg/domain-errors"
	"docflow/pkg/platform/sentinel"
	pkgstrings "docflow/pkg/platform/strings"
	"docflow/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Directory is the slice of the directory service the document service needs.
type Directory interface {
	ActorFor(ctx context.Context, empID id.EmployeeID) (workflow.Actor, error)
	DepartmentOf(ctx context.Context, submitterName string) (string, id.EmployeeID, error)
}

// AuditSink receives one event per applied workflow operation.
type AuditSink interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates the pure workflow engine over durable storage. Every
// operation loads a snapshot, runs the engine, and persists the result under
// the store's version CAS; the engine itself never sees the store.
type Service struct {
	store         Store
	directory     Directory
	audit         AuditSink
	metrics       *wfmetrics.Metrics
	logger        *slog.Logger
	tracer        trace.Tracer
	expectedHours float64
}

func NewService(store Store, directory Directory, auditSink AuditSink, m *wfmetrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		store:         store,
		directory:     directory,
		audit:         auditSink,
		metrics:       m,
		logger:        logger,
		tracer:        otel.Tracer("docflow/internal/document"),
		expectedHours: workflow.DefaultExpectedHours,
	}
}

// SetDefaultExpectedHours overrides the fallback expected processing duration
// applied to submissions that carry none. Non-positive values are ignored.
func (s *Service) SetDefaultExpectedHours(hours float64) {
	if hours > 0 {
		s.expectedHours = hours
	}
}

// SubmitRequest carries the fields a submitter controls. Everything else is
// derived: the department comes from the directory, the status starts at
// submitted, and the ledger starts empty.
type SubmitRequest struct {
	Title         string
	Category      workflow.Category
	SubmittedBy   string
	ExpectedHours float64
	AttachmentRef string
	AssignedTo    []string
}

// Submit creates a document in the submitted state. An unknown submitter is
// accepted but leaves the department unresolved; the document stays invisible
// to department-scoped viewers and unroutable until the directory catches up.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (workflow.Document, error) {
	if req.SubmittedBy == "" {
		return workflow.Document{}, dErrors.New(dErrors.CodeValidation, "submitter name is required")
	}

	dept, submitterID, err := s.directory.DepartmentOf(ctx, req.SubmittedBy)
	if err != nil {
		return workflow.Document{}, err
	}

	assigned, err := parseAssignees(req.AssignedTo)
	if err != nil {
		return workflow.Document{}, err
	}

	expected := req.ExpectedHours
	if expected <= 0 {
		expected = s.expectedHours
	}

	doc := workflow.Document{
		ID:            id.NewDocumentID(),
		Category:      workflow.ParseCategory(string(req.Category)),
		Title:         req.Title,
		SubmittedBy:   req.SubmittedBy,
		SubmitterID:   submitterID,
		Department:    dept,
		Status:        workflow.StatusSubmitted,
		AssignedTo:    assigned,
		DateUploaded:  requestcontext.Now(ctx),
		ExpectedHours: expected,
		AttachmentRef: req.AttachmentRef,
	}

	if err := s.store.Save(ctx, doc); err != nil {
		return workflow.Document{}, dErrors.Wrap(err, dErrors.CodeInternal, "save document")
	}
	doc.Version = 1

	s.metrics.IncrementDocumentsSubmitted()

	s.emitAudit(ctx, audit.Event{
		Timestamp:  doc.DateUploaded,
		ActorID:    submitterID,
		ActorName:  req.SubmittedBy,
		DocumentID: doc.ID,
		Action:     "document_submitted",
		Decision:   string(doc.Status),
	})

	s.logger.InfoContext(ctx, "document submitted",
		"document_id", doc.ID,
		"category", doc.Category,
		"department", doc.Department,
	)
	return doc, nil
}

// ApplyAction runs one routing action on behalf of the acting employee and
// persists the new snapshot. On a version conflict the caller receives a
// conflict error and should re-read; the engine is never re-run on a stale
// snapshot.
func (s *Service) ApplyAction(ctx context.Context, docID id.DocumentID, action workflow.Action, actorID id.EmployeeID, comment string) (workflow.Document, workflow.RoutingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "document.apply_action",
		trace.WithAttributes(
			attribute.String("document.id", docID.String()),
			attribute.String("workflow.action", string(action)),
		))
	defer span.End()

	doc, err := s.store.FindByID(ctx, docID)
	if err != nil {
		return workflow.Document{}, workflow.RoutingEntry{}, s.translateStoreErr(err)
	}
	actor, err := s.directory.ActorFor(ctx, actorID)
	if err != nil {
		return workflow.Document{}, workflow.RoutingEntry{}, err
	}

	now := requestcontext.Now(ctx)
	updated, entry, err := workflow.ApplyAction(doc, action, actor, comment, now)
	if err != nil {
		s.metrics.IncrementAction(string(action), string(dErrors.CodeOf(err)))
		return workflow.Document{}, workflow.RoutingEntry{}, err
	}

	saved, err := s.store.Update(ctx, updated)
	if err != nil {
		s.metrics.IncrementAction(string(action), "store_error")
		if errors.Is(err, sentinel.ErrVersionConflict) {
			return workflow.Document{}, workflow.RoutingEntry{}, dErrors.New(dErrors.CodeConflict,
				"document was modified concurrently; reload and retry")
		}
		return workflow.Document{}, workflow.RoutingEntry{}, s.translateStoreErr(err)
	}
	s.metrics.IncrementAction(string(action), "applied")

	s.emitAudit(ctx, audit.Event{
		Timestamp:  now,
		ActorID:    actorID,
		ActorName:  actor.Name,
		DocumentID: docID,
		Action:     string(action),
		Stage:      string(entry.ToOffice),
		Decision:   string(saved.Status),
		Reason:     entry.Comments,
		RequestID:  requestcontext.RequestID(ctx),
	})

	s.logger.InfoContext(ctx, "routing action applied",
		"document_id", docID,
		"action", action,
		"actor_id", actorID,
		"status", saved.Status,
		"next_office", saved.NextOffice,
	)
	return saved, entry, nil
}

// Acknowledge records receipt of the document by the acting office.
func (s *Service) Acknowledge(ctx context.Context, docID id.DocumentID, actorID id.EmployeeID) (workflow.Document, error) {
	doc, err := s.store.FindByID(ctx, docID)
	if err != nil {
		return workflow.Document{}, s.translateStoreErr(err)
	}
	actor, err := s.directory.ActorFor(ctx, actorID)
	if err != nil {
		return workflow.Document{}, err
	}

	updated, entry, err := workflow.Acknowledge(doc, actor, requestcontext.Now(ctx))
	if err != nil {
		return workflow.Document{}, err
	}
	saved, err := s.store.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, sentinel.ErrVersionConflict) {
			return workflow.Document{}, dErrors.New(dErrors.CodeConflict,
				"document was modified concurrently; reload and retry")
		}
		return workflow.Document{}, s.translateStoreErr(err)
	}

	s.emitAudit(ctx, audit.Event{
		Timestamp:  entry.Timestamp,
		ActorID:    actorID,
		ActorName:  actor.Name,
		DocumentID: docID,
		Action:     string(workflow.EntryReceived),
		Decision:   string(saved.Status),
		RequestID:  requestcontext.RequestID(ctx),
	})
	return saved, nil
}

// NextStage previews the stage that would follow the acting employee, without
// touching the document.
func (s *Service) NextStage(ctx context.Context, docID id.DocumentID, actorID id.EmployeeID) (workflow.Position, error) {
	doc, err := s.store.FindByID(ctx, docID)
	if err != nil {
		return workflow.PositionNone, s.translateStoreErr(err)
	}
	actor, err := s.directory.ActorFor(ctx, actorID)
	if err != nil {
		return workflow.PositionNone, err
	}
	return workflow.ResolveNextStage(doc, actor)
}

// VisibleDocuments returns the employee's permitted subset of all documents.
func (s *Service) VisibleDocuments(ctx context.Context, employeeID id.EmployeeID) ([]workflow.Document, error) {
	employee, err := s.directory.ActorFor(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, s.translateStoreErr(err)
	}

	start := time.Now()
	visible, err := workflow.VisibleDocuments(ctx, employee, all)
	s.metrics.ObserveVisibilityScan(time.Since(start))
	return visible, err
}

// History returns the document's routing ledger in total order, restricted to
// employees the document is visible to.
func (s *Service) History(ctx context.Context, docID id.DocumentID, employeeID id.EmployeeID) (workflow.History, error) {
	doc, _, err := s.loadVisible(ctx, docID, employeeID)
	if err != nil {
		return nil, err
	}
	return doc.History.Sorted(), nil
}

// TimeReport computes approval-time analytics for a visible document. The
// in-flight clock reads the request-scoped now, never the wall clock.
func (s *Service) TimeReport(ctx context.Context, docID id.DocumentID, employeeID id.EmployeeID) (workflow.TimeReport, error) {
	doc, _, err := s.loadVisible(ctx, docID, employeeID)
	if err != nil {
		return workflow.TimeReport{}, err
	}
	report := workflow.AnalyzeApprovalTime(doc, requestcontext.Now(ctx))
	if report.Exceeded && !report.IsApproved && !report.IsRejected {
		s.metrics.IncrementDeadlineExceeded()
	}
	return report, nil
}

func (s *Service) loadVisible(ctx context.Context, docID id.DocumentID, employeeID id.EmployeeID) (workflow.Document, workflow.Actor, error) {
	doc, err := s.store.FindByID(ctx, docID)
	if err != nil {
		return workflow.Document{}, workflow.Actor{}, s.translateStoreErr(err)
	}
	employee, err := s.directory.ActorFor(ctx, employeeID)
	if err != nil {
		return workflow.Document{}, workflow.Actor{}, err
	}
	if !workflow.VisibleTo(doc, employee) {
		return workflow.Document{}, workflow.Actor{}, dErrors.New(dErrors.CodeForbidden,
			"document is not visible to this employee")
	}
	return doc, employee, nil
}

// emitAudit mirrors the action into the audit trail. Audit failure does not
// roll back the already-persisted document; it is logged and surfaced to
// operators through the sink's own metrics.
func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "audit emit failed",
			"document_id", event.DocumentID,
			"action", event.Action,
			"error", err,
		)
	}
}

func (s *Service) translateStoreErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "document not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "document store failure")
}

func parseAssignees(raw []string) ([]id.EmployeeID, error) {
	var out []id.EmployeeID
	for _, v := range pkgstrings.DedupeAndTrim(raw) {
		empID, err := id.ParseEmployeeID(v)
		if err != nil {
			return nil, err
		}
		out = append(out, empID)
	}
	return out, nil
}
