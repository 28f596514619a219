package workflow

import (
	"strings"
	"time"

	dErrors "docflow/pkg/domain-errors"
)

// Action is a workflow operation requested by an acting employee.
type Action string

const (
	ActionApproveForward Action = "approve_and_forward"
	ActionForwardOnly    Action = "forward_only"
	ActionRejectReturn   Action = "reject_and_return"
	ActionFinalApprove   Action = "final_approve"
)

// ParseAction converts a raw string to an Action.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionApproveForward, ActionForwardOnly, ActionRejectReturn, ActionFinalApprove:
		return a, nil
	}
	return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown workflow action %q", s)
}

// ApplyAction runs one workflow action against a document snapshot and
// returns the updated snapshot plus the single ledger entry it appended.
// The input document is never mutated; on error it is returned unchanged and
// nothing is appended.
//
// Invariant on success: NextOffice is empty iff the result is terminal
// (approved with no further stage, or rejected), and
// len(result.History) == len(doc.History)+1.
func ApplyAction(doc Document, action Action, actor Actor, comment string, now time.Time) (Document, RoutingEntry, error) {
	if doc.IsTerminal() {
		return doc, RoutingEntry{}, dErrors.Newf(dErrors.CodeIllegalTransition,
			"document is %s and accepts no further routing actions", doc.EffectiveStatus())
	}

	switch action {
	case ActionApproveForward:
		return forward(doc, actor, comment, now, EntryApproved)
	case ActionForwardOnly:
		return forward(doc, actor, comment, now, EntryForwarded)
	case ActionRejectReturn:
		return reject(doc, actor, comment, now)
	case ActionFinalApprove:
		return finalApprove(doc, actor, comment, now)
	}
	return doc, RoutingEntry{}, dErrors.Newf(dErrors.CodeInvalidInput, "unknown workflow action %q", action)
}

// forward moves the document to the next stage of its chain. Used by both
// approve-and-forward and forward-only; only the recorded entry action
// differs.
func forward(doc Document, actor Actor, comment string, now time.Time, entryAction EntryAction) (Document, RoutingEntry, error) {
	next, err := ResolveNextStage(doc, actor)
	if err != nil {
		return doc, RoutingEntry{}, err
	}
	if next == PositionNone {
		return doc, RoutingEntry{}, dErrors.New(dErrors.CodeNoNextStage,
			"acting position is the terminal approver; only final approval is possible")
	}

	entry := RoutingEntry{
		Office:      Canonicalize(actor.Position),
		ToOffice:    next,
		Action:      entryAction,
		PerformedBy: actor.Name,
		Timestamp:   now,
		Comments:    strings.TrimSpace(comment),
	}

	updated := doc.clone()
	updated.Status = StatusProcessing
	updated.CurrentOffice = next
	updated.NextOffice = next
	applyReview(&updated, entry, now)
	return updated, entry, nil
}

// reject returns the document to its submitter. Rejection is terminal and
// always clears both offices. A justification comment is mandatory.
func reject(doc Document, actor Actor, comment string, now time.Time) (Document, RoutingEntry, error) {
	// Department scoping and chain membership bind rejection too: an
	// employee who cannot see the document cannot reject it either.
	if _, _, err := authorize(doc, actor); err != nil {
		return doc, RoutingEntry{}, err
	}
	if strings.TrimSpace(comment) == "" {
		return doc, RoutingEntry{}, dErrors.New(dErrors.CodeMissingJustification,
			"rejection requires a justification comment")
	}

	entry := RoutingEntry{
		Office:      Canonicalize(actor.Position),
		Action:      EntryRejected,
		PerformedBy: actor.Name,
		Timestamp:   now,
		Comments:    strings.TrimSpace(comment),
	}

	updated := doc.clone()
	updated.Status = StatusRejected
	updated.CurrentOffice = PositionNone
	updated.NextOffice = PositionNone
	applyReview(&updated, entry, now)
	return updated, entry, nil
}

// finalApprove closes the chain. Only the terminal approver of the document's
// category may final-approve.
func finalApprove(doc Document, actor Actor, comment string, now time.Time) (Document, RoutingEntry, error) {
	chain, idx, err := authorize(doc, actor)
	if err != nil {
		return doc, RoutingEntry{}, err
	}
	if idx != len(chain)-1 {
		return doc, RoutingEntry{}, dErrors.Newf(dErrors.CodeIllegalTransition,
			"only the terminal approver (%s) may final-approve a %s document", chain[len(chain)-1], doc.Category)
	}

	entry := RoutingEntry{
		Office:      Canonicalize(actor.Position),
		Action:      EntryApproved,
		PerformedBy: actor.Name,
		Timestamp:   now,
		Comments:    strings.TrimSpace(comment),
	}

	updated := doc.clone()
	updated.Status = StatusApproved
	updated.CurrentOffice = Canonicalize(actor.Position)
	updated.NextOffice = PositionNone
	applyReview(&updated, entry, now)
	return updated, entry, nil
}

// Acknowledge records receipt of a submitted document by its first office and
// moves it under review. It appends a "received" entry, which later anchors
// approval-time analytics. Acknowledging an already-active document only
// appends the entry.
func Acknowledge(doc Document, actor Actor, now time.Time) (Document, RoutingEntry, error) {
	if doc.IsTerminal() {
		return doc, RoutingEntry{}, dErrors.New(dErrors.CodeIllegalTransition,
			"document routing already finished")
	}
	if _, _, err := authorize(doc, actor); err != nil {
		return doc, RoutingEntry{}, err
	}

	entry := RoutingEntry{
		Office:      Canonicalize(actor.Position),
		Action:      EntryReceived,
		PerformedBy: actor.Name,
		Timestamp:   now,
	}

	updated := doc.clone()
	if updated.Status == StatusSubmitted {
		updated.Status = StatusUnderReview
	}
	updated.History = updated.History.Append(entry)
	return updated, entry, nil
}

// applyReview appends the ledger entry and stamps the document-level review
// fields shared by all four routing actions.
func applyReview(doc *Document, entry RoutingEntry, now time.Time) {
	doc.History = doc.History.Append(entry)
	doc.Reviewer = entry.PerformedBy
	reviewedAt := now
	doc.ReviewDate = &reviewedAt
	if entry.Comments != "" {
		doc.Comments = entry.Comments
	}
}
