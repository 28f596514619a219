package workflow

import (
	dErrors "docflow/pkg/domain-errors"
)

// defaultChain serves FacultyLoading, TravelOrder, and any unmapped category.
var defaultChain = []Position{PositionProgramHead, PositionDean, PositionAcademicVicePresident}

// chains is the routing table: per-category ordered approval chains. The last
// element of each chain is the terminal approver, empowered only to
// final-approve. Data, not code: changing an approval flow means editing this
// table.
var chains = map[Category][]Position{
	CategoryEndorsementForm: {
		PositionCommunication,
		PositionProgramHead,
		PositionVicePresident,
		PositionOfficeOfThePresident,
	},
	CategoryRequestedSubject: {
		PositionProgramHead,
		PositionDean,
		PositionVicePresident,
	},
	CategoryFacultyLoading: defaultChain,
	CategoryTravelOrder:    defaultChain,
}

// ChainFor returns the approval chain for a category. Unmapped categories
// route through the default chain. Callers must not mutate the result.
func ChainFor(category Category) []Position {
	if chain, ok := chains[category]; ok {
		return chain
	}
	return defaultChain
}

// TerminalApprover returns the last position of the category's chain.
func TerminalApprover(category Category) Position {
	chain := ChainFor(category)
	return chain[len(chain)-1]
}

// chainIndex locates the actor's canonical position in the chain, or -1.
func chainIndex(chain []Position, pos Position) int {
	for i, p := range chain {
		if p == pos || PositionMatches(string(p), string(pos)) {
			return i
		}
	}
	return -1
}

// authorize performs the checks shared by every routing operation:
// the document must have a resolvable submitter department, the actor must
// belong to it, and the actor's position must appear in the category's chain.
// Returns the chain and the actor's index within it.
//
// Every position is department-scoped; there are no organization-wide roles.
// A same-position employee in a different department is never a valid actor.
func authorize(doc Document, actor Actor) ([]Position, int, error) {
	if doc.Department == "" {
		return nil, 0, dErrors.New(dErrors.CodeUnresolvedDepartment,
			"submitter could not be matched to a known employee")
	}
	if !SameDepartment(doc.Department, actor.Department, actor.OfficeName) {
		return nil, 0, dErrors.New(dErrors.CodeForbidden,
			"acting employee is outside the document's department")
	}
	chain := ChainFor(doc.Category)
	idx := chainIndex(chain, Canonicalize(actor.Position))
	if idx < 0 {
		return nil, 0, dErrors.Newf(dErrors.CodeNotInChain,
			"position %q is not part of the %s approval chain", actor.Position, doc.Category)
	}
	return chain, idx, nil
}

// ResolveNextStage computes the canonical stage that must act after the given
// actor, or PositionNone when the actor is the terminal approver for the
// document's category. Deterministic: the same (category, position,
// department pair) always yields the same result.
func ResolveNextStage(doc Document, actor Actor) (Position, error) {
	chain, idx, err := authorize(doc, actor)
	if err != nil {
		return PositionNone, err
	}
	if idx == len(chain)-1 {
		return PositionNone, nil
	}
	return chain[idx+1], nil
}
