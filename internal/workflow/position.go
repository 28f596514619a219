package workflow

import "strings"

// Position is a canonical position token produced by Canonicalize. Routing
// chains, CurrentOffice, and NextOffice only ever hold canonical tokens.
type Position string

const (
	PositionNone                  Position = ""
	PositionCommunication         Position = "Communication"
	PositionProgramHead           Position = "ProgramHead"
	PositionDean                  Position = "Dean"
	PositionVicePresident         Position = "VicePresident"
	PositionAcademicVicePresident Position = "AcademicVicePresident"
	PositionOfficeOfThePresident  Position = "OfficeOfThePresident"
)

// aliasGroups maps lowercase name variants to their canonical token. This is
// the single source of truth for position naming; no other component compares
// position strings directly.
var aliasGroups = map[string]Position{
	"communication":            PositionCommunication,
	"secretary":                PositionCommunication,
	"program head":             PositionProgramHead,
	"programhead":              PositionProgramHead,
	"dean":                     PositionDean,
	"vp":                       PositionVicePresident,
	"vice president":           PositionVicePresident,
	"vicepresident":            PositionVicePresident,
	"academic vp":              PositionAcademicVicePresident,
	"academic vice president":  PositionAcademicVicePresident,
	"academicvicepresident":    PositionAcademicVicePresident,
	"op":                       PositionOfficeOfThePresident,
	"office of the president":  PositionOfficeOfThePresident,
	"officeofthepresident":     PositionOfficeOfThePresident,
	"president":                PositionOfficeOfThePresident,
}

// Canonicalize normalizes a raw position or office name to its canonical
// token. Names outside the alias table pass through trimmed, so unknown
// positions still compare by exact rules and fail closed in chain lookups
// rather than being guessed into a known role.
func Canonicalize(raw string) Position {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := aliasGroups[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return Position(trimmed)
}

// PositionMatches reports whether two raw position/office names refer to the
// same role. Matching rules, in order:
//
//  1. exact string equality
//  2. both map to the same alias group
//  3. case-insensitive equality
//  4. both lowercase forms contain "communication" (loose
//     Secretary ↔ Communication office naming)
//
// No fuzzy matching beyond these rules: ambiguous names are non-matching.
func PositionMatches(a, b string) bool {
	if a == b {
		return a != ""
	}
	ca, okA := aliasGroups[strings.ToLower(strings.TrimSpace(a))]
	cb, okB := aliasGroups[strings.ToLower(strings.TrimSpace(b))]
	if okA && okB && ca == cb {
		return true
	}
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la != "" && la == lb {
		return true
	}
	if strings.Contains(la, "communication") && strings.Contains(lb, "communication") {
		return true
	}
	return false
}
