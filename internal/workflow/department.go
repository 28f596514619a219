package workflow

import "strings"

// SameDepartment decides whether a document belongs to the same
// department/office as an acting employee. True when the document department
// equals the employee department or office name case-insensitively, or when
// one contains the other in either direction (handles abbreviations such as
// "FALS" vs "Faculty of Agriculture and Life Sciences").
//
// A document with no resolvable department matches nothing: it stays
// invisible to department-scoped viewers until the submitter can be resolved.
func SameDepartment(documentDept, employeeDept, employeeOfficeName string) bool {
	doc := strings.TrimSpace(documentDept)
	if doc == "" {
		return false
	}
	return deptMatches(doc, employeeDept) || deptMatches(doc, employeeOfficeName)
}

func deptMatches(docDept, candidate string) bool {
	c := strings.TrimSpace(candidate)
	if c == "" {
		return false
	}
	ld := strings.ToLower(docDept)
	lc := strings.ToLower(c)
	if ld == lc {
		return true
	}
	return strings.Contains(ld, lc) || strings.Contains(lc, ld)
}
