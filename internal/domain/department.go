package domain

import "strings"

type Department int

const (
	DepartmentOther Department = iota
	DepartmentSales
	DepartmentMarketing
	DepartmentFinance
)

// ParseDepartment maps a free-text department onto the known ones, ignoring case.
// Anything unrecognised is DepartmentOther.
func ParseDepartment(s string) Department {
	switch strings.ToLower(s) {
	case "sales":
		return DepartmentSales
	case "marketing":
		return DepartmentMarketing
	case "finance":
		return DepartmentFinance
	default:
		return DepartmentOther
	}
}

func (d Department) String() string {
	switch d {
	case DepartmentSales:
		return "sales"
	case DepartmentMarketing:
		return "marketing"
	case DepartmentFinance:
		return "finance"
	default:
		return "generic"
	}
}

// BusinessMessage is the canned result of running a department's business logic.
func (d Department) BusinessMessage() string {
	return "Performing " + d.String() + " business logic"
}
