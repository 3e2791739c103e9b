package auth

import "github.com/shopadmin/backend/internal/domain/staff"

// Scope narrows what a session sees on a resource it may read
type Scope struct {
	// OwnOnly restricts results to records belonging to the caller
	OwnOnly bool
	// HiddenFields are wire field names removed from every record
	HiddenFields []string
}

// EmployeeScope hides compensation fields from sessions without compensation access
func EmployeeScope(s *Session) Scope {
	if s.Can(CapEmployeesReadCompensation) {
		return Scope{}
	}
	return Scope{HiddenFields: staff.CompensationFields}
}

// OwnRecordsScope restricts the session to its own records unless it holds all
func OwnRecordsScope(s *Session, all Capability) Scope {
	return Scope{OwnOnly: !s.Can(all)}
}
