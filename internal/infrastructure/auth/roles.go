package auth

import "sort"

// Role is the back-office role carried in the session's role claim
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleAccountant Role = "accountant"
	RoleEmployee   Role = "employee"
)

// ParseRole converts a claim value into a Role
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := roleCapabilities[r]
	return r, ok
}

// Capability is a named permission checked by the authorization gate
type Capability string

const (
	CapOrdersRead                Capability = "orders:read"
	CapCustomersRead             Capability = "customers:read"
	CapCustomersWrite            Capability = "customers:write"
	CapProductsRead              Capability = "products:read"
	CapEmployeesRead             Capability = "employees:read"
	CapEmployeesReadCompensation Capability = "employees:read_compensation"
	CapPayrollRead               Capability = "payroll:read"
	CapPayrollReadOwn            Capability = "payroll:read_own"
	CapExpensesRead              Capability = "expenses:read"
	CapExpensesReadOwn           Capability = "expenses:read_own"
	CapInvestmentsRead           Capability = "investments:read"
	CapFilesRead                 Capability = "files:read"
	CapSessionsRevoke            Capability = "sessions:revoke"
)

func capabilitySet(caps ...Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

var roleCapabilities = map[Role]map[Capability]struct{}{
	RoleAdmin: capabilitySet(
		CapOrdersRead, CapCustomersRead, CapCustomersWrite, CapProductsRead,
		CapEmployeesRead, CapEmployeesReadCompensation,
		CapPayrollRead, CapPayrollReadOwn, CapExpensesRead, CapExpensesReadOwn,
		CapInvestmentsRead, CapFilesRead, CapSessionsRevoke,
	),
	RoleManager: capabilitySet(
		CapOrdersRead, CapCustomersRead, CapProductsRead, CapEmployeesRead,
		CapExpensesRead, CapExpensesReadOwn, CapPayrollReadOwn, CapFilesRead,
		CapSessionsRevoke,
	),
	RoleAccountant: capabilitySet(
		CapOrdersRead, CapCustomersRead, CapProductsRead,
		CapEmployeesRead, CapEmployeesReadCompensation,
		CapPayrollRead, CapPayrollReadOwn, CapExpensesRead, CapExpensesReadOwn,
		CapInvestmentsRead, CapFilesRead, CapSessionsRevoke,
	),
	RoleEmployee: capabilitySet(
		CapProductsRead, CapPayrollReadOwn, CapExpensesReadOwn, CapFilesRead,
		CapSessionsRevoke,
	),
}

// Has reports whether the role grants the capability
func (r Role) Has(c Capability) bool {
	_, ok := roleCapabilities[r][c]
	return ok
}

// HasAny reports whether the role grants at least one of caps
func (r Role) HasAny(caps ...Capability) bool {
	for _, c := range caps {
		if r.Has(c) {
			return true
		}
	}
	return false
}

// Capabilities returns the role's capabilities in sorted order
func (r Role) Capabilities() []Capability {
	caps := make([]Capability, 0, len(roleCapabilities[r]))
	for c := range roleCapabilities[r] {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}
