package staff

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/staff"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
)

// EmployeeLookup finds the employee record linked to an identity subject
type EmployeeLookup interface {
	FindByUserID(ctx context.Context, userID string) (*staff.Employee, error)
}

// SelfEmployeeID returns the id of the employee record linked to the
// session. ok is false when the caller has no employee record.
func SelfEmployeeID(ctx context.Context, lookup EmployeeLookup, session *auth.Session) (uuid.UUID, bool, error) {
	if session == nil || session.UserID == "" {
		return uuid.Nil, false, nil
	}
	emp, err := lookup.FindByUserID(ctx, session.UserID)
	if err != nil {
		if shared.IsNotFound(err) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	return emp.ID, true, nil
}
