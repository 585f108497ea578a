package service

import (
	"github.com/google/uuid"

	"github.com/warning2025/farmaciaposventas3/internal/model"
)

// Actor is the authenticated user on whose behalf an operation runs, taken
// from the JWT claims by the auth middleware.
type Actor struct {
	ID                uuid.UUID
	Name              string
	Role              string
	BranchAssignments map[string]string
}

func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }

// CanAccess reports whether the actor may operate on the given branch.
// Admins pass for any branch; everyone else needs an assignment.
func (a Actor) CanAccess(branchID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	_, ok := a.BranchAssignments[branchID.String()]
	return ok
}
