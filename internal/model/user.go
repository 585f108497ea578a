package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin     = "Admin"
	RoleCashier   = "Cajero"
	RoleWarehouse = "Almacén"
)

// BranchAssignments maps branchID → role at that branch, stored as JSONB.
type BranchAssignments map[string]string

func (a BranchAssignments) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return json.Marshal(a)
}

func (a *BranchAssignments) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = BranchAssignments{}
		return nil
	default:
		return errors.New("branch_assignments: unsupported scan type")
	}
}

// User is an operator account. Non-admins act on an explicitly selected branch
// that must appear in BranchAssignments; admins pass for any branch.
type User struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email             string            `gorm:"uniqueIndex;not null"`
	Name              string            `gorm:"not null"`
	PasswordHash      string            `gorm:"not null"`
	Role              string            `gorm:"type:varchar(12);not null"`
	BranchAssignments BranchAssignments `gorm:"type:jsonb;not null;default:'{}'"`
	Active            bool              `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
