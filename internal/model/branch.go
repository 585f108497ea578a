package model

import (
	"time"

	"github.com/google/uuid"
)

// Branch is a physical store location. Exactly one branch holds IsMain at a
// time: the first branch created gets it, and promotion moves it
// transactionally (see BranchService.SetMain).
type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Address   string    `gorm:"not null"`
	Phone     *string
	IsMain    bool `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (Branch) TableName() string { return "branches" }

// ActivationCode gates branch provisioning; a code is consumed when a branch
// is activated with it and released again if that branch is deleted.
type ActivationCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string    `gorm:"uniqueIndex;not null"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}
