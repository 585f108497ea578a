package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. CurrentStock is the central (unassigned) pool;
// stock held at a branch lives in BranchStock rows. CurrentStock is mutated
// only by sale create/delete, stock transfers and reposition updates — never
// written directly by a handler.
type Product struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Barcode        string          `gorm:"uniqueIndex;not null"`
	CommercialName string          `gorm:"index;not null"`
	GenericName    *string
	Category       string          `gorm:"not null"`
	SellingPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CurrentStock   int             `gorm:"not null;default:0"`
	MinStock       int             `gorm:"not null;default:0"`
	// ExpirationDate is kept as YYYY-MM-DD, the format the catalog form uses.
	ExpirationDate *string
	Unit           *string
	BatchNumber    *string
	Location       *string
	Concentration  *string
	Presentation   *string
	Laboratory     *string
	// BranchID is the home branch; nil means the product has not been
	// assigned yet (see ProductService.AssignOrphansToMainBranch).
	BranchID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BranchStock is the branch-local stock pool for a product, created lazily on
// the first transfer into the branch. (branch_id, product_id) is unique.
type BranchStock struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_branch_product"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_branch_product"`
	CurrentStock int       `gorm:"not null;default:0"`
	UpdatedAt    time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (BranchStock) TableName() string { return "branch_stocks" }
