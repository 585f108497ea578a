package model

import "github.com/google/uuid"

// Small lookup catalogs that feed the product form.

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"uniqueIndex;not null"`
}

func (Category) TableName() string { return "categories" }

type Presentation struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"uniqueIndex;not null"`
}

func (Presentation) TableName() string { return "presentations" }

type Concentration struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"uniqueIndex;not null"`
}

func (Concentration) TableName() string { return "concentrations" }
