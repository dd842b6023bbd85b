package catalog

import (
	"strings"
	"time"

	"github.com/furnimart/backend/internal/domain/shared"
)

// Brand represents a furniture manufacturer or house brand
type Brand struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(100);not null"`
	Slug string `gorm:"type:varchar(120);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates a new brand
func NewBrand(name, slug string) (*Brand, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	return &Brand{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              strings.ToLower(slug),
	}, nil
}

// Update updates the brand's basic information
func (b *Brand) Update(name, slug string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateSlug(slug); err != nil {
		return err
	}

	b.Name = name
	b.Slug = strings.ToLower(slug)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}
