package catalog

import (
	"strings"
	"time"

	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category represents a product category (e.g. Sofas, Dining Tables)
// Categories form at most a two-level hierarchy via ParentID.
type Category struct {
	shared.BaseAggregateRoot
	Name     string     `gorm:"type:varchar(100);not null"`
	Slug     string     `gorm:"type:varchar(120);not null;uniqueIndex"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, slug string) (*Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              strings.ToLower(slug),
	}, nil
}

// Update updates the category's basic information
func (c *Category) Update(name, slug string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateSlug(slug); err != nil {
		return err
	}

	c.Name = name
	c.Slug = strings.ToLower(slug)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetParent sets the parent category. A category with children cannot itself
// become a child; callers enforce that with CategoryRepository.HasChildren.
func (c *Category) SetParent(parentID *uuid.UUID) error {
	if parentID != nil && *parentID == c.ID {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be its own parent")
	}

	c.ParentID = parentID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

func validateSlug(slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	for _, r := range slug {
		if !(r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return shared.NewDomainError("INVALID_SLUG", "Slug may only contain letters, digits and hyphens")
		}
	}
	return nil
}
