package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Color is a selectable swatch on a product.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ColorList is stored in a single jsonb column.
type ColorList []Color

func (l ColorList) Value() (driver.Value, error) {
	if l == nil {
		l = ColorList{}
	}
	return json.Marshal(l)
}

func (l *ColorList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into ColorList", value)
	}
}

// Product is read-only reference data from the storefront's point of view;
// rows are written only through the admin surface.
type Product struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`
	SKU              string         `gorm:"uniqueIndex" json:"sku"`
	Name             string         `gorm:"not null" json:"name"`
	Description      string         `json:"description"`
	Price            float64        `gorm:"not null" json:"price"`
	CompareAtPrice   *float64       `json:"compare_at_price"`
	Category         string         `gorm:"index;not null" json:"category"`
	Subcategory      string         `gorm:"index" json:"subcategory"`
	Images           pq.StringArray `gorm:"type:text[]" json:"images"` // ordered, first one is the card image
	Sizes            pq.StringArray `gorm:"type:text[]" json:"sizes"`
	Colors           ColorList      `gorm:"type:jsonb" json:"colors"`
	Inventory        int            `json:"inventory"`
	Material         string         `json:"material"`
	CareInstructions string         `json:"care_instructions"`
	IsFeatured       bool           `gorm:"index" json:"is_featured"`
	IsNew            bool           `gorm:"index" json:"is_new"`
	Rating           float64        `json:"rating"`
	ReviewCount      int            `json:"review_count"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
