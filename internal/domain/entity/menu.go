// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Paise is a price expressed in the smallest currency unit. Prices are
// always whole, non-negative paise on the wire and in storage; the
// conversion to rupees happens at the display boundary only.
type Paise int64

// MenuCategory groups menu items into a section of the public menu.
type MenuCategory struct {
	ID          string // Stable unique key, assigned by the admin on creation.
	Name        string // Section heading shown on the menu page.
	Description string // Short blurb rendered under the heading.
}

// MenuItem is a single dish on the menu. The ID is the primary key and
// is immutable once assigned; renaming an item's id is a delete and
// recreate, never an in-place change.
type MenuItem struct {
	ID           string
	CategoryID   string // Foreign key into MenuCategory.
	Name         string
	Description  string
	ImageURL     string // Optional; empty when the item has no photo.
	IsVegetarian bool
	Price        Paise
	IsSpecial    bool // Marks the item for the chef's specials section.
}
