package models

// Product is the canonical, displayable product shape used by every
// storefront surface. Instances are immutable once resolved for a session.
type Product struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Price       float64  `bson:"price" json:"price"`
	Currency    string   `bson:"currency" json:"currency"`
	Description string   `bson:"description" json:"description"`
	Images      []string `bson:"images" json:"images"`
	Sizes       []string `bson:"sizes,omitempty" json:"sizes,omitempty"`
	Category    string   `bson:"category" json:"category"`
	InStock     bool     `bson:"in_stock" json:"inStock"`
}

// Image returns the primary image for a product. Resolved products always
// carry at least one image, but cart snapshots taken from older data may not.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Category is a product grouping managed from the admin console.
type Category struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Size is a selectable size option managed from the admin console.
type Size struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}
