package models

// Product is an immutable catalog snapshot embedded into cart lines at
// add-time. Prices are not revalidated against the catalog later in the
// session.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category"`
	Supplier string `json:"supplier"`
}
