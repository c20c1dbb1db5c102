package repository

import (
	"context"
	"errors"

	"github.com/boutique-dz/storefront-backend/internal/models"
	"golang.org/x/text/currency"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	products map[string]models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository with
// seed data. Real catalog data comes from the hosted backend; this repository
// stands in for it in-process.
func NewInMemoryProductRepository(unit currency.Unit) *InMemoryProductRepository {
	price := func(amount string) models.Money {
		m, err := models.NewMoney(amount, unit)
		if err != nil {
			panic(err)
		}
		return m
	}

	products := map[string]models.Product{
		"1":  {ID: "1", Name: "Kabyle Wool Rug", Price: price("24500"), Category: "Rugs", Supplier: "Atelier Djurdjura", Image: "/images/kabyle-rug.jpg"},
		"2":  {ID: "2", Name: "Cedar Coffee Table", Price: price("38900"), Category: "Tables", Supplier: "Bois de l'Atlas", Image: "/images/cedar-table.jpg"},
		"3":  {ID: "3", Name: "Linen Sofa Cover", Price: price("7900"), Category: "Textiles", Supplier: "Tissage Oranais", Image: "/images/linen-cover.jpg"},
		"4":  {ID: "4", Name: "Ceramic Table Lamp", Price: price("10900"), Category: "Lighting", Supplier: "Poterie de Nabeul", Image: "/images/ceramic-lamp.jpg"},
		"5":  {ID: "5", Name: "Rattan Armchair", Price: price("29500"), Category: "Seating", Supplier: "Atelier Djurdjura", Image: "/images/rattan-chair.jpg"},
		"6":  {ID: "6", Name: "Brass Wall Mirror", Price: price("15400"), Category: "Decor", Supplier: "Dinanderie Constantine", Image: "/images/brass-mirror.jpg"},
		"7":  {ID: "7", Name: "Olive Wood Shelf", Price: price("19900"), Category: "Storage", Supplier: "Bois de l'Atlas", Image: "/images/olive-shelf.jpg"},
		"8":  {ID: "8", Name: "Handwoven Cushion", Price: price("3200"), Category: "Textiles", Supplier: "Tissage Oranais", Image: "/images/woven-cushion.jpg"},
		"9":  {ID: "9", Name: "Terracotta Planter", Price: price("4800"), Category: "Decor", Supplier: "Poterie de Nabeul", Image: "/images/terracotta-planter.jpg"},
		"10": {ID: "10", Name: "Oak Dining Chair", Price: price("17600"), Category: "Seating", Supplier: "Bois de l'Atlas", Image: "/images/oak-chair.jpg"},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns all products
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}
