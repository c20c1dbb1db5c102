package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/boutique-dz/storefront-backend/internal/models"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

var ErrEmptyCatalog = errors.New("delivery catalog has no options")

// Delivery is the fixed, immutable delivery option catalog. The first entry
// is the default selection for new carts.
type Delivery struct {
	options []models.DeliveryOption
	byID    map[models.DeliveryOptionID]models.DeliveryOption
}

type deliveryFile struct {
	Options []struct {
		ID            string `yaml:"id"`
		Name          string `yaml:"name"`
		Price         string `yaml:"price"`
		EstimatedDays string `yaml:"estimated_days"`
	} `yaml:"options"`
}

// LoadDelivery reads a delivery catalog from a YAML file. Prices are decimal
// strings in the store currency.
func LoadDelivery(path string, unit currency.Unit) (*Delivery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var file deliveryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	options := make([]models.DeliveryOption, 0, len(file.Options))
	for _, o := range file.Options {
		price, err := models.NewMoney(o.Price, unit)
		if err != nil {
			return nil, fmt.Errorf("option[%s] price: %w", o.ID, err)
		}
		options = append(options, models.DeliveryOption{
			ID:            models.DeliveryOptionID(o.ID),
			Name:          o.Name,
			Price:         price,
			EstimatedDays: o.EstimatedDays,
		})
	}

	return NewDelivery(options)
}

// DefaultDelivery returns the built-in catalog used when no file is
// configured.
func DefaultDelivery(unit currency.Unit) *Delivery {
	mustMoney := func(amount string) models.Money {
		m, err := models.NewMoney(amount, unit)
		if err != nil {
			panic(err)
		}
		return m
	}

	d, err := NewDelivery([]models.DeliveryOption{
		{ID: models.DeliveryStandard, Name: "Standard delivery", Price: mustMoney("500"), EstimatedDays: "3-5 days"},
		{ID: models.DeliveryExpress, Name: "Express delivery", Price: mustMoney("1200"), EstimatedDays: "1-2 days"},
		{ID: models.DeliveryPickup, Name: "Store pickup", Price: mustMoney("0"), EstimatedDays: "same day"},
	})
	if err != nil {
		panic(err)
	}
	return d
}

// NewDelivery validates and indexes a catalog.
func NewDelivery(options []models.DeliveryOption) (*Delivery, error) {
	if len(options) == 0 {
		return nil, ErrEmptyCatalog
	}

	byID := make(map[models.DeliveryOptionID]models.DeliveryOption, len(options))
	for _, o := range options {
		if o.ID == "" {
			return nil, fmt.Errorf("delivery option %q has no id", o.Name)
		}
		if _, exists := byID[o.ID]; exists {
			return nil, fmt.Errorf("duplicate delivery option id %q", o.ID)
		}
		if o.Price.IsNegative() {
			return nil, fmt.Errorf("delivery option %q has a negative price", o.ID)
		}
		byID[o.ID] = o
	}

	return &Delivery{options: options, byID: byID}, nil
}

// Default returns the first catalog entry.
func (d *Delivery) Default() models.DeliveryOption {
	return d.options[0]
}

// Get resolves an option by id.
func (d *Delivery) Get(id models.DeliveryOptionID) (models.DeliveryOption, bool) {
	o, ok := d.byID[id]
	return o, ok
}

// All returns the catalog entries in display order.
func (d *Delivery) All() []models.DeliveryOption {
	options := make([]models.DeliveryOption, len(d.options))
	copy(options, d.options)
	return options
}
