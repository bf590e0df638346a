package domain

import "time"

// DatasetKind names the record type a dataset holds
type DatasetKind string

const (
	KindMeasurements DatasetKind = "measurements"
	KindFood         DatasetKind = "food"
	KindSupplements  DatasetKind = "supplements"
)

// Kinds lists every dataset kind in display order
var Kinds = []DatasetKind{KindMeasurements, KindFood, KindSupplements}

// Valid reports whether k is a known dataset kind
func (k DatasetKind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Measurement is one health reading (weight, heart rate, sleep...)
type Measurement struct {
	ID      string    `json:"id" toml:"id" yaml:"id"`
	Kind    string    `json:"kind" toml:"kind" yaml:"kind"`
	Value   float64   `json:"value" toml:"value" yaml:"value"`
	Unit    string    `json:"unit" toml:"unit" yaml:"unit"`
	TakenAt time.Time `json:"taken_at" toml:"taken_at" yaml:"taken_at"`
	Note    string    `json:"note,omitempty" toml:"note,omitempty" yaml:"note,omitempty"`
}

// FoodEntry is one logged food item
type FoodEntry struct {
	ID       string    `json:"id" toml:"id" yaml:"id"`
	Meal     string    `json:"meal" toml:"meal" yaml:"meal"`
	Food     string    `json:"food" toml:"food" yaml:"food"`
	Calories int       `json:"calories" toml:"calories" yaml:"calories"`
	ProteinG float64   `json:"protein_g" toml:"protein_g" yaml:"protein_g"`
	CarbsG   float64   `json:"carbs_g" toml:"carbs_g" yaml:"carbs_g"`
	FatG     float64   `json:"fat_g" toml:"fat_g" yaml:"fat_g"`
	LoggedAt time.Time `json:"logged_at" toml:"logged_at" yaml:"logged_at"`
}

// Supplement is one catalog product
type Supplement struct {
	SKU        string  `json:"sku" toml:"sku" yaml:"sku"`
	Name       string  `json:"name" toml:"name" yaml:"name"`
	Brand      string  `json:"brand" toml:"brand" yaml:"brand"`
	Category   string  `json:"category" toml:"category" yaml:"category"`
	PriceCents int     `json:"price_cents" toml:"price_cents" yaml:"price_cents"`
	InStock    bool    `json:"in_stock" toml:"in_stock" yaml:"in_stock"`
	Rating     float64 `json:"rating" toml:"rating" yaml:"rating"`
}

// Bundle groups every record type; a dataset file may fill any subset
type Bundle struct {
	Measurements []Measurement `json:"measurements,omitempty" toml:"measurements,omitempty" yaml:"measurements,omitempty"`
	Food         []FoodEntry   `json:"food,omitempty" toml:"food,omitempty" yaml:"food,omitempty"`
	Supplements  []Supplement  `json:"supplements,omitempty" toml:"supplements,omitempty" yaml:"supplements,omitempty"`
}

// Len returns the total number of records
func (b Bundle) Len() int {
	return len(b.Measurements) + len(b.Food) + len(b.Supplements)
}

// Merge appends the records of other
func (b *Bundle) Merge(other Bundle) {
	b.Measurements = append(b.Measurements, other.Measurements...)
	b.Food = append(b.Food, other.Food...)
	b.Supplements = append(b.Supplements, other.Supplements...)
}

// Dataset is a named source of records shown as one grid
type Dataset struct {
	Name     string
	Kind     DatasetKind
	Path     string
	PageSize int
}
