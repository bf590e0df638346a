package datasets

import (
	"fmt"

	"healthgrid/internal/domain"
	"healthgrid/internal/ui/columns"
)

// MeasurementColumns lays out health readings
func MeasurementColumns() []columns.Column[domain.Measurement] {
	return []columns.Column[domain.Measurement]{
		{
			Key: "kind", Header: "Kind", Field: "Kind",
			Sortable: true, Filterable: true, Interactive: true,
			Description: "What was measured; enter shows the reading",
		},
		{
			Key: "value", Header: "Value", Field: "Value", Format: Number(2),
			Sortable: true, Align: columns.AlignRight,
		},
		{
			Key: "unit", Header: "Unit", Field: "Unit",
			Sortable: true, Filterable: true,
		},
		{
			Key: "taken_at", Header: "Taken", Format: DateTime,
			Value:    func(m domain.Measurement) any { return optionalTime(m.TakenAt) },
			Sortable: true, Filterable: true,
			Description: "When the reading was taken (UTC)",
		},
		{
			Key: "note", Header: "Note",
			Value:      func(m domain.Measurement) any { return optionalString(m.Note) },
			Filterable: true, Sortable: true,
		},
	}
}

// FoodColumns lays out the food log
func FoodColumns() []columns.Column[domain.FoodEntry] {
	return []columns.Column[domain.FoodEntry]{
		{
			Key: "logged_at", Header: "Logged", Format: DateTime,
			Value:    func(f domain.FoodEntry) any { return optionalTime(f.LoggedAt) },
			Sortable: true, Filterable: true,
		},
		{
			Key: "meal", Header: "Meal", Field: "Meal",
			Sortable: true, Filterable: true,
			Description: "breakfast, lunch, dinner or snack",
		},
		{
			Key: "food", Header: "Food", Field: "Food",
			Sortable: true, Filterable: true, Interactive: true,
		},
		{
			Key: "calories", Header: "kcal", Field: "Calories",
			Sortable: true, Align: columns.AlignRight,
			Description: "Energy in kilocalories",
		},
		{
			Key: "protein_g", Header: "Protein", Field: "ProteinG", Format: Grams,
			Sortable: true, Align: columns.AlignRight,
		},
		{
			Key: "carbs_g", Header: "Carbs", Field: "CarbsG", Format: Grams,
			Sortable: true, Align: columns.AlignRight,
		},
		{
			Key: "fat_g", Header: "Fat", Field: "FatG", Format: Grams,
			Sortable: true, Align: columns.AlignRight,
		},
	}
}

// SupplementColumns lays out the supplement catalog
func SupplementColumns() []columns.Column[domain.Supplement] {
	return []columns.Column[domain.Supplement]{
		{
			Key: "sku", Header: "SKU", Field: "SKU",
			Sortable: true, Width: 8,
		},
		{
			Key: "name", Header: "Name", Field: "Name",
			Sortable: true, Filterable: true, Interactive: true,
		},
		{
			Key: "brand", Header: "Brand", Field: "Brand",
			Sortable: true, Filterable: true,
		},
		{
			Key: "category", Header: "Category", Field: "Category",
			Sortable: true, Filterable: true,
		},
		{
			Key: "price", Header: "Price", Field: "PriceCents", Format: Money,
			Sortable: true, Align: columns.AlignRight,
		},
		{
			Key: "in_stock", Header: "Stock", Field: "InStock", Format: YesNo,
			Sortable: true, Filterable: true, Align: columns.AlignCenter,
		},
		{
			Key: "rating", Header: "Rating", Format: Stars,
			Value:    func(s domain.Supplement) any { return optionalFloat(s.Rating) },
			Sortable: true,
			Description: "Average customer rating out of 5; blank when unrated",
		},
	}
}

// MeasurementSummary describes a reading for the status line
func MeasurementSummary(m domain.Measurement) string {
	s := fmt.Sprintf("%s: %s %s", m.Kind, Number(2)(m.Value), m.Unit)
	if !m.TakenAt.IsZero() {
		s += " at " + DateTime(m.TakenAt)
	}
	if m.Note != "" {
		s += " (" + m.Note + ")"
	}
	return s
}

// FoodSummary describes a food entry for the status line
func FoodSummary(f domain.FoodEntry) string {
	return fmt.Sprintf("%s (%s): %d kcal, P %s / C %s / F %s",
		f.Food, f.Meal, f.Calories, Grams(f.ProteinG), Grams(f.CarbsG), Grams(f.FatG))
}

// SupplementSummary describes a catalog item for the status line
func SupplementSummary(s domain.Supplement) string {
	stock := "in stock"
	if !s.InStock {
		stock = "out of stock"
	}
	return fmt.Sprintf("%s by %s: %s, %s", s.Name, s.Brand, Money(s.PriceCents), stock)
}
