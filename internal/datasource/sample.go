package datasource

import (
	"time"

	"healthgrid/internal/domain"
)

// Sample returns the built-in demo bundle shown when no datasets are configured
func Sample() domain.Bundle {
	day := func(d, h, m int) time.Time {
		return time.Date(2024, time.March, d, h, m, 0, 0, time.UTC)
	}

	return domain.Bundle{
		Measurements: []domain.Measurement{
			{ID: "m1", Kind: "weight", Value: 72.4, Unit: "kg", TakenAt: day(1, 7, 30)},
			{ID: "m2", Kind: "heart rate", Value: 61, Unit: "bpm", TakenAt: day(1, 7, 32), Note: "resting"},
			{ID: "m3", Kind: "sleep", Value: 7.5, Unit: "h", TakenAt: day(2, 6, 45)},
			{ID: "m4", Kind: "weight", Value: 72.1, Unit: "kg", TakenAt: day(3, 7, 25)},
			{ID: "m5", Kind: "blood pressure", Value: 118, Unit: "mmHg", TakenAt: day(3, 8, 0), Note: "systolic"},
			{ID: "m6", Kind: "steps", Value: 10423, Unit: "steps", TakenAt: day(3, 22, 0)},
			{ID: "m7", Kind: "heart rate", Value: 58, Unit: "bpm", TakenAt: day(4, 7, 10), Note: "after run"},
			{ID: "m8", Kind: "sleep", Value: 6.25, Unit: "h", TakenAt: day(5, 6, 30), Note: "woke early"},
			{ID: "m9", Kind: "weight", Value: 71.9, Unit: "kg", TakenAt: day(6, 7, 40)},
			{ID: "m10", Kind: "steps", Value: 8120, Unit: "steps", TakenAt: day(6, 21, 30)},
			{ID: "m11", Kind: "glucose", Value: 5.2, Unit: "mmol/L", TakenAt: day(7, 9, 0), Note: "fasting"},
			{ID: "m12", Kind: "weight", Value: 71.6, Unit: "kg", TakenAt: day(8, 7, 35)},
		},
		Food: []domain.FoodEntry{
			{ID: "f1", Meal: "breakfast", Food: "Oatmeal with blueberries", Calories: 310, ProteinG: 9, CarbsG: 54, FatG: 6, LoggedAt: day(1, 8, 0)},
			{ID: "f2", Meal: "lunch", Food: "Chicken salad", Calories: 450, ProteinG: 38, CarbsG: 12, FatG: 26, LoggedAt: day(1, 12, 30)},
			{ID: "f3", Meal: "snack", Food: "Greek yogurt", Calories: 150, ProteinG: 15, CarbsG: 8, FatG: 5, LoggedAt: day(1, 16, 0)},
			{ID: "f4", Meal: "dinner", Food: "Salmon with rice", Calories: 640, ProteinG: 42, CarbsG: 58, FatG: 22, LoggedAt: day(1, 19, 15)},
			{ID: "f5", Meal: "breakfast", Food: "Scrambled eggs", Calories: 280, ProteinG: 19, CarbsG: 2, FatG: 21, LoggedAt: day(2, 7, 50)},
			{ID: "f6", Meal: "lunch", Food: "Lentil soup", Calories: 360, ProteinG: 18, CarbsG: 52, FatG: 8, LoggedAt: day(2, 13, 0)},
			{ID: "f7", Meal: "snack", Food: "Apple", Calories: 95, CarbsG: 25, LoggedAt: day(2, 15, 45)},
			{ID: "f8", Meal: "dinner", Food: "Tofu stir fry", Calories: 520, ProteinG: 28, CarbsG: 44, FatG: 24, LoggedAt: day(2, 19, 30)},
			{ID: "f9", Meal: "breakfast", Food: "Banana smoothie", Calories: 240, ProteinG: 6, CarbsG: 48, FatG: 3},
		},
		Supplements: []domain.Supplement{
			{SKU: "VD-1000", Name: "Vitamin D3 1000 IU", Brand: "Sunward", Category: "vitamins", PriceCents: 899, InStock: true, Rating: 4.6},
			{SKU: "MG-200", Name: "Magnesium glycinate", Brand: "Calmwell", Category: "minerals", PriceCents: 1499, InStock: true, Rating: 4.4},
			{SKU: "OM-3", Name: "Omega-3 fish oil", Brand: "Northsea", Category: "oils", PriceCents: 2199, InStock: false, Rating: 4.1},
			{SKU: "ZN-25", Name: "Zinc picolinate", Brand: "Calmwell", Category: "minerals", PriceCents: 799, InStock: true},
			{SKU: "B12-500", Name: "Vitamin B12", Brand: "Sunward", Category: "vitamins", PriceCents: 1099, InStock: true, Rating: 3.9},
			{SKU: "CR-5", Name: "Creatine monohydrate", Brand: "Ironleaf", Category: "performance", PriceCents: 2499, InStock: true, Rating: 4.8},
			{SKU: "PRO-W", Name: "Whey protein", Brand: "Ironleaf", Category: "performance", PriceCents: 3999, InStock: false, Rating: 4.2},
		},
	}
}

// SampleDatasets names one dataset per kind of the sample bundle
func SampleDatasets(pageSize int) []domain.Dataset {
	return []domain.Dataset{
		{Name: "Measurements", Kind: domain.KindMeasurements, PageSize: pageSize},
		{Name: "Food", Kind: domain.KindFood, PageSize: pageSize},
		{Name: "Supplements", Kind: domain.KindSupplements, PageSize: pageSize},
	}
}
