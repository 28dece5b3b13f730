package models

import "time"

// Nutrition holds per-100g nutrition facts for a product.
type Nutrition struct {
	Calories float64 `bson:"calories" json:"calories"` // kcal per 100g
	Protein  float64 `bson:"protein" json:"protein"`   // grams per 100g
	Carbs    float64 `bson:"carbs" json:"carbs"`       // grams per 100g
	Fat      float64 `bson:"fat" json:"fat"`           // grams per 100g
	Fiber    float64 `bson:"fiber" json:"fiber"`       // grams per 100g
}

// Scale converts per-100g facts to the given number of grams.
func (n Nutrition) Scale(grams float64) Nutrition {
	f := grams / 100
	return Nutrition{
		Calories: n.Calories * f,
		Protein:  n.Protein * f,
		Carbs:    n.Carbs * f,
		Fat:      n.Fat * f,
		Fiber:    n.Fiber * f,
	}
}

// Add returns the component-wise sum of two nutrition facts.
func (n Nutrition) Add(other Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
		Fiber:    n.Fiber + other.Fiber,
	}
}

// Product represents a farm-produce catalog item.
type Product struct {
	ID          string    `bson:"id" json:"id"`                   // Unique product identifier
	Name        string    `bson:"name" json:"name"`               // Display name
	Category    string    `bson:"category" json:"category"`       // e.g., "vegetables", "fruits", "dairy"
	Price       float64   `bson:"price" json:"price"`             // Price per unit
	Unit        string    `bson:"unit" json:"unit"`               // Measurement unit (e.g., "kg", "bunch", "dozen")
	UnitGrams   float64   `bson:"unit_grams" json:"unit_grams"`   // Weight of one unit in grams (for nutrition scaling)
	Stock       int       `bson:"stock" json:"stock"`             // Units in stock
	Organic     bool      `bson:"organic" json:"organic"`         // Certified organic flag
	Description string    `bson:"description" json:"description"` // Short marketing text
	ImageURL    string    `bson:"image_url" json:"image_url"`
	Nutrition   Nutrition `bson:"nutrition" json:"nutrition"`
	CarbonGrams float64   `bson:"carbon_grams" json:"carbon_grams"` // CO2e grams per unit, farm to shelf
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
