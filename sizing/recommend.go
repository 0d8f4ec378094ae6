// Package sizing implements the storefront's size recommendation. It is a
// fixed lookup/adjustment table over chest measurement; the "AI-powered"
// label in storefront copy is presentational framing only, and no learning
// behavior belongs here.
package sizing

import "github.com/Velora-Ecommerce/velora-storefront-gateway/models"

// Garment size ladder, smallest to largest.
var sizeLadder = []string{"XS", "S", "M", "L", "XL", "XXL"}

type bracket struct {
	maxChest   float64 // inclusive upper bound, inches
	size       string
	confidence int // per-bracket base, 75-95
}

// Male chest breakpoints. The female table is shifted two inches tighter.
var maleBrackets = []bracket{
	{33, "XS", 80},
	{37, "S", 88},
	{41, "M", 92},
	{45, "L", 90},
	{49, "XL", 85},
	{0, "XXL", 75}, // open-ended top bracket
}

var femaleBrackets = []bracket{
	{31, "XS", 80},
	{35, "S", 88},
	{39, "M", 92},
	{43, "L", 90},
	{47, "XL", 85},
	{0, "XXL", 75},
}

const (
	minConfidence = 60
	maxConfidence = 100
)

// Recommend maps body measurements to a garment size plus a confidence
// score. All numeric inputs must be positive; otherwise no recommendation
// is produced and ok is false.
//
// Gender "other" takes the male table. There is no dedicated third table;
// adding one is a product decision, not an engineering one.
func Recommend(req models.SizeRecommendationRequest) (models.SizeRecommendation, bool) {
	if req.Chest <= 0 || req.Waist <= 0 || req.Height <= 0 || req.Weight <= 0 || req.Age <= 0 {
		return models.SizeRecommendation{}, false
	}

	brackets := maleBrackets
	if req.Gender == "female" {
		brackets = femaleBrackets
	}

	size, confidence := lookup(brackets, req.Chest)

	ratio := req.Chest / req.Waist
	build := "stocky"
	switch {
	case ratio > 1.1 && ratio < 1.3:
		build = "athletic"
		confidence += 5
	case ratio > 0.9 && ratio <= 1.1:
		build = "average"
		confidence += 3
	default:
		confidence -= 5
	}

	note := ""
	if req.Age > 50 {
		confidence -= 10
		if bumped, ok := sizeUp(size); ok {
			size = bumped
			note = "sized up for a relaxed fit"
		}
	}

	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return models.SizeRecommendation{
		Size:       size,
		Confidence: confidence,
		BuildType:  build,
		Note:       note,
	}, true
}

func lookup(brackets []bracket, chest float64) (string, int) {
	for _, b := range brackets {
		if b.maxChest > 0 && chest <= b.maxChest {
			return b.size, b.confidence
		}
	}
	last := brackets[len(brackets)-1]
	return last.size, last.confidence
}

// sizeUp returns the next size on the ladder, or ok=false at the top.
func sizeUp(size string) (string, bool) {
	for i, s := range sizeLadder {
		if s == size {
			if i == len(sizeLadder)-1 {
				return size, false
			}
			return sizeLadder[i+1], true
		}
	}
	return size, false
}
