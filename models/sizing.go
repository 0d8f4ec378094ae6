package models

// SizeRecommendationRequest carries body measurements in imperial units.
// Every numeric field must be positive for a recommendation to be produced.
type SizeRecommendationRequest struct {
	Chest  float64 `json:"chest" binding:"required,gt=0"`
	Waist  float64 `json:"waist" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Age    int     `json:"age" binding:"required,gt=0"`
	Gender string  `json:"gender" binding:"required,oneof=male female other"`
}

// SizeRecommendation is a deterministic rule-table result, not a model
// prediction. Confidence is clamped to [60,100].
type SizeRecommendation struct {
	Size       string `json:"size"`
	Confidence int    `json:"confidence"`
	BuildType  string `json:"buildType,omitempty"`
	Note       string `json:"note,omitempty"`
}
