package models

// StyleRequest is the advisor form payload.
type StyleRequest struct {
	Description string `json:"description" binding:"required"`
	Gender      string `json:"gender,omitempty"`
	HairType    string `json:"hairType,omitempty"`
	FaceShape   string `json:"faceShape,omitempty"`
	Occasion    string `json:"occasion,omitempty"`
}

// StyleSuggestion is the advisor reply. Fallback is set when the text is the
// static message rather than a model answer.
type StyleSuggestion struct {
	Suggestion string `json:"suggestion"`
	Fallback   bool   `json:"fallback"`
}

// EstimateRequest asks for a price estimate for a service not in the catalog.
type EstimateRequest struct {
	Description string `json:"description" binding:"required"`
}

// ServiceEstimate is the structured answer for a custom service request.
type ServiceEstimate struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	EstimatedDuration string  `json:"estimatedDuration"`
	Description       string  `json:"description"`
}
