package models

// FeedbackCriterion is one weighted axis of the quality review. Weights of a
// criteria set sum to 1.0.
type FeedbackCriterion struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// DefaultCriteria returns the four standard review criteria, equally weighted.
func DefaultCriteria() []FeedbackCriterion {
	return []FeedbackCriterion{
		{ID: "brand", Name: "Brand Consistency", Weight: 0.25},
		{ID: "clarity", Name: "Message Clarity", Weight: 0.25},
		{ID: "cta", Name: "CTA Effectiveness", Weight: 0.25},
		{ID: "readability", Name: "Text Readability", Weight: 0.25},
	}
}

// CriterionEvaluation is the review outcome for a single criterion.
type CriterionEvaluation struct {
	Criterion  string `json:"criterion"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	Suggestion string `json:"suggestion,omitempty"`
}

// FeedbackResult aggregates a full quality review of one variation.
type FeedbackResult struct {
	Evaluations         []CriterionEvaluation `json:"evaluations"`
	OverallScore        int                   `json:"overallScore"`
	NeedsImprovement    bool                  `json:"needsImprovement"`
	ImprovedCaption     string                `json:"improvedCaption,omitempty"`
	ImprovedTextOverlay string                `json:"improvedTextOverlay,omitempty"`
	Summary             string                `json:"summary"`
}
