package structs

// Session-state requests: planned-post CRUD, variation edits and the workflow
// trigger.

type CreatePlanRequest struct {
	Title              string `json:"title" binding:"required,max=500"`
	Intent             string `json:"intent" binding:"required,oneof=announcement event partnership achievement"`
	Platform           string `json:"platform" binding:"required,oneof=linkedin instagram both"`
	Details            string `json:"details" binding:"omitempty,max=5000"`
	Tone               string `json:"tone" binding:"omitempty,max=200"`
	Date               string `json:"date" binding:"omitempty,max=50"`
	AdditionalElements string `json:"additionalElements" binding:"omitempty,max=2000"`
}

type UpdatePlanRequest struct {
	Title              *string `json:"title" binding:"omitempty,max=500"`
	Intent             *string `json:"intent" binding:"omitempty,oneof=announcement event partnership achievement"`
	Platform           *string `json:"platform" binding:"omitempty,oneof=linkedin instagram both"`
	Details            *string `json:"details" binding:"omitempty,max=5000"`
	Tone               *string `json:"tone" binding:"omitempty,max=200"`
	Date               *string `json:"date" binding:"omitempty,max=50"`
	AdditionalElements *string `json:"additionalElements" binding:"omitempty,max=2000"`
}

type UpdateVariationRequest struct {
	Caption     *string `json:"caption" binding:"omitempty,max=5000"`
	TextOverlay *string `json:"textOverlay" binding:"omitempty,max=200"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,max=2000"`
}

type WorkflowGenerateRequest struct {
	PlanID          string   `json:"planId" binding:"required,max=100"`
	FeedbackHistory []string `json:"feedbackHistory" binding:"omitempty,max=10,dive,max=2000"`
}
