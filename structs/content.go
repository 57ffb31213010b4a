package structs

import "postforge/models"

// Request bodies for the four content operations plus image generation. The
// binding tags are the input boundary: nothing partially valid flows past them.

type AnalyzeBrandRequest struct {
	CompanyName   string   `json:"companyName" binding:"required,max=200"`
	Website       string   `json:"website" binding:"omitempty,max=500"`
	Description   string   `json:"description" binding:"omitempty,max=5000"`
	ExistingPosts []string `json:"existingPosts" binding:"omitempty,max=10,dive,max=3000"`
}

type PostPlanInput struct {
	Title              string `json:"title" binding:"required,max=500"`
	Intent             string `json:"intent" binding:"required,oneof=announcement event partnership achievement"`
	Details            string `json:"details" binding:"omitempty,max=5000"`
	Tone               string `json:"tone" binding:"omitempty,max=200"`
	Date               string `json:"date" binding:"omitempty,max=50"`
	AdditionalElements string `json:"additionalElements" binding:"omitempty,max=2000"`
}

func (p PostPlanInput) ToModel() models.PlannedPost {
	return models.PlannedPost{
		Title:              p.Title,
		Intent:             p.Intent,
		Details:            p.Details,
		Tone:               p.Tone,
		Date:               p.Date,
		AdditionalElements: p.AdditionalElements,
	}
}

type GeneratePostsRequest struct {
	PostPlan        PostPlanInput        `json:"postPlan" binding:"required"`
	BrandProfile    *models.BrandProfile `json:"brandProfile" binding:"omitempty"`
	Platform        string               `json:"platform" binding:"required,oneof=linkedin instagram both"`
	FeedbackHistory []string             `json:"feedbackHistory" binding:"omitempty,max=10,dive,max=2000"`
}

type VariationInput struct {
	ID               string   `json:"id" binding:"omitempty,max=100"`
	Caption          string   `json:"caption" binding:"required,max=5000"`
	TextOverlay      string   `json:"textOverlay" binding:"omitempty,max=200"`
	ImageDescription string   `json:"imageDescription" binding:"omitempty,max=2000"`
	Platform         string   `json:"platform" binding:"omitempty,oneof=linkedin instagram"`
	Hashtags         []string `json:"hashtags" binding:"omitempty,max=30,dive,max=100"`
}

func (v VariationInput) ToModel() models.PostVariation {
	return models.PostVariation{
		ID:               v.ID,
		Caption:          v.Caption,
		TextOverlay:      v.TextOverlay,
		ImageDescription: v.ImageDescription,
		Platform:         v.Platform,
		Hashtags:         v.Hashtags,
	}
}

type CriterionInput struct {
	ID     string  `json:"id" binding:"required,max=100"`
	Name   string  `json:"name" binding:"required,max=100"`
	Weight float64 `json:"weight" binding:"gte=0,lte=1"`
}

type FeedbackLoopRequest struct {
	Variation    VariationInput       `json:"variation" binding:"required"`
	BrandProfile *models.BrandProfile `json:"brandProfile" binding:"omitempty"`
	Criteria     []CriterionInput     `json:"criteria" binding:"omitempty,max=10,dive"`
}

func (r FeedbackLoopRequest) CriteriaModels() []models.FeedbackCriterion {
	if len(r.Criteria) == 0 {
		return nil
	}
	criteria := make([]models.FeedbackCriterion, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		criteria = append(criteria, models.FeedbackCriterion{ID: c.ID, Name: c.Name, Weight: c.Weight})
	}
	return criteria
}

type IteratePostRequest struct {
	VariationID  string               `json:"variationId" binding:"required,max=100"`
	Caption      string               `json:"caption" binding:"required,max=5000"`
	UserFeedback string               `json:"userFeedback" binding:"omitempty,max=2000"`
	BrandProfile *models.BrandProfile `json:"brandProfile" binding:"omitempty"`
	FeedbackType string               `json:"feedbackType" binding:"required,oneof=tone wording cta shorter longer custom"`
}

type GenerateImageRequest struct {
	Prompt      string   `json:"prompt" binding:"required,max=2000"`
	TextOverlay string   `json:"textOverlay" binding:"omitempty,max=200"`
	BrandColors []string `json:"brandColors" binding:"omitempty,max=8,dive,hexcolor"`
	AspectRatio string   `json:"aspectRatio" binding:"omitempty,oneof=square story"`
}
