package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"postforge/models"
	"postforge/services"
	"postforge/store"
	"postforge/structs"
	"postforge/utils"
)

type WorkflowController struct {
	store *store.Store
}

func NewWorkflowController(st *store.Store) *WorkflowController {
	return &WorkflowController{store: st}
}

// Generate runs the full pipeline for a stored plan: generate three variations
// per target platform, review each platform's first variation and swap in the
// improved caption when the review calls for one. The platforms are processed
// sequentially; the concatenated result becomes the session's variation set.
func (wc *WorkflowController) Generate(c *gin.Context) {
	var req structs.WorkflowGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	plan, ok := wc.store.Plan(req.PlanID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	profile := wc.store.BrandProfile()

	var all []models.PostVariation
	reviews := make(map[string]models.FeedbackResult)
	for _, platform := range targetPlatforms(plan.Platform) {
		batch, err := services.GeneratePosts(c.Request.Context(), plan, profile, platform, req.FeedbackHistory)
		if err != nil {
			respondServiceError(c, err, "Failed to generate posts. Please try again.")
			return
		}

		review, err := services.EvaluatePost(c.Request.Context(), batch[0], profile, nil)
		if err != nil {
			respondServiceError(c, err, "An error occurred processing your request. Please try again.")
			return
		}
		if review.NeedsImprovement && strings.TrimSpace(review.ImprovedCaption) != "" {
			batch[0].Caption = review.ImprovedCaption
			if review.ImprovedTextOverlay != "" {
				batch[0].TextOverlay = review.ImprovedTextOverlay
			}
			batch[0].QualityScore = review.OverallScore
		}
		reviews[batch[0].ID] = review
		all = append(all, batch...)
	}

	wc.store.SetCurrentPlan(plan.ID)
	wc.store.SetVariations(all)
	c.JSON(http.StatusOK, gin.H{"variations": all, "reviews": reviews})
}
