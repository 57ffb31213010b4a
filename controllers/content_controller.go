package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postforge/models"
	"postforge/services"
	"postforge/structs"
	"postforge/utils"
)

// GeneratePosts produces three caption variations per target platform. A
// "both" plan yields the LinkedIn batch followed by the Instagram batch,
// generated sequentially.
func GeneratePosts(c *gin.Context) {
	var req structs.GeneratePostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	var variations []models.PostVariation
	for _, platform := range targetPlatforms(req.Platform) {
		batch, err := services.GeneratePosts(c.Request.Context(), req.PostPlan.ToModel(), req.BrandProfile, platform, req.FeedbackHistory)
		if err != nil {
			respondServiceError(c, err, "Failed to generate posts. Please try again.")
			return
		}
		variations = append(variations, batch...)
	}

	c.JSON(http.StatusOK, gin.H{"variations": variations})
}

// RunFeedbackLoop evaluates one variation against the weighted criteria.
func RunFeedbackLoop(c *gin.Context) {
	var req structs.FeedbackLoopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	result, err := services.EvaluatePost(c.Request.Context(), req.Variation.ToModel(), req.BrandProfile, req.CriteriaModels())
	if err != nil {
		respondServiceError(c, err, "An error occurred processing your request. Please try again.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// IteratePost rewrites a caption according to the requested feedback type.
func IteratePost(c *gin.Context) {
	var req structs.IteratePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	result, err := services.IteratePost(c.Request.Context(), req.VariationID, req.Caption, req.FeedbackType, req.UserFeedback, req.BrandProfile)
	if err != nil {
		respondServiceError(c, err, "Failed to process feedback. Please try again.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateImage requests a post image from the gateway.
func GenerateImage(c *gin.Context) {
	var req structs.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	image, err := services.GenerateImage(c.Request.Context(), req.Prompt, req.TextOverlay, req.BrandColors, req.AspectRatio)
	if err != nil {
		respondServiceError(c, err, "An error occurred processing your request. Please try again.")
		return
	}

	c.JSON(http.StatusOK, image)
}

func targetPlatforms(platform string) []string {
	if platform == models.PlatformBoth {
		return []string{models.PlatformLinkedIn, models.PlatformInstagram}
	}
	return []string{platform}
}
