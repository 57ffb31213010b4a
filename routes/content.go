package routes

import (
	"github.com/gin-gonic/gin"

	"postforge/controllers"
)

// SetupContentRoutes registers the model-backed content operations.
func SetupContentRoutes(router *gin.RouterGroup, brand *controllers.BrandController) {
	router.POST("/analyze-brand", brand.AnalyzeBrand)
	router.POST("/generate-posts", controllers.GeneratePosts)
	router.POST("/feedback-loop", controllers.RunFeedbackLoop)
	router.POST("/iterate-post", controllers.IteratePost)
	router.POST("/generate-image", controllers.GenerateImage)
}
