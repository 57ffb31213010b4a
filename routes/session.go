package routes

import (
	"github.com/gin-gonic/gin"

	"postforge/controllers"
)

// SetupSessionRoutes registers the session-state endpoints: planned-post CRUD,
// variation edits/selection and the generation workflow.
func SetupSessionRoutes(router *gin.RouterGroup, plans *controllers.PlanController, variations *controllers.VariationController, workflow *controllers.WorkflowController) {
	router.GET("/plans", plans.ListPlans)
	router.POST("/plans", plans.CreatePlan)
	router.PUT("/plans/:id", plans.UpdatePlan)
	router.DELETE("/plans/:id", plans.DeletePlan)

	router.GET("/variations", variations.ListVariations)
	router.PUT("/variations/:id", variations.UpdateVariation)
	router.POST("/variations/:id/select", variations.SelectVariation)

	router.POST("/workflow/generate", workflow.Generate)
}
