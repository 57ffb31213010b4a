package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postforge/services"
	"postforge/store"
	"postforge/structs"
	"postforge/utils"
)

type BrandController struct {
	store *store.Store
}

func NewBrandController(st *store.Store) *BrandController {
	return &BrandController{store: st}
}

// AnalyzeBrand runs the brand analysis and makes the result the session's
// current profile.
func (bc *BrandController) AnalyzeBrand(c *gin.Context) {
	var req structs.AnalyzeBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	profile, err := services.AnalyzeBrand(c.Request.Context(), req.CompanyName, req.Website, req.Description, req.ExistingPosts)
	if err != nil {
		respondServiceError(c, err, "An error occurred processing your request. Please try again.")
		return
	}

	bc.store.SetBrandProfile(profile)
	c.JSON(http.StatusOK, profile)
}
