package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postforge/store"
	"postforge/structs"
	"postforge/utils"
)

type VariationController struct {
	store *store.Store
}

func NewVariationController(st *store.Store) *VariationController {
	return &VariationController{store: st}
}

func (vc *VariationController) ListVariations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"variations": vc.store.Variations(),
		"selectedId": vc.store.SelectedVariationID(),
	})
}

// UpdateVariation applies a manual edit to a stored variation.
func (vc *VariationController) UpdateVariation(c *gin.Context) {
	variation, ok := vc.store.Variation(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Variation not found"})
		return
	}

	var req structs.UpdateVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	if req.Caption != nil {
		variation.Caption = *req.Caption
	}
	if req.TextOverlay != nil {
		variation.TextOverlay = *req.TextOverlay
	}
	if req.ImageURL != nil {
		variation.ImageURL = *req.ImageURL
	}
	vc.store.UpdateVariation(variation)
	c.JSON(http.StatusOK, variation)
}

func (vc *VariationController) SelectVariation(c *gin.Context) {
	id := c.Param("id")
	if !vc.store.SelectVariation(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Variation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selectedId": id})
}
