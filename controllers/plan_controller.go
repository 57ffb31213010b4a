package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postforge/models"
	"postforge/store"
	"postforge/structs"
	"postforge/utils"
)

type PlanController struct {
	store *store.Store
}

func NewPlanController(st *store.Store) *PlanController {
	return &PlanController{store: st}
}

func (pc *PlanController) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": pc.store.Plans()})
}

func (pc *PlanController) CreatePlan(c *gin.Context) {
	var req structs.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	plan := pc.store.AddPlan(models.PlannedPost{
		Title:              req.Title,
		Intent:             req.Intent,
		Platform:           req.Platform,
		Details:            req.Details,
		Tone:               req.Tone,
		Date:               req.Date,
		AdditionalElements: req.AdditionalElements,
	})
	c.JSON(http.StatusCreated, plan)
}

func (pc *PlanController) UpdatePlan(c *gin.Context) {
	plan, ok := pc.store.Plan(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	var req structs.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return
	}

	applyPlanUpdates(&plan, req)
	pc.store.UpdatePlan(plan)
	c.JSON(http.StatusOK, plan)
}

func (pc *PlanController) DeletePlan(c *gin.Context) {
	if !pc.store.RemovePlan(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}

func applyPlanUpdates(plan *models.PlannedPost, req structs.UpdatePlanRequest) {
	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Intent != nil {
		plan.Intent = *req.Intent
	}
	if req.Platform != nil {
		plan.Platform = *req.Platform
	}
	if req.Details != nil {
		plan.Details = *req.Details
	}
	if req.Tone != nil {
		plan.Tone = *req.Tone
	}
	if req.Date != nil {
		plan.Date = *req.Date
	}
	if req.AdditionalElements != nil {
		plan.AdditionalElements = *req.AdditionalElements
	}
}
