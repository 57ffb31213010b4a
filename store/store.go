// Package store holds all per-session state: the brand profile, the planned
// posts, the generated variations and the current selection. It is created at
// the composition root, injected into the controllers that need it, and
// discarded with the process. Nothing here is persisted; every write replaces
// a field wholesale, last writer wins.
package store

import (
	"sync"

	"github.com/google/uuid"

	"postforge/models"
)

type Store struct {
	mu sync.RWMutex

	brandProfile *models.BrandProfile

	plannedPosts  []models.PlannedPost
	currentPlanID string

	variations          []models.PostVariation
	selectedVariationID string
}

func New() *Store {
	return &Store{}
}

// BrandProfile returns a copy of the current profile, or nil if no analysis
// has run yet.
func (s *Store) BrandProfile() *models.BrandProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.brandProfile == nil {
		return nil
	}
	p := *s.brandProfile
	return &p
}

func (s *Store) SetBrandProfile(profile models.BrandProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brandProfile = &profile
}

func (s *Store) Plans() []models.PlannedPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plans := make([]models.PlannedPost, len(s.plannedPosts))
	copy(plans, s.plannedPosts)
	return plans
}

func (s *Store) Plan(id string) (models.PlannedPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.plannedPosts {
		if p.ID == id {
			return p, true
		}
	}
	return models.PlannedPost{}, false
}

// AddPlan stores a new planned post, assigning an id when the caller supplied
// none.
func (s *Store) AddPlan(plan models.PlannedPost) models.PlannedPost {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plannedPosts = append(s.plannedPosts, plan)
	return plan
}

func (s *Store) UpdatePlan(plan models.PlannedPost) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.plannedPosts {
		if p.ID == plan.ID {
			s.plannedPosts[i] = plan
			return true
		}
	}
	return false
}

// RemovePlan deletes a planned post; the current-plan marker is cleared if it
// pointed at the removed post.
func (s *Store) RemovePlan(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.plannedPosts {
		if p.ID == id {
			s.plannedPosts = append(s.plannedPosts[:i], s.plannedPosts[i+1:]...)
			if s.currentPlanID == id {
				s.currentPlanID = ""
			}
			return true
		}
	}
	return false
}

func (s *Store) SetCurrentPlan(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPlanID = id
}

func (s *Store) CurrentPlanID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPlanID
}

// SetVariations replaces the generated set wholesale and clears the selection,
// which belongs to the previous set.
func (s *Store) SetVariations(variations []models.PostVariation) {
	copied := make([]models.PostVariation, len(variations))
	copy(copied, variations)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.variations = copied
	s.selectedVariationID = ""
}

func (s *Store) Variations() []models.PostVariation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	variations := make([]models.PostVariation, len(s.variations))
	copy(variations, s.variations)
	return variations
}

func (s *Store) Variation(id string) (models.PostVariation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.variations {
		if v.ID == id {
			return v, true
		}
	}
	return models.PostVariation{}, false
}

func (s *Store) UpdateVariation(variation models.PostVariation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.variations {
		if v.ID == variation.ID {
			s.variations[i] = variation
			return true
		}
	}
	return false
}

// SelectVariation marks at most one variation as selected. Selecting an
// unknown id reports false and leaves the selection unchanged.
func (s *Store) SelectVariation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.variations {
		if v.ID == id {
			s.selectedVariationID = id
			return true
		}
	}
	return false
}

func (s *Store) SelectedVariationID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedVariationID
}
