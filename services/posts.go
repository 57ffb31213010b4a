package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"postforge/models"
)

const linkedInGuidance = "LinkedIn posts should be professional, can be longer (up to 3000 chars), use hashtags sparingly, focus on value and thought leadership."

const instagramGuidance = "Instagram posts should be punchy, engaging, use more emojis, include relevant hashtags (5-10), be mobile-optimized."

const variationCount = 3

// GeneratePosts asks the model for exactly three caption variations for one
// platform. There is no safe default for fabricated copy, so a reply that does
// not parse into three usable variations is ErrParse.
func GeneratePosts(ctx context.Context, plan models.PlannedPost, profile *models.BrandProfile, platform string, feedbackHistory []string) ([]models.PostVariation, error) {
	if gateway == nil {
		return nil, errors.New("content service not initialized")
	}

	systemPrompt := buildGenerationSystemPrompt(profile, platform, feedbackHistory)
	userPrompt := fmt.Sprintf(`Create 3 post variations for:
Title: %s
Intent: %s
Details: %s
Tone: %s
Date: %s
Additional Elements: %s

Make each variation distinct in approach while maintaining brand consistency.`,
		plan.Title, plan.Intent,
		orDefault(plan.Details, "No additional details"),
		orDefault(plan.Tone, "Match brand voice"),
		orDefault(plan.Date, "Flexible"),
		orDefault(plan.AdditionalElements, "None specified"))

	reply, err := gateway.Complete(ctx, systemPrompt, userPrompt, 0.8)
	if err != nil {
		return nil, err
	}

	variations, err := parseVariations(reply, platform)
	if err != nil {
		logger.Error().Err(err).Str("operation", "generate-posts").Msg("model reply did not yield usable variations")
		return nil, ErrParse
	}
	return variations, nil
}

func buildGenerationSystemPrompt(profile *models.BrandProfile, platform string, feedbackHistory []string) string {
	voice := json.RawMessage(`{"tone":"Professional"}`)
	visual := json.RawMessage(`{}`)
	themes := json.RawMessage(`[]`)
	if profile != nil {
		if b, err := json.Marshal(profile.Voice); err == nil {
			voice = b
		}
		if b, err := json.Marshal(profile.VisualIdentity); err == nil {
			visual = b
		}
		if b, err := json.Marshal(profile.MessagingPatterns.Themes); err == nil {
			themes = b
		}
	}

	var sb strings.Builder
	sb.WriteString("You are an expert social media content creator. Generate multiple post variations based on the brand profile and post requirements.\n\n")
	fmt.Fprintf(&sb, "Brand Profile:\n- Voice: %s\n- Visual Style: %s\n- Themes: %s\n\n", voice, visual, themes)
	fmt.Fprintf(&sb, "Platform: %s\n", platform)
	switch platform {
	case models.PlatformLinkedIn:
		sb.WriteString(linkedInGuidance + "\n")
	case models.PlatformInstagram:
		sb.WriteString(instagramGuidance + "\n")
	}
	if len(feedbackHistory) > 0 {
		if b, err := json.Marshal(feedbackHistory); err == nil {
			fmt.Fprintf(&sb, "\nPrevious feedback to incorporate: %s\n", b)
		}
	}
	sb.WriteString(`
Generate 3 distinct variations. For each, provide:
1. Caption (the full post text)
2. Image description (for AI image generation)
3. Text overlay (short, punchy text to overlay on the image - max 6 words)
4. Quality score estimate (0-100)

Respond in JSON:
{
  "variations": [
    {
      "id": "v1",
      "caption": "full post text here",
      "imageDescription": "detailed description for image generation",
      "textOverlay": "BOLD SHORT TEXT",
      "hashtags": ["tag1", "tag2"],
      "qualityScore": 85,
      "strengths": ["strength1", "strength2"],
      "improvements": ["potential improvement"]
    }
  ]
}`)
	return sb.String()
}

// parseVariations validates the model's structured output before it is used.
// A shape mismatch is a parse failure, not something to pass through.
func parseVariations(reply, platform string) ([]models.PostVariation, error) {
	raw, err := ExtractJSON(reply)
	if err != nil {
		return nil, err
	}

	var result struct {
		Variations []models.PostVariation `json:"variations"`
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, err
	}
	if len(result.Variations) != variationCount {
		return nil, fmt.Errorf("expected %d variations, got %d", variationCount, len(result.Variations))
	}

	for i := range result.Variations {
		v := &result.Variations[i]
		if strings.TrimSpace(v.Caption) == "" {
			return nil, fmt.Errorf("variation %d has an empty caption", i+1)
		}
		v.Platform = platform
		if v.ID == "" || v.ID == fmt.Sprintf("v%d", i+1) {
			v.ID = uuid.NewString()
		}
		v.QualityScore = clampScore(v.QualityScore)
		if len(v.Hashtags) > 30 {
			v.Hashtags = v.Hashtags[:30]
		}
	}
	return result.Variations, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
