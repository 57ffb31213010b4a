package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"postforge/models"
)

// IteratePost applies a targeted, user-directed rewrite to a caption. Like
// generation, there is no safe default for fabricated copy: an unparseable
// reply is ErrParse.
func IteratePost(ctx context.Context, variationID, caption, feedbackType, userFeedback string, profile *models.BrandProfile) (models.IterationResult, error) {
	if gateway == nil {
		return models.IterationResult{}, errors.New("content service not initialized")
	}

	profileJSON := "{}"
	if profile != nil {
		if b, err := json.MarshalIndent(profile, "", "  "); err == nil {
			profileJSON = string(b)
		}
	}

	systemPrompt := fmt.Sprintf(`You are a social media content editor. Improve the post based on user feedback while maintaining brand consistency.

Brand Profile:
%s

Feedback Type: %s
- "tone": Adjust the tone/voice
- "wording": Improve specific wording
- "cta": Strengthen the call-to-action
- "shorter": Make it more concise
- "longer": Add more detail
- "custom": Apply custom feedback

Respond in JSON:
{
  "improvedCaption": "the new caption",
  "improvedTextOverlay": "NEW OVERLAY TEXT",
  "changes": ["list of changes made"],
  "qualityScore": 90
}`, profileJSON, feedbackType)

	userPrompt := fmt.Sprintf(`Improve this post based on the feedback:

Original Caption: %s
Feedback Type: %s
User Feedback: %s

Make targeted improvements based on the feedback type.`,
		caption, feedbackType, orDefault(userFeedback, "General improvement requested"))

	reply, err := gateway.Complete(ctx, systemPrompt, userPrompt, 0.7)
	if err != nil {
		return models.IterationResult{}, err
	}

	var result models.IterationResult
	raw, perr := ExtractJSON(reply)
	if perr == nil {
		perr = json.Unmarshal([]byte(raw), &result)
	}
	if perr == nil && result.ImprovedCaption == "" {
		perr = errors.New("iteration reply contained no improved caption")
	}
	if perr != nil {
		logger.Error().Err(perr).Str("operation", "iterate-post").Str("variation", variationID).Msg("model reply did not yield a usable rewrite")
		return models.IterationResult{}, ErrParse
	}

	result.QualityScore = clampScore(result.QualityScore)
	return result, nil
}
