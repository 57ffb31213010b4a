package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"postforge/models"
)

const brandAnalysisSystemPrompt = `You are a brand analyst AI. Analyze the provided company information and infer:
1. Brand Voice: Tone (formal/casual/playful), emoji usage tendency, CTA style, language patterns
2. Visual Identity: Suggested color palette (provide 4 hex colors), layout preferences, typography style
3. Messaging Patterns: Key themes, value propositions, audience targeting

Respond in JSON format:
{
  "voice": {
    "tone": "string describing tone",
    "emojiUsage": "none|minimal|moderate|heavy",
    "ctaStyle": "string describing CTA approach",
    "languagePatterns": ["array of patterns"]
  },
  "visualIdentity": {
    "colors": ["#hex1", "#hex2", "#hex3", "#hex4"],
    "layoutStyle": "string",
    "typographyStyle": "string"
  },
  "messagingPatterns": {
    "themes": ["array of themes"],
    "valueProps": ["array of value propositions"],
    "targetAudience": "string"
  },
  "summary": "2-3 sentence summary of the brand profile"
}`

// AnalyzeBrand infers a brand profile from the company details. A reply that
// does not parse degrades to a neutral default profile rather than failing:
// the caller can always proceed with generation.
func AnalyzeBrand(ctx context.Context, companyName, website, description string, existingPosts []string) (models.BrandProfile, error) {
	if gateway == nil {
		return models.BrandProfile{}, errors.New("content service not initialized")
	}

	userPrompt := fmt.Sprintf(`Analyze this brand:
Company Name: %s
Website: %s
Description: %s
Existing Posts: %s

Infer the brand voice, visual identity, and messaging patterns based on the information provided.`,
		companyName, orDefault(website, "Not provided"), orDefault(description, "Not provided"), postsOrNone(existingPosts))

	reply, err := gateway.Complete(ctx, brandAnalysisSystemPrompt, userPrompt, 0.7)
	if err != nil {
		return models.BrandProfile{}, err
	}

	profile := parseBrandProfile(reply)
	profile.CompanyName = companyName
	profile.Website = website
	profile.Description = description
	return profile, nil
}

func parseBrandProfile(reply string) models.BrandProfile {
	var profile models.BrandProfile
	raw, err := ExtractJSON(reply)
	if err == nil {
		err = json.Unmarshal([]byte(raw), &profile)
	}
	if err != nil {
		logger.Warn().Err(err).Str("operation", "analyze-brand").Msg("falling back to default brand profile")
		return defaultBrandProfile()
	}
	return profile
}

func defaultBrandProfile() models.BrandProfile {
	return models.BrandProfile{
		Voice: models.BrandVoice{
			Tone:             "Professional yet approachable",
			EmojiUsage:       "moderate",
			CtaStyle:         "Action-oriented with urgency",
			LanguagePatterns: []string{"Innovation-focused", "Community-driven"},
		},
		VisualIdentity: models.VisualIdentity{
			Colors:          []string{"#3B82F6", "#F97316", "#1E1B4B", "#F8FAFC"},
			LayoutStyle:     "Modern, clean with bold accents",
			TypographyStyle: "Sans-serif, bold headers",
		},
		MessagingPatterns: models.MessagingPatterns{
			Themes:         []string{"Innovation", "Community", "Growth"},
			ValueProps:     []string{"Speed", "Quality", "Impact"},
			TargetAudience: "Tech-savvy professionals",
		},
		Summary: "Brand profile generated with default settings.",
	}
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func postsOrNone(posts []string) string {
	if len(posts) == 0 {
		return "None provided"
	}
	encoded, err := json.Marshal(posts)
	if err != nil {
		return "None provided"
	}
	return string(encoded)
}
