package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"postforge/models"
)

// AspectRatioStory selects the vertical 9:16 format; anything else is square.
const AspectRatioStory = "story"

// GenerateImage composes the image prompt from the variation's description,
// the brand palette and the overlay requirement, and requests one image from
// the gateway. Composition itself happens upstream; this only assembles the
// instruction.
func GenerateImage(ctx context.Context, prompt, textOverlay string, brandColors []string, aspectRatio string) (models.GeneratedImage, error) {
	if gateway == nil {
		return models.GeneratedImage{}, errors.New("content service not initialized")
	}

	var colorGuide string
	if len(brandColors) > 0 {
		colorGuide = fmt.Sprintf("Use these brand colors prominently: %s. ", strings.Join(brandColors, ", "))
	}
	var overlayGuide string
	if textOverlay != "" {
		overlayGuide = fmt.Sprintf("The image should have space for overlaying the text: %q. Leave clean area for text placement. ", textOverlay)
	}
	format := "Square format 1:1"
	if aspectRatio == AspectRatioStory {
		format = "Vertical format 9:16"
	}

	fullPrompt := fmt.Sprintf(`Create a professional social media post image. %s%s%s.
Style: Modern, clean, professional. High contrast for text readability. %s.
Do NOT include any text in the image - leave space for text overlay.`,
		colorGuide, overlayGuide, prompt, format)

	imageURL, text, err := gateway.GenerateImage(ctx, fullPrompt)
	if err != nil {
		return models.GeneratedImage{}, err
	}

	return models.GeneratedImage{
		ImageURL:    imageURL,
		TextOverlay: textOverlay,
		Description: orDefault(text, prompt),
	}, nil
}
