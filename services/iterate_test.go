package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratePostReturnsRewrite(t *testing.T) {
	fake := &fakeGateway{reply: "```json\n" + `{
		"improvedCaption": "Shorter, punchier launch note.",
		"improvedTextOverlay": "LAUNCH",
		"changes": ["Cut filler", "Tightened CTA"],
		"qualityScore": 92
	}` + "\n```"}
	useFakeGateway(t, fake)

	result, err := IteratePost(context.Background(), "var-1", "A very long caption about our launch...", "shorter", "", nil)
	require.NoError(t, err)

	assert.Equal(t, "Shorter, punchier launch note.", result.ImprovedCaption)
	assert.Equal(t, []string{"Cut filler", "Tightened CTA"}, result.Changes)
	assert.Equal(t, 92, result.QualityScore)
	assert.Contains(t, fake.lastSystemPrompt, `"shorter": Make it more concise`)
	assert.Contains(t, fake.lastUserPrompt, "Feedback Type: shorter")
	assert.InDelta(t, 0.7, fake.lastTemperature, 0.001)
}

func TestIteratePostUnparseableReplyIsParseFailure(t *testing.T) {
	fake := &fakeGateway{reply: "I rewrote it but forgot the JSON."}
	useFakeGateway(t, fake)

	_, err := IteratePost(context.Background(), "var-1", "caption", "tone", "warmer please", nil)
	assert.ErrorIs(t, err, ErrParse)
}

func TestIteratePostMissingCaptionIsParseFailure(t *testing.T) {
	fake := &fakeGateway{reply: `{"changes": ["did nothing"], "qualityScore": 50}`}
	useFakeGateway(t, fake)

	_, err := IteratePost(context.Background(), "var-1", "caption", "cta", "", nil)
	assert.ErrorIs(t, err, ErrParse)
}
