package models

// Post intents and target platforms accepted by the planner.
const (
	IntentAnnouncement = "announcement"
	IntentEvent        = "event"
	IntentPartnership  = "partnership"
	IntentAchievement  = "achievement"

	PlatformLinkedIn  = "linkedin"
	PlatformInstagram = "instagram"
	PlatformBoth      = "both"
)

// PlannedPost is a user-authored intent to publish content, not yet turned
// into caption text.
type PlannedPost struct {
	ID                 string `json:"id"`
	Intent             string `json:"intent"`
	Platform           string `json:"platform"`
	Title              string `json:"title"`
	Details            string `json:"details,omitempty"`
	Date               string `json:"date,omitempty"`
	Tone               string `json:"tone,omitempty"`
	AdditionalElements string `json:"additionalElements,omitempty"`
}

// PostVariation is one AI-produced candidate for a planned post.
type PostVariation struct {
	ID               string   `json:"id"`
	Caption          string   `json:"caption"`
	Platform         string   `json:"platform"`
	ImageDescription string   `json:"imageDescription"`
	TextOverlay      string   `json:"textOverlay"`
	Hashtags         []string `json:"hashtags"`
	QualityScore     int      `json:"qualityScore"`
	Strengths        []string `json:"strengths,omitempty"`
	Improvements     []string `json:"improvements,omitempty"`
	ImageURL         string   `json:"imageUrl,omitempty"`
}

// IterationResult is the outcome of a user-directed rewrite of a variation.
type IterationResult struct {
	ImprovedCaption     string   `json:"improvedCaption"`
	ImprovedTextOverlay string   `json:"improvedTextOverlay"`
	Changes             []string `json:"changes"`
	QualityScore        int      `json:"qualityScore"`
}

// GeneratedImage is the outcome of the image operation for a variation.
type GeneratedImage struct {
	ImageURL    string `json:"imageUrl"`
	TextOverlay string `json:"textOverlay"`
	Description string `json:"description"`
}
