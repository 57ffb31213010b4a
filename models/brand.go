package models

// BrandVoice describes how the brand speaks.
type BrandVoice struct {
	Tone             string   `json:"tone"`
	EmojiUsage       string   `json:"emojiUsage" binding:"omitempty,oneof=none minimal moderate heavy"`
	CtaStyle         string   `json:"ctaStyle"`
	LanguagePatterns []string `json:"languagePatterns"`
}

// VisualIdentity holds the inferred look of the brand.
type VisualIdentity struct {
	Colors          []string `json:"colors" binding:"omitempty,dive,hexcolor"`
	LayoutStyle     string   `json:"layoutStyle"`
	TypographyStyle string   `json:"typographyStyle"`
}

// MessagingPatterns holds recurring themes and positioning.
type MessagingPatterns struct {
	Themes         []string `json:"themes"`
	ValueProps     []string `json:"valueProps"`
	TargetAudience string   `json:"targetAudience"`
}

// BrandProfile is the result of brand analysis. There is at most one per
// session; re-running the analysis replaces it wholesale.
type BrandProfile struct {
	CompanyName       string            `json:"companyName,omitempty"`
	Website           string            `json:"website,omitempty"`
	Description       string            `json:"description,omitempty"`
	Voice             BrandVoice        `json:"voice"`
	VisualIdentity    VisualIdentity    `json:"visualIdentity"`
	MessagingPatterns MessagingPatterns `json:"messagingPatterns"`
	Summary           string            `json:"summary"`
}
