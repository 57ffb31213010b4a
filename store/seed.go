package store

import "postforge/models"

// Seed installs the sample planned posts shown to a fresh session.
func (s *Store) Seed() {
	samples := []models.PlannedPost{
		{
			ID:                 "1",
			Intent:             models.IntentEvent,
			Platform:           models.PlatformBoth,
			Title:              "Hack-Nation Hackathon Launch",
			Details:            "Announce the upcoming Hack-Nation hackathon with Super Bowl themed branding. Highlight prizes, dates, and registration link.",
			Date:               "2026-02-15",
			Tone:               "Exciting, energetic",
			AdditionalElements: "Include $50K prize pool, 48-hour format, AI/Web3/Social Impact tracks",
		},
		{
			ID:                 "2",
			Intent:             models.IntentAnnouncement,
			Platform:           models.PlatformLinkedIn,
			Title:              "Speaker Lineup Reveal",
			Details:            "Reveal keynote speakers for the hackathon. Include headshots and bios. Reference Olympic spirit of competition.",
			Date:               "2026-02-18",
			Tone:               "Professional, inspiring",
			AdditionalElements: "Speakers: Jane Smith (Google AI), Mark Chen (OpenAI), Sarah Johnson (YC)",
		},
		{
			ID:                 "3",
			Intent:             models.IntentAchievement,
			Platform:           models.PlatformInstagram,
			Title:              "Winner Announcement",
			Details:            "Celebrate hackathon winners with trophy imagery and project screenshots. Include quotes from winning teams.",
			Date:               "2026-02-22",
			Tone:               "Celebratory, proud",
			AdditionalElements: "1st: Team Alpha - AI-powered sustainability tracker, 2nd: Team Beta - Decentralized voting platform",
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plannedPosts = append(s.plannedPosts, samples...)
}
