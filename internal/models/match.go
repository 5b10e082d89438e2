package models

// ScoreBreakdown is the full output of one scoring call. It is computed
// fresh per request and never stored.
type ScoreBreakdown struct {
	Goals         int      `json:"goals"`
	TrainingStyle int      `json:"training_style"`
	Motivation    int      `json:"motivation"`
	Experience    int      `json:"experience"`
	Logistics     int      `json:"logistics"`
	Global        int      `json:"global"`
	Confidence    float64  `json:"confidence"`
	Reasons       []string `json:"reasons"`
}

type TrainerWithScore struct {
	TrainerProfile
	Breakdown ScoreBreakdown `json:"breakdown"`
}

type TrainerListResponse struct {
	ID              string   `json:"id"`
	FullName        string   `json:"full_name"`
	AvatarURL       string   `json:"avatar_url"`
	Focus           string   `json:"focus"`
	Modality        string   `json:"modality"`
	Location        string   `json:"location"`
	RateTier        string   `json:"rate_tier"`
	Language        string   `json:"language"`
	ExperienceYears int      `json:"experience_years"`
	Rating          float64  `json:"rating"`
	TotalReviews    int      `json:"total_reviews"`
	MatchScore      int      `json:"match_score,omitempty"`
	MatchConfidence *float64 `json:"match_confidence,omitempty"`
}

type TrainerDetailResponse struct {
	TrainerListResponse
	Bio                string   `json:"bio"`
	Certifications     []string `json:"certifications"`
	IsVerified         bool     `json:"is_verified"`
	OnboardingComplete bool     `json:"onboarding_complete"`
}

type MatchDetailResponse struct {
	Trainer   TrainerListResponse `json:"trainer"`
	Breakdown ScoreBreakdown      `json:"breakdown"`
	Weights   map[string]float64  `json:"weights"`
}
