package models

import "time"

// TrainerProfile mirrors ClientProfile on the coaching side. The same
// nil-means-unanswered convention applies.
type TrainerProfile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	FullName           *string   `json:"full_name"`
	AvatarURL          *string   `json:"avatar_url"`
	Bio                *string   `json:"bio"`
	Focus              *string   `json:"focus"`
	FocusIntensity     *int      `json:"focus_intensity"`
	TrackingMethod     *string   `json:"tracking_method"`
	Modality           *string   `json:"modality"`
	Pacing             *int      `json:"pacing"`
	Adaptability       *int      `json:"adaptability"`
	CoachingTone       *string   `json:"coaching_tone"`
	EnergyLevel        *int      `json:"energy_level"`
	MotivationStyle    *string   `json:"motivation_style"`
	ExperienceYears    *int      `json:"experience_years"`
	Location           *string   `json:"location"`
	RateTier           *string   `json:"rate_tier"`
	Language           *string   `json:"language"`
	Gender             *string   `json:"gender"`
	Certifications     *[]string `json:"certifications"`
	Rating             *float64  `json:"rating"`
	TotalReviews       int       `json:"total_reviews"`
	IsVerified         *bool     `json:"is_verified"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
