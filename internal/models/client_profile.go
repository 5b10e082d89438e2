package models

import "time"

// ClientProfile holds the questionnaire answers the matching engine reads.
// Preference fields are pointers: nil means the client skipped the question.
type ClientProfile struct {
	ID                      int64     `json:"id"`
	UserID                  int64     `json:"user_id"`
	FullName                *string   `json:"full_name"`
	AvatarURL               *string   `json:"avatar_url"`
	PrimaryGoal             *string   `json:"primary_goal"`
	GoalIntensity           *int      `json:"goal_intensity"`
	TrackingStyle           *string   `json:"tracking_style"`
	TrainingFormat          *string   `json:"training_format"`
	PacingPreference        *int      `json:"pacing_preference"`
	StructurePreference     *int      `json:"structure_preference"`
	CoachingTone            *string   `json:"coaching_tone"`
	EnergyLevel             *int      `json:"energy_level"`
	MotivationType          *string   `json:"motivation_type"`
	ExperienceYears         *int      `json:"experience_years"`
	WeeklyAvailabilityHours *int      `json:"weekly_availability_hours"`
	Location                *string   `json:"location"`
	BudgetTier              *string   `json:"budget_tier"`
	Language                *string   `json:"language"`
	TrainerGenderPreference *string   `json:"trainer_gender_preference"`
	OnboardingComplete      bool      `json:"onboarding_complete"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}
