package repository

import (
	"context"

	"github.com/fitmatch-dev/TrainerMatchBack/internal/models"
)

const clientProfileColumns = `id, user_id, full_name, avatar_url, primary_goal, goal_intensity,
	   tracking_style, training_format, pacing_preference, structure_preference,
	   coaching_tone, energy_level, motivation_type, experience_years,
	   weekly_availability_hours, location, budget_tier, language,
	   trainer_gender_preference, onboarding_complete, created_at, updated_at`

type ClientProfileRepository struct {
	db DBTX
}

func NewClientProfileRepository(db DBTX) *ClientProfileRepository {
	return &ClientProfileRepository{db: db}
}

func (r *ClientProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO client_profiles (user_id) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *ClientProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.ClientProfile, error) {
	query := `
		SELECT ` + clientProfileColumns + `
		FROM client_profiles
		WHERE user_id = $1
	`
	return r.scanProfile(ctx, query, userID)
}

func (r *ClientProfileRepository) UpdateOnboarding(ctx context.Context, userID int64, req ClientOnboardingInput) (*models.ClientProfile, error) {
	query := `
		UPDATE client_profiles
		SET full_name = $1,
			primary_goal = $2,
			goal_intensity = $3,
			tracking_style = $4,
			training_format = $5,
			pacing_preference = $6,
			structure_preference = $7,
			coaching_tone = $8,
			energy_level = $9,
			motivation_type = $10,
			experience_years = $11,
			weekly_availability_hours = $12,
			location = $13,
			budget_tier = $14,
			language = $15,
			trainer_gender_preference = $16,
			onboarding_complete = TRUE,
			updated_at = NOW()
		WHERE user_id = $17
		RETURNING ` + clientProfileColumns + `
	`
	return r.scanProfile(ctx, query,
		req.FullName,
		req.PrimaryGoal,
		req.GoalIntensity,
		req.TrackingStyle,
		req.TrainingFormat,
		req.PacingPreference,
		req.StructurePreference,
		req.CoachingTone,
		req.EnergyLevel,
		req.MotivationType,
		req.ExperienceYears,
		req.WeeklyAvailabilityHours,
		req.Location,
		req.BudgetTier,
		req.Language,
		req.TrainerGenderPreference,
		userID,
	)
}

func (r *ClientProfileRepository) UpdatePartial(ctx context.Context, userID int64, req UpdateClientProfileInput) (*models.ClientProfile, error) {
	query := `
		UPDATE client_profiles
		SET full_name = COALESCE($1, full_name),
			avatar_url = COALESCE($2, avatar_url),
			primary_goal = COALESCE($3, primary_goal),
			goal_intensity = COALESCE($4, goal_intensity),
			tracking_style = COALESCE($5, tracking_style),
			training_format = COALESCE($6, training_format),
			pacing_preference = COALESCE($7, pacing_preference),
			structure_preference = COALESCE($8, structure_preference),
			coaching_tone = COALESCE($9, coaching_tone),
			energy_level = COALESCE($10, energy_level),
			motivation_type = COALESCE($11, motivation_type),
			experience_years = COALESCE($12, experience_years),
			weekly_availability_hours = COALESCE($13, weekly_availability_hours),
			location = COALESCE($14, location),
			budget_tier = COALESCE($15, budget_tier),
			language = COALESCE($16, language),
			trainer_gender_preference = COALESCE($17, trainer_gender_preference),
			updated_at = NOW()
		WHERE user_id = $18
		RETURNING ` + clientProfileColumns + `
	`
	return r.scanProfile(ctx, query,
		req.FullName,
		req.AvatarURL,
		req.PrimaryGoal,
		req.GoalIntensity,
		req.TrackingStyle,
		req.TrainingFormat,
		req.PacingPreference,
		req.StructurePreference,
		req.CoachingTone,
		req.EnergyLevel,
		req.MotivationType,
		req.ExperienceYears,
		req.WeeklyAvailabilityHours,
		req.Location,
		req.BudgetTier,
		req.Language,
		req.TrainerGenderPreference,
		userID,
	)
}

func (r *ClientProfileRepository) scanProfile(ctx context.Context, query string, args ...any) (*models.ClientProfile, error) {
	var profile models.ClientProfile
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.PrimaryGoal,
		&profile.GoalIntensity,
		&profile.TrackingStyle,
		&profile.TrainingFormat,
		&profile.PacingPreference,
		&profile.StructurePreference,
		&profile.CoachingTone,
		&profile.EnergyLevel,
		&profile.MotivationType,
		&profile.ExperienceYears,
		&profile.WeeklyAvailabilityHours,
		&profile.Location,
		&profile.BudgetTier,
		&profile.Language,
		&profile.TrainerGenderPreference,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type ClientOnboardingInput struct {
	FullName                string
	PrimaryGoal             string
	GoalIntensity           int
	TrackingStyle           string
	TrainingFormat          string
	PacingPreference        int
	StructurePreference     int
	CoachingTone            string
	EnergyLevel             int
	MotivationType          string
	ExperienceYears         int
	WeeklyAvailabilityHours int
	Location                string
	BudgetTier              string
	Language                string
	TrainerGenderPreference *string
}

type UpdateClientProfileInput struct {
	FullName                *string
	AvatarURL               *string
	PrimaryGoal             *string
	GoalIntensity           *int
	TrackingStyle           *string
	TrainingFormat          *string
	PacingPreference        *int
	StructurePreference     *int
	CoachingTone            *string
	EnergyLevel             *int
	MotivationType          *string
	ExperienceYears         *int
	WeeklyAvailabilityHours *int
	Location                *string
	BudgetTier              *string
	Language                *string
	TrainerGenderPreference *string
}
