package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitmatch-dev/TrainerMatchBack/internal/models"
)

const trainerProfileColumns = `id, user_id, full_name, avatar_url, bio, focus, focus_intensity,
	   tracking_method, modality, pacing, adaptability, coaching_tone, energy_level,
	   motivation_style, experience_years, location, rate_tier, language, gender,
	   certifications, rating, total_reviews, is_verified, onboarding_complete,
	   created_at, updated_at`

type TrainerListFilter struct {
	Focus     string
	Modality  string
	Language  string
	MinRating float64
	Offset    int
	Limit     int
}

type TrainerProfileRepository struct {
	db DBTX
}

func NewTrainerProfileRepository(db DBTX) *TrainerProfileRepository {
	return &TrainerProfileRepository{db: db}
}

func (r *TrainerProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO trainer_profiles (user_id) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *TrainerProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.TrainerProfile, error) {
	query := `
		SELECT ` + trainerProfileColumns + `
		FROM trainer_profiles
		WHERE user_id = $1
	`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID))
}

// ListAllOnboarded feeds the matchmaking service: only trainers who finished
// onboarding are rankable.
func (r *TrainerProfileRepository) ListAllOnboarded(ctx context.Context) ([]models.TrainerProfile, error) {
	query := `
		SELECT ` + trainerProfileColumns + `
		FROM trainer_profiles
		WHERE onboarding_complete = TRUE
		ORDER BY user_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.TrainerProfile
	for rows.Next() {
		profile, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

func (r *TrainerProfileRepository) List(ctx context.Context, filter TrainerListFilter) ([]models.TrainerProfile, int, error) {
	conditions := []string{"onboarding_complete = TRUE"}
	args := []any{}

	addCondition := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.Focus != "" {
		addCondition("focus = $%d", filter.Focus)
	}
	if filter.Modality != "" {
		addCondition("modality = $%d", filter.Modality)
	}
	if filter.Language != "" {
		addCondition("language = $%d", filter.Language)
	}
	if filter.MinRating > 0 {
		addCondition("rating >= $%d", filter.MinRating)
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM trainer_profiles WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset)
	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM trainer_profiles
		WHERE %s
		ORDER BY rating DESC NULLS LAST, user_id
		LIMIT $%d OFFSET $%d
	`, trainerProfileColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []models.TrainerProfile
	for rows.Next() {
		profile, err := r.scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, total, rows.Err()
}

func (r *TrainerProfileRepository) UpdateOnboarding(ctx context.Context, userID int64, req TrainerOnboardingInput) (*models.TrainerProfile, error) {
	query := `
		UPDATE trainer_profiles
		SET full_name = $1,
			bio = $2,
			focus = $3,
			focus_intensity = $4,
			tracking_method = $5,
			modality = $6,
			pacing = $7,
			adaptability = $8,
			coaching_tone = $9,
			energy_level = $10,
			motivation_style = $11,
			experience_years = $12,
			location = $13,
			rate_tier = $14,
			language = $15,
			gender = $16,
			certifications = $17,
			onboarding_complete = TRUE,
			updated_at = NOW()
		WHERE user_id = $18
		RETURNING ` + trainerProfileColumns + `
	`
	return r.scanProfile(r.db.QueryRow(ctx, query,
		req.FullName,
		req.Bio,
		req.Focus,
		req.FocusIntensity,
		req.TrackingMethod,
		req.Modality,
		req.Pacing,
		req.Adaptability,
		req.CoachingTone,
		req.EnergyLevel,
		req.MotivationStyle,
		req.ExperienceYears,
		req.Location,
		req.RateTier,
		req.Language,
		req.Gender,
		req.Certifications,
		userID,
	))
}

func (r *TrainerProfileRepository) UpdatePartial(ctx context.Context, userID int64, req UpdateTrainerProfileInput) (*models.TrainerProfile, error) {
	query := `
		UPDATE trainer_profiles
		SET full_name = COALESCE($1, full_name),
			avatar_url = COALESCE($2, avatar_url),
			bio = COALESCE($3, bio),
			focus = COALESCE($4, focus),
			focus_intensity = COALESCE($5, focus_intensity),
			tracking_method = COALESCE($6, tracking_method),
			modality = COALESCE($7, modality),
			pacing = COALESCE($8, pacing),
			adaptability = COALESCE($9, adaptability),
			coaching_tone = COALESCE($10, coaching_tone),
			energy_level = COALESCE($11, energy_level),
			motivation_style = COALESCE($12, motivation_style),
			experience_years = COALESCE($13, experience_years),
			location = COALESCE($14, location),
			rate_tier = COALESCE($15, rate_tier),
			language = COALESCE($16, language),
			gender = COALESCE($17, gender),
			certifications = COALESCE($18, certifications),
			updated_at = NOW()
		WHERE user_id = $19
		RETURNING ` + trainerProfileColumns + `
	`
	return r.scanProfile(r.db.QueryRow(ctx, query,
		req.FullName,
		req.AvatarURL,
		req.Bio,
		req.Focus,
		req.FocusIntensity,
		req.TrackingMethod,
		req.Modality,
		req.Pacing,
		req.Adaptability,
		req.CoachingTone,
		req.EnergyLevel,
		req.MotivationStyle,
		req.ExperienceYears,
		req.Location,
		req.RateTier,
		req.Language,
		req.Gender,
		req.Certifications,
		userID,
	))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TrainerProfileRepository) scanProfile(row rowScanner) (*models.TrainerProfile, error) {
	var profile models.TrainerProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Focus,
		&profile.FocusIntensity,
		&profile.TrackingMethod,
		&profile.Modality,
		&profile.Pacing,
		&profile.Adaptability,
		&profile.CoachingTone,
		&profile.EnergyLevel,
		&profile.MotivationStyle,
		&profile.ExperienceYears,
		&profile.Location,
		&profile.RateTier,
		&profile.Language,
		&profile.Gender,
		&profile.Certifications,
		&profile.Rating,
		&profile.TotalReviews,
		&profile.IsVerified,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type TrainerOnboardingInput struct {
	FullName        string
	Bio             string
	Focus           string
	FocusIntensity  int
	TrackingMethod  string
	Modality        string
	Pacing          int
	Adaptability    int
	CoachingTone    string
	EnergyLevel     int
	MotivationStyle string
	ExperienceYears int
	Location        string
	RateTier        string
	Language        string
	Gender          *string
	Certifications  []string
}

type UpdateTrainerProfileInput struct {
	FullName        *string
	AvatarURL       *string
	Bio             *string
	Focus           *string
	FocusIntensity  *int
	TrackingMethod  *string
	Modality        *string
	Pacing          *int
	Adaptability    *int
	CoachingTone    *string
	EnergyLevel     *int
	MotivationStyle *string
	ExperienceYears *int
	Location        *string
	RateTier        *string
	Language        *string
	Gender          *string
	Certifications  *[]string
}
