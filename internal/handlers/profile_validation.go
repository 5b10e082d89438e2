package handlers

import (
	"sort"
	"strings"
)

// The questionnaire enums accepted at the API boundary. These mirror the
// closed sets the scoring engine recognizes; anything else would silently
// score as missing data, so it is rejected here instead.
var allowedGoals = map[string]struct{}{
	"weight_loss":    {},
	"muscle_gain":    {},
	"performance":    {},
	"general_health": {},
}

var allowedTrackingStyles = map[string]struct{}{
	"daily":     {},
	"weekly":    {},
	"monthly":   {},
	"milestone": {},
}

var allowedTrainingFormats = map[string]struct{}{
	"in_person": {},
	"online":    {},
	"hybrid":    {},
}

var allowedCoachingTones = map[string]struct{}{
	"strict":      {},
	"balanced":    {},
	"encouraging": {},
}

var allowedMotivationTypes = map[string]struct{}{
	"intrinsic":   {},
	"extrinsic":   {},
	"social":      {},
	"data_driven": {},
}

var allowedBudgetTiers = map[string]struct{}{
	"budget":   {},
	"standard": {},
	"premium":  {},
}

var allowedGenders = map[string]struct{}{
	"male":       {},
	"female":     {},
	"non_binary": {},
}

func validateClientOnboardingRequest(req clientOnboardingRequest) string {
	if strings.TrimSpace(req.FullName) == "" {
		return "full_name is required"
	}
	if err := validateEnum("primary_goal", req.PrimaryGoal, allowedGoals); err != "" {
		return err
	}
	if err := validateOrdinal("goal_intensity", req.GoalIntensity); err != "" {
		return err
	}
	if err := validateEnum("tracking_style", req.TrackingStyle, allowedTrackingStyles); err != "" {
		return err
	}
	if err := validateEnum("training_format", req.TrainingFormat, allowedTrainingFormats); err != "" {
		return err
	}
	if err := validateOrdinal("pacing_preference", req.PacingPreference); err != "" {
		return err
	}
	if err := validateOrdinal("structure_preference", req.StructurePreference); err != "" {
		return err
	}
	if err := validateEnum("coaching_tone", req.CoachingTone, allowedCoachingTones); err != "" {
		return err
	}
	if err := validateOrdinal("energy_level", req.EnergyLevel); err != "" {
		return err
	}
	if err := validateEnum("motivation_type", req.MotivationType, allowedMotivationTypes); err != "" {
		return err
	}
	if req.ExperienceYears < 0 {
		return "experience_years must be 0 or greater"
	}
	if req.WeeklyAvailabilityHours < 0 {
		return "weekly_availability_hours must be 0 or greater"
	}
	if strings.TrimSpace(req.Location) == "" {
		return "location is required"
	}
	if err := validateEnum("budget_tier", req.BudgetTier, allowedBudgetTiers); err != "" {
		return err
	}
	if strings.TrimSpace(req.Language) == "" {
		return "language is required"
	}
	if req.TrainerGenderPreference != nil {
		if err := validateEnum("trainer_gender_preference", *req.TrainerGenderPreference, allowedGenders); err != "" {
			return err
		}
	}
	return ""
}

func validateTrainerOnboardingRequest(req trainerOnboardingRequest) string {
	if strings.TrimSpace(req.FullName) == "" {
		return "full_name is required"
	}
	if strings.TrimSpace(req.Bio) == "" {
		return "bio is required"
	}
	if err := validateEnum("focus", req.Focus, allowedGoals); err != "" {
		return err
	}
	if err := validateOrdinal("focus_intensity", req.FocusIntensity); err != "" {
		return err
	}
	if err := validateEnum("tracking_method", req.TrackingMethod, allowedTrackingStyles); err != "" {
		return err
	}
	if err := validateEnum("modality", req.Modality, allowedTrainingFormats); err != "" {
		return err
	}
	if err := validateOrdinal("pacing", req.Pacing); err != "" {
		return err
	}
	if err := validateOrdinal("adaptability", req.Adaptability); err != "" {
		return err
	}
	if err := validateEnum("coaching_tone", req.CoachingTone, allowedCoachingTones); err != "" {
		return err
	}
	if err := validateOrdinal("energy_level", req.EnergyLevel); err != "" {
		return err
	}
	if err := validateEnum("motivation_style", req.MotivationStyle, allowedMotivationTypes); err != "" {
		return err
	}
	if req.ExperienceYears < 0 {
		return "experience_years must be 0 or greater"
	}
	if strings.TrimSpace(req.Location) == "" {
		return "location is required"
	}
	if err := validateEnum("rate_tier", req.RateTier, allowedBudgetTiers); err != "" {
		return err
	}
	if strings.TrimSpace(req.Language) == "" {
		return "language is required"
	}
	if req.Gender != nil {
		if err := validateEnum("gender", *req.Gender, allowedGenders); err != "" {
			return err
		}
	}
	for _, certification := range req.Certifications {
		if strings.TrimSpace(certification) == "" {
			return "certifications must not contain empty values"
		}
	}
	return ""
}

func validateClientProfileUpdateRequest(req updateClientProfileRequest) string {
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return "full_name must not be empty"
	}
	if req.PrimaryGoal != nil {
		if err := validateEnum("primary_goal", *req.PrimaryGoal, allowedGoals); err != "" {
			return err
		}
	}
	if req.GoalIntensity != nil {
		if err := validateOrdinal("goal_intensity", *req.GoalIntensity); err != "" {
			return err
		}
	}
	if req.TrackingStyle != nil {
		if err := validateEnum("tracking_style", *req.TrackingStyle, allowedTrackingStyles); err != "" {
			return err
		}
	}
	if req.TrainingFormat != nil {
		if err := validateEnum("training_format", *req.TrainingFormat, allowedTrainingFormats); err != "" {
			return err
		}
	}
	if req.PacingPreference != nil {
		if err := validateOrdinal("pacing_preference", *req.PacingPreference); err != "" {
			return err
		}
	}
	if req.StructurePreference != nil {
		if err := validateOrdinal("structure_preference", *req.StructurePreference); err != "" {
			return err
		}
	}
	if req.CoachingTone != nil {
		if err := validateEnum("coaching_tone", *req.CoachingTone, allowedCoachingTones); err != "" {
			return err
		}
	}
	if req.EnergyLevel != nil {
		if err := validateOrdinal("energy_level", *req.EnergyLevel); err != "" {
			return err
		}
	}
	if req.MotivationType != nil {
		if err := validateEnum("motivation_type", *req.MotivationType, allowedMotivationTypes); err != "" {
			return err
		}
	}
	if req.ExperienceYears != nil && *req.ExperienceYears < 0 {
		return "experience_years must be 0 or greater"
	}
	if req.WeeklyAvailabilityHours != nil && *req.WeeklyAvailabilityHours < 0 {
		return "weekly_availability_hours must be 0 or greater"
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) == "" {
		return "location must not be empty"
	}
	if req.BudgetTier != nil {
		if err := validateEnum("budget_tier", *req.BudgetTier, allowedBudgetTiers); err != "" {
			return err
		}
	}
	if req.Language != nil && strings.TrimSpace(*req.Language) == "" {
		return "language must not be empty"
	}
	if req.TrainerGenderPreference != nil {
		if err := validateEnum("trainer_gender_preference", *req.TrainerGenderPreference, allowedGenders); err != "" {
			return err
		}
	}
	return ""
}

func validateTrainerProfileUpdateRequest(req updateTrainerProfileRequest) string {
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return "full_name must not be empty"
	}
	if req.Bio != nil && strings.TrimSpace(*req.Bio) == "" {
		return "bio must not be empty"
	}
	if req.Focus != nil {
		if err := validateEnum("focus", *req.Focus, allowedGoals); err != "" {
			return err
		}
	}
	if req.FocusIntensity != nil {
		if err := validateOrdinal("focus_intensity", *req.FocusIntensity); err != "" {
			return err
		}
	}
	if req.TrackingMethod != nil {
		if err := validateEnum("tracking_method", *req.TrackingMethod, allowedTrackingStyles); err != "" {
			return err
		}
	}
	if req.Modality != nil {
		if err := validateEnum("modality", *req.Modality, allowedTrainingFormats); err != "" {
			return err
		}
	}
	if req.Pacing != nil {
		if err := validateOrdinal("pacing", *req.Pacing); err != "" {
			return err
		}
	}
	if req.Adaptability != nil {
		if err := validateOrdinal("adaptability", *req.Adaptability); err != "" {
			return err
		}
	}
	if req.CoachingTone != nil {
		if err := validateEnum("coaching_tone", *req.CoachingTone, allowedCoachingTones); err != "" {
			return err
		}
	}
	if req.EnergyLevel != nil {
		if err := validateOrdinal("energy_level", *req.EnergyLevel); err != "" {
			return err
		}
	}
	if req.MotivationStyle != nil {
		if err := validateEnum("motivation_style", *req.MotivationStyle, allowedMotivationTypes); err != "" {
			return err
		}
	}
	if req.ExperienceYears != nil && *req.ExperienceYears < 0 {
		return "experience_years must be 0 or greater"
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) == "" {
		return "location must not be empty"
	}
	if req.RateTier != nil {
		if err := validateEnum("rate_tier", *req.RateTier, allowedBudgetTiers); err != "" {
			return err
		}
	}
	if req.Language != nil && strings.TrimSpace(*req.Language) == "" {
		return "language must not be empty"
	}
	if req.Gender != nil {
		if err := validateEnum("gender", *req.Gender, allowedGenders); err != "" {
			return err
		}
	}
	if req.Certifications != nil {
		for _, certification := range *req.Certifications {
			if strings.TrimSpace(certification) == "" {
				return "certifications must not contain empty values"
			}
		}
	}
	return ""
}

func validateEnum(field, value string, allowed map[string]struct{}) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(value)), "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	if _, ok := allowed[normalized]; !ok {
		return field + " must be one of: " + joinAllowed(allowed)
	}
	return ""
}

func validateOrdinal(field string, value int) string {
	if value < 1 || value > 5 {
		return field + " must be between 1 and 5"
	}
	return ""
}

func joinAllowed(allowed map[string]struct{}) string {
	values := make([]string, 0, len(allowed))
	for value := range allowed {
		values = append(values, value)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
