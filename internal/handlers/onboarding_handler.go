package handlers

import (
	"context"
	"strconv"

	"github.com/fitmatch-dev/TrainerMatchBack/internal/models"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type clientOnboardingStore interface {
	UpdateOnboarding(ctx context.Context, userID int64, req repository.ClientOnboardingInput) (*models.ClientProfile, error)
}

type trainerOnboardingStore interface {
	UpdateOnboarding(ctx context.Context, userID int64, req repository.TrainerOnboardingInput) (*models.TrainerProfile, error)
}

type OnboardingHandler struct {
	clientProfileRepo  clientOnboardingStore
	trainerProfileRepo trainerOnboardingStore
}

func NewOnboardingHandler(clientProfileRepo clientOnboardingStore, trainerProfileRepo trainerOnboardingStore) *OnboardingHandler {
	return &OnboardingHandler{
		clientProfileRepo:  clientProfileRepo,
		trainerProfileRepo: trainerProfileRepo,
	}
}

type clientOnboardingRequest struct {
	FullName                string  `json:"full_name"`
	PrimaryGoal             string  `json:"primary_goal"`
	GoalIntensity           int     `json:"goal_intensity"`
	TrackingStyle           string  `json:"tracking_style"`
	TrainingFormat          string  `json:"training_format"`
	PacingPreference        int     `json:"pacing_preference"`
	StructurePreference     int     `json:"structure_preference"`
	CoachingTone            string  `json:"coaching_tone"`
	EnergyLevel             int     `json:"energy_level"`
	MotivationType          string  `json:"motivation_type"`
	ExperienceYears         int     `json:"experience_years"`
	WeeklyAvailabilityHours int     `json:"weekly_availability_hours"`
	Location                string  `json:"location"`
	BudgetTier              string  `json:"budget_tier"`
	Language                string  `json:"language"`
	TrainerGenderPreference *string `json:"trainer_gender_preference"`
}

type trainerOnboardingRequest struct {
	FullName        string   `json:"full_name"`
	Bio             string   `json:"bio"`
	Focus           string   `json:"focus"`
	FocusIntensity  int      `json:"focus_intensity"`
	TrackingMethod  string   `json:"tracking_method"`
	Modality        string   `json:"modality"`
	Pacing          int      `json:"pacing"`
	Adaptability    int      `json:"adaptability"`
	CoachingTone    string   `json:"coaching_tone"`
	EnergyLevel     int      `json:"energy_level"`
	MotivationStyle string   `json:"motivation_style"`
	ExperienceYears int      `json:"experience_years"`
	Location        string   `json:"location"`
	RateTier        string   `json:"rate_tier"`
	Language        string   `json:"language"`
	Gender          *string  `json:"gender"`
	Certifications  []string `json:"certifications"`
}

func (h *OnboardingHandler) ClientOnboarding(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "client" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseOnboardingUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req clientOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateClientOnboardingRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.clientProfileRepo.UpdateOnboarding(c.Context(), userID, repository.ClientOnboardingInput{
		FullName:                req.FullName,
		PrimaryGoal:             req.PrimaryGoal,
		GoalIntensity:           req.GoalIntensity,
		TrackingStyle:           req.TrackingStyle,
		TrainingFormat:          req.TrainingFormat,
		PacingPreference:        req.PacingPreference,
		StructurePreference:     req.StructurePreference,
		CoachingTone:            req.CoachingTone,
		EnergyLevel:             req.EnergyLevel,
		MotivationType:          req.MotivationType,
		ExperienceYears:         req.ExperienceYears,
		WeeklyAvailabilityHours: req.WeeklyAvailabilityHours,
		Location:                req.Location,
		BudgetTier:              req.BudgetTier,
		Language:                req.Language,
		TrainerGenderPreference: req.TrainerGenderPreference,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func (h *OnboardingHandler) TrainerOnboarding(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "trainer" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseOnboardingUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req trainerOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateTrainerOnboardingRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.trainerProfileRepo.UpdateOnboarding(c.Context(), userID, repository.TrainerOnboardingInput{
		FullName:        req.FullName,
		Bio:             req.Bio,
		Focus:           req.Focus,
		FocusIntensity:  req.FocusIntensity,
		TrackingMethod:  req.TrackingMethod,
		Modality:        req.Modality,
		Pacing:          req.Pacing,
		Adaptability:    req.Adaptability,
		CoachingTone:    req.CoachingTone,
		EnergyLevel:     req.EnergyLevel,
		MotivationStyle: req.MotivationStyle,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		RateTier:        req.RateTier,
		Language:        req.Language,
		Gender:          req.Gender,
		Certifications:  req.Certifications,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func parseOnboardingUserID(c *fiber.Ctx) (int64, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}
