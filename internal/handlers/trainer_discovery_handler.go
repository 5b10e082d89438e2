package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/fitmatch-dev/TrainerMatchBack/internal/models"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/repository"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/scoring"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type trainerDiscoveryRepository interface {
	List(ctx context.Context, filter repository.TrainerListFilter) ([]models.TrainerProfile, int, error)
	GetByUserID(ctx context.Context, userID int64) (*models.TrainerProfile, error)
}

type clientDiscoveryRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.ClientProfile, error)
}

type trainerMatchmaker interface {
	RankTrainers(ctx context.Context, clientProfile *models.ClientProfile, limit int) ([]models.TrainerWithScore, error)
	ScoreTrainer(clientProfile *models.ClientProfile, trainer *models.TrainerProfile) models.ScoreBreakdown
}

type TrainerDiscoveryHandler struct {
	trainerRepo        trainerDiscoveryRepository
	clientProfileRepo  clientDiscoveryRepository
	matchmakingService trainerMatchmaker
}

func NewTrainerDiscoveryHandler(
	trainerRepo trainerDiscoveryRepository,
	clientProfileRepo clientDiscoveryRepository,
	matchmakingService trainerMatchmaker,
) *TrainerDiscoveryHandler {
	return &TrainerDiscoveryHandler{
		trainerRepo:        trainerRepo,
		clientProfileRepo:  clientProfileRepo,
		matchmakingService: matchmakingService,
	}
}

func (h *TrainerDiscoveryHandler) ListTrainers(c *fiber.Ctx) error {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	minRating, err := parseNonNegativeFloat(c.Query("min_rating"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "min_rating must be a valid non-negative number"})
	}

	trainers, total, err := h.trainerRepo.List(c.Context(), repository.TrainerListFilter{
		Focus:     strings.TrimSpace(c.Query("focus")),
		Modality:  strings.TrimSpace(c.Query("modality")),
		Language:  strings.TrimSpace(c.Query("language")),
		MinRating: minRating,
		Offset:    (page - 1) * limit,
		Limit:     limit,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trainers"})
	}

	response := make([]models.TrainerListResponse, 0, len(trainers))
	for _, trainer := range trainers {
		response = append(response, buildTrainerListResponse(trainer, nil))
	}

	return c.JSON(fiber.Map{
		"trainers":   response,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *TrainerDiscoveryHandler) GetRecommendedTrainers(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "client" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseProfileUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	clientProfile, err := h.clientProfileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch client profile"})
	}

	ranked, err := h.matchmakingService.RankTrainers(c.Context(), clientProfile, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch recommended trainers"})
	}

	response := make([]models.TrainerListResponse, 0, len(ranked))
	for _, trainer := range ranked {
		response = append(response, buildTrainerListResponse(trainer.TrainerProfile, &trainer.Breakdown))
	}

	return c.JSON(fiber.Map{"trainers": response})
}

func (h *TrainerDiscoveryHandler) GetTrainerDetail(c *fiber.Ctx) error {
	trainerID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || trainerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}

	trainer, err := h.trainerRepo.GetByUserID(c.Context(), trainerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trainer"})
	}

	return c.JSON(fiber.Map{
		"trainer": buildTrainerDetailResponse(*trainer),
	})
}

// GetMatchDetail exposes the full score breakdown between the signed-in
// client and one trainer, with the dimension weights, for the explanation UI.
func (h *TrainerDiscoveryHandler) GetMatchDetail(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "client" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseProfileUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	trainerID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || trainerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}

	clientProfile, err := h.clientProfileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch client profile"})
	}

	trainer, err := h.trainerRepo.GetByUserID(c.Context(), trainerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trainer"})
	}

	breakdown := h.matchmakingService.ScoreTrainer(clientProfile, trainer)

	return c.JSON(models.MatchDetailResponse{
		Trainer:   buildTrainerListResponse(*trainer, &breakdown),
		Breakdown: breakdown,
		Weights:   scoring.Weights(),
	})
}

func buildTrainerListResponse(trainer models.TrainerProfile, breakdown *models.ScoreBreakdown) models.TrainerListResponse {
	response := models.TrainerListResponse{
		ID:              strconv.FormatInt(trainer.UserID, 10),
		FullName:        stringValue(trainer.FullName),
		AvatarURL:       stringValue(trainer.AvatarURL),
		Focus:           stringValue(trainer.Focus),
		Modality:        stringValue(trainer.Modality),
		Location:        stringValue(trainer.Location),
		RateTier:        stringValue(trainer.RateTier),
		Language:        stringValue(trainer.Language),
		ExperienceYears: intValue(trainer.ExperienceYears),
		Rating:          floatValue(trainer.Rating),
		TotalReviews:    trainer.TotalReviews,
	}
	if breakdown != nil {
		response.MatchScore = breakdown.Global
		confidence := breakdown.Confidence
		response.MatchConfidence = &confidence
	}
	return response
}

func buildTrainerDetailResponse(trainer models.TrainerProfile) models.TrainerDetailResponse {
	return models.TrainerDetailResponse{
		TrainerListResponse: buildTrainerListResponse(trainer, nil),
		Bio:                 stringValue(trainer.Bio),
		Certifications:      stringSliceValue(trainer.Certifications),
		IsVerified:          boolValue(trainer.IsVerified),
		OnboardingComplete:  trainer.OnboardingComplete,
	}
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseNonNegativeFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0, errInvalidNumber
	}
	return value, nil
}

var errInvalidNumber = errors.New("invalid number")

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func stringSliceValue(value *[]string) []string {
	if value == nil {
		return []string{}
	}
	return *value
}

func floatValue(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

func intValue(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func boolValue(value *bool) bool {
	if value == nil {
		return false
	}
	return *value
}
