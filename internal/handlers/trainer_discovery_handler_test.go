package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitmatch-dev/TrainerMatchBack/internal/models"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/repository"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/scoring"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type stubTrainerDiscoveryRepo struct {
	trainers        []models.TrainerProfile
	total           int
	listFilter      repository.TrainerListFilter
	detailTrainer   *models.TrainerProfile
	detailTrainerID int64
	detailErr       error
}

func (s *stubTrainerDiscoveryRepo) List(_ context.Context, filter repository.TrainerListFilter) ([]models.TrainerProfile, int, error) {
	s.listFilter = filter
	return s.trainers, s.total, nil
}

func (s *stubTrainerDiscoveryRepo) GetByUserID(_ context.Context, trainerID int64) (*models.TrainerProfile, error) {
	s.detailTrainerID = trainerID
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detailTrainer, nil
}

type stubClientDiscoveryRepo struct {
	profile *models.ClientProfile
	err     error
}

func (s *stubClientDiscoveryRepo) GetByUserID(_ context.Context, _ int64) (*models.ClientProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

type stubTrainerMatchmaker struct {
	ranked []models.TrainerWithScore
	limit  int
}

func (s *stubTrainerMatchmaker) RankTrainers(_ context.Context, _ *models.ClientProfile, limit int) ([]models.TrainerWithScore, error) {
	s.limit = limit
	return s.ranked, nil
}

func (s *stubTrainerMatchmaker) ScoreTrainer(clientProfile *models.ClientProfile, trainer *models.TrainerProfile) models.ScoreBreakdown {
	return scoring.Score(clientProfile, trainer)
}

func testStrPtr(value string) *string { return &value }
func testIntPtr(value int) *int       { return &value }

func clientLocals(role, userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("role", role)
		c.Locals("user_id", userID)
		return c.Next()
	}
}

func TestListTrainersReturnsPaginationAndFilters(t *testing.T) {
	rating := 4.7
	trainerRepo := &stubTrainerDiscoveryRepo{
		trainers: []models.TrainerProfile{{
			UserID:             91,
			FullName:           testStrPtr("Trainer Ana"),
			Focus:              testStrPtr("weight_loss"),
			Modality:           testStrPtr("online"),
			Rating:             &rating,
			TotalReviews:       12,
			ExperienceYears:    testIntPtr(6),
			OnboardingComplete: true,
		}},
		total: 11,
	}
	handler := NewTrainerDiscoveryHandler(trainerRepo, &stubClientDiscoveryRepo{}, &stubTrainerMatchmaker{})

	app := fiber.New()
	app.Get("/api/v1/trainers", handler.ListTrainers)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers?focus=weight_loss&modality=online&min_rating=4.5&page=2&limit=5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Trainers   []models.TrainerListResponse `json:"trainers"`
		Pagination models.PaginationMeta        `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if trainerRepo.listFilter.Focus != "weight_loss" || trainerRepo.listFilter.Modality != "online" ||
		trainerRepo.listFilter.Offset != 5 || trainerRepo.listFilter.Limit != 5 {
		t.Fatalf("unexpected filter: %+v", trainerRepo.listFilter)
	}
	if len(body.Trainers) != 1 || body.Trainers[0].ID != "91" {
		t.Fatalf("unexpected trainers response: %+v", body.Trainers)
	}
	if body.Trainers[0].MatchScore != 0 || body.Trainers[0].MatchConfidence != nil {
		t.Fatalf("plain listing should carry no match fields: %+v", body.Trainers[0])
	}
	if body.Pagination.Total != 11 || body.Pagination.TotalPages != 3 || body.Pagination.Page != 2 {
		t.Fatalf("unexpected pagination: %+v", body.Pagination)
	}
}

func TestListTrainersRejectsInvalidMinRating(t *testing.T) {
	handler := NewTrainerDiscoveryHandler(&stubTrainerDiscoveryRepo{}, &stubClientDiscoveryRepo{}, &stubTrainerMatchmaker{})

	app := fiber.New()
	app.Get("/api/v1/trainers", handler.ListTrainers)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers?min_rating=-2", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetRecommendedTrainersReturnsScoredMatches(t *testing.T) {
	confidence := 0.9
	clientRepo := &stubClientDiscoveryRepo{profile: &models.ClientProfile{
		PrimaryGoal: testStrPtr("weight_loss"),
	}}
	matchmaker := &stubTrainerMatchmaker{
		ranked: []models.TrainerWithScore{
			{
				TrainerProfile: models.TrainerProfile{
					UserID:             44,
					Focus:              testStrPtr("weight_loss"),
					OnboardingComplete: true,
				},
				Breakdown: models.ScoreBreakdown{Global: 85, Confidence: confidence},
			},
		},
	}
	handler := NewTrainerDiscoveryHandler(&stubTrainerDiscoveryRepo{}, clientRepo, matchmaker)

	app := fiber.New()
	app.Use(clientLocals("client", "7"))
	app.Get("/api/v1/trainers/recommended", handler.GetRecommendedTrainers)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers/recommended?limit=3", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Trainers []models.TrainerListResponse `json:"trainers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if matchmaker.limit != 3 {
		t.Fatalf("expected limit 3, got %d", matchmaker.limit)
	}
	if len(body.Trainers) != 1 || body.Trainers[0].MatchScore != 85 {
		t.Fatalf("unexpected recommended trainers: %+v", body.Trainers)
	}
	if body.Trainers[0].MatchConfidence == nil || *body.Trainers[0].MatchConfidence != confidence {
		t.Fatalf("expected match confidence %f, got %+v", confidence, body.Trainers[0].MatchConfidence)
	}
}

func TestGetRecommendedTrainersRequiresClientRole(t *testing.T) {
	handler := NewTrainerDiscoveryHandler(&stubTrainerDiscoveryRepo{}, &stubClientDiscoveryRepo{}, &stubTrainerMatchmaker{})

	app := fiber.New()
	app.Use(clientLocals("trainer", "7"))
	app.Get("/api/v1/trainers/recommended", handler.GetRecommendedTrainers)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers/recommended", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestGetTrainerDetailReturnsProfile(t *testing.T) {
	verified := true
	trainerRepo := &stubTrainerDiscoveryRepo{
		detailTrainer: &models.TrainerProfile{
			UserID:             55,
			FullName:           testStrPtr("Trainer Detail"),
			Bio:                testStrPtr("Strength and conditioning"),
			Certifications:     &[]string{"NASM"},
			IsVerified:         &verified,
			TotalReviews:       3,
			OnboardingComplete: true,
		},
	}
	handler := NewTrainerDiscoveryHandler(trainerRepo, &stubClientDiscoveryRepo{}, &stubTrainerMatchmaker{})

	app := fiber.New()
	app.Get("/api/v1/trainers/:id", handler.GetTrainerDetail)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers/55", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Trainer models.TrainerDetailResponse `json:"trainer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if trainerRepo.detailTrainerID != 55 {
		t.Fatalf("expected detail lookup for trainer 55, got %d", trainerRepo.detailTrainerID)
	}
	if body.Trainer.ID != "55" || body.Trainer.Bio != "Strength and conditioning" || !body.Trainer.IsVerified {
		t.Fatalf("unexpected trainer detail: %+v", body.Trainer)
	}
}

func TestGetTrainerDetailReturnsNotFound(t *testing.T) {
	handler := NewTrainerDiscoveryHandler(&stubTrainerDiscoveryRepo{detailErr: pgx.ErrNoRows}, &stubClientDiscoveryRepo{}, &stubTrainerMatchmaker{})

	app := fiber.New()
	app.Get("/api/v1/trainers/:id", handler.GetTrainerDetail)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers/99", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetMatchDetailReturnsBreakdownAndWeights(t *testing.T) {
	clientRepo := &stubClientDiscoveryRepo{profile: &models.ClientProfile{
		PrimaryGoal:   testStrPtr("weight_loss"),
		GoalIntensity: testIntPtr(3),
		TrackingStyle: testStrPtr("daily"),
	}}
	trainerRepo := &stubTrainerDiscoveryRepo{
		detailTrainer: &models.TrainerProfile{
			UserID:             61,
			Focus:              testStrPtr("weight_loss"),
			FocusIntensity:     testIntPtr(3),
			TrackingMethod:     testStrPtr("daily"),
			OnboardingComplete: true,
		},
	}
	handler := NewTrainerDiscoveryHandler(trainerRepo, clientRepo, &stubTrainerMatchmaker{})

	app := fiber.New()
	app.Use(clientLocals("client", "7"))
	app.Get("/api/v1/trainers/:id/match", handler.GetMatchDetail)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers/61/match", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body models.MatchDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if body.Trainer.ID != "61" {
		t.Fatalf("unexpected trainer in match detail: %+v", body.Trainer)
	}
	if body.Breakdown.Goals != 100 {
		t.Fatalf("expected goals 100 in breakdown, got %d", body.Breakdown.Goals)
	}
	if len(body.Weights) != 5 || body.Weights["goals"] != 0.30 {
		t.Fatalf("unexpected weights: %+v", body.Weights)
	}
}
