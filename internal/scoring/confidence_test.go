package scoring

import (
	"testing"

	"github.com/fitmatch-dev/TrainerMatchBack/internal/models"
)

func TestConfidenceFullProfilesScoreOne(t *testing.T) {
	if got := confidenceScore(matchedClientProfile(), matchedTrainerProfile()); got != 1.0 {
		t.Fatalf("expected confidence 1.0, got %f", got)
	}
}

func TestConfidenceEmptyProfilesScoreZero(t *testing.T) {
	if got := confidenceScore(&models.ClientProfile{}, &models.TrainerProfile{}); got != 0 {
		t.Fatalf("expected confidence 0, got %f", got)
	}
}

func TestConfidenceNeverIncreasesWhenAnswersAreRemoved(t *testing.T) {
	base := confidenceScore(matchedClientProfile(), matchedTrainerProfile())

	clearers := map[string]func(*models.ClientProfile, *models.TrainerProfile){
		"client_goal":       func(c *models.ClientProfile, _ *models.TrainerProfile) { c.PrimaryGoal = nil },
		"client_intensity":  func(c *models.ClientProfile, _ *models.TrainerProfile) { c.GoalIntensity = nil },
		"client_tracking":   func(c *models.ClientProfile, _ *models.TrainerProfile) { c.TrackingStyle = nil },
		"client_format":     func(c *models.ClientProfile, _ *models.TrainerProfile) { c.TrainingFormat = nil },
		"client_tone":       func(c *models.ClientProfile, _ *models.TrainerProfile) { c.CoachingTone = nil },
		"client_location":   func(c *models.ClientProfile, _ *models.TrainerProfile) { c.Location = nil },
		"client_budget":     func(c *models.ClientProfile, _ *models.TrainerProfile) { c.BudgetTier = nil },
		"trainer_focus":     func(_ *models.ClientProfile, tr *models.TrainerProfile) { tr.Focus = nil },
		"trainer_modality":  func(_ *models.ClientProfile, tr *models.TrainerProfile) { tr.Modality = nil },
		"trainer_years":     func(_ *models.ClientProfile, tr *models.TrainerProfile) { tr.ExperienceYears = nil },
		"trainer_language":  func(_ *models.ClientProfile, tr *models.TrainerProfile) { tr.Language = nil },
		"trainer_rate_tier": func(_ *models.ClientProfile, tr *models.TrainerProfile) { tr.RateTier = nil },
	}

	for name, clear := range clearers {
		client := matchedClientProfile()
		trainer := matchedTrainerProfile()
		clear(client, trainer)
		if got := confidenceScore(client, trainer); got >= base {
			t.Fatalf("removing %s did not lower confidence: %f >= %f", name, got, base)
		}
	}
}

func TestConfidenceTreatsMalformedAnswersAsMissing(t *testing.T) {
	client := matchedClientProfile()
	client.PrimaryGoal = strPtr("something_else")
	client.GoalIntensity = intPtr(11)

	withMalformed := confidenceScore(client, matchedTrainerProfile())

	client.PrimaryGoal = nil
	client.GoalIntensity = nil
	withMissing := confidenceScore(client, matchedTrainerProfile())

	if withMalformed != withMissing {
		t.Fatalf("malformed answers scored %f, missing answers scored %f", withMalformed, withMissing)
	}
}

func TestConfidenceIgnoresOptionalGenderPreference(t *testing.T) {
	client := matchedClientProfile()
	base := confidenceScore(client, matchedTrainerProfile())

	client.TrainerGenderPreference = strPtr("female")
	if got := confidenceScore(client, matchedTrainerProfile()); got != base {
		t.Fatalf("optional gender preference changed confidence: %f vs %f", got, base)
	}
}
