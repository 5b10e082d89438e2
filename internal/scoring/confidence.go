package scoring

import "github.com/fitmatch-dev/TrainerMatchBack/internal/models"

// confidenceScore measures how much questionnaire data backed a score, not
// how good the match is. It is the fraction of required answers present and
// valid across both profiles, so removing an answer can only lower it. The
// optional trainer-gender preference does not count against confidence.
func confidenceScore(client *models.ClientProfile, trainer *models.TrainerProfile) float64 {
	answered := 0
	total := 0

	count := func(ok bool) {
		total++
		if ok {
			answered++
		}
	}

	countEnum := func(raw *string, set map[string]struct{}) {
		_, ok := enumValue(raw, set)
		count(ok)
	}
	countOrdinal := func(raw *int) {
		_, ok := ordinalValue(raw)
		count(ok)
	}
	countText := func(raw *string) {
		_, ok := textValue(raw)
		count(ok)
	}

	countEnum(client.PrimaryGoal, goals)
	countOrdinal(client.GoalIntensity)
	countEnum(client.TrackingStyle, trackingStyles)
	countEnum(client.TrainingFormat, trainingFormats)
	countOrdinal(client.PacingPreference)
	countOrdinal(client.StructurePreference)
	countEnum(client.CoachingTone, coachingTones)
	countOrdinal(client.EnergyLevel)
	countEnum(client.MotivationType, motivationTypes)
	count(client.ExperienceYears != nil && *client.ExperienceYears >= 0)
	count(client.WeeklyAvailabilityHours != nil && *client.WeeklyAvailabilityHours >= 0)
	countText(client.Location)
	countEnum(client.BudgetTier, budgetTiers)
	countText(client.Language)

	countEnum(trainer.Focus, goals)
	countOrdinal(trainer.FocusIntensity)
	countEnum(trainer.TrackingMethod, trackingStyles)
	countEnum(trainer.Modality, trainingFormats)
	countOrdinal(trainer.Pacing)
	countOrdinal(trainer.Adaptability)
	countEnum(trainer.CoachingTone, coachingTones)
	countOrdinal(trainer.EnergyLevel)
	countEnum(trainer.MotivationStyle, motivationTypes)
	count(trainer.ExperienceYears != nil && *trainer.ExperienceYears >= 0)
	countText(trainer.Location)
	countEnum(trainer.RateTier, budgetTiers)
	countText(trainer.Language)

	return float64(answered) / float64(total)
}
