package scoring

import "github.com/fitmatch-dev/TrainerMatchBack/internal/models"

const virtualLocation = "virtual"

// Hard-disqualification causes, also surfaced as reason tags.
const (
	blockZeroAvailability         = "zero_availability"
	blockGenderPreferenceMismatch = "gender_preference_conflict"
)

// logisticsScore is the one dimension with hard zeros: zero stated weekly
// availability, or an explicit trainer-gender preference the trainer does
// not satisfy, disqualify regardless of every other answer. Otherwise it
// weighs location (0.5) against budget tier (0.3) and language (0.2),
// both binary.
func logisticsScore(client *models.ClientProfile, trainer *models.TrainerProfile) int {
	if _, blocked := logisticsHardBlock(client, trainer); blocked {
		return 0
	}

	locationMatch := 0
	clientLocation, clientOK := textValue(client.Location)
	trainerLocation, trainerOK := textValue(trainer.Location)
	switch {
	case clientOK && trainerOK && clientLocation == trainerLocation:
		locationMatch = 100
	case (clientOK && clientLocation == virtualLocation) || (trainerOK && trainerLocation == virtualLocation):
		locationMatch = 80
	}

	budgetMatch := 0
	clientBudget, clientOK := enumValue(client.BudgetTier, budgetTiers)
	trainerRate, trainerOK := enumValue(trainer.RateTier, budgetTiers)
	if clientOK && trainerOK && clientBudget == trainerRate {
		budgetMatch = 100
	}

	languageMatch := 0
	clientLanguage, clientOK := textValue(client.Language)
	trainerLanguage, trainerOK := textValue(trainer.Language)
	if clientOK && trainerOK && clientLanguage == trainerLanguage {
		languageMatch = 100
	}

	return roundScore(0.5*float64(locationMatch) + 0.3*float64(budgetMatch) + 0.2*float64(languageMatch))
}

// logisticsHardBlock reports the disqualifying condition, if any. A stated
// zero differs from an unanswered availability question: only the explicit
// zero disqualifies.
func logisticsHardBlock(client *models.ClientProfile, trainer *models.TrainerProfile) (string, bool) {
	if client.WeeklyAvailabilityHours != nil && *client.WeeklyAvailabilityHours == 0 {
		return blockZeroAvailability, true
	}

	preference, prefOK := enumValue(client.TrainerGenderPreference, genders)
	trainerGender, genderOK := enumValue(trainer.Gender, genders)
	if prefOK && genderOK && preference != trainerGender {
		return blockGenderPreferenceMismatch, true
	}

	return "", false
}
