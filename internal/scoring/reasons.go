package scoring

import "github.com/fitmatch-dev/TrainerMatchBack/internal/models"

const (
	strongThreshold = 80
	weakThreshold   = 30
	lowConfidence   = 0.5
)

// buildReasons turns a breakdown into stable tags the display layer maps to
// copy. Order is fixed: hard blocks first, then dimensions in weight order,
// then the confidence caveat.
func buildReasons(client *models.ClientProfile, trainer *models.TrainerProfile, b models.ScoreBreakdown) []string {
	reasons := make([]string, 0, 4)

	if cause, blocked := logisticsHardBlock(client, trainer); blocked {
		reasons = append(reasons, cause)
	}

	reasons = appendStrength(reasons, b.Goals, "goal_alignment")
	reasons = appendStrength(reasons, b.TrainingStyle, "style_fit")
	reasons = appendStrength(reasons, b.Motivation, "motivation_fit")
	reasons = appendStrength(reasons, b.Experience, "experience_fit")
	reasons = appendStrength(reasons, b.Logistics, "logistics_fit")

	if b.Confidence < lowConfidence {
		reasons = append(reasons, "low_data_confidence")
	}

	return reasons
}

func appendStrength(reasons []string, score int, dimension string) []string {
	switch {
	case score >= strongThreshold:
		return append(reasons, "strong_"+dimension)
	case score <= weakThreshold:
		return append(reasons, "weak_"+dimension)
	default:
		return reasons
	}
}
