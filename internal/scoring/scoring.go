// Package scoring computes the compatibility score between one client
// questionnaire and one trainer questionnaire. Every function here is pure:
// no I/O, no state, and no error paths. Missing or unknown answers degrade
// to documented neutral defaults instead of failing, so any two profiles,
// including completely empty ones, always produce a full breakdown.
package scoring

import (
	"math"

	"github.com/fitmatch-dev/TrainerMatchBack/internal/models"
)

// Dimension weights for the global score. These sum to 1.00 and are fixed;
// changing them changes every headline match percentage in the product.
const (
	weightGoals         = 0.30
	weightTrainingStyle = 0.25
	weightMotivation    = 0.20
	weightExperience    = 0.15
	weightLogistics     = 0.10
)

// Score ranks trainer against client across five dimensions and aggregates
// them into a single 0-100 match score with a data-completeness confidence.
// Either profile may be nil, which scores the same as an empty questionnaire.
func Score(client *models.ClientProfile, trainer *models.TrainerProfile) models.ScoreBreakdown {
	if client == nil {
		client = &models.ClientProfile{}
	}
	if trainer == nil {
		trainer = &models.TrainerProfile{}
	}

	breakdown := models.ScoreBreakdown{
		Goals:         goalsScore(client, trainer),
		TrainingStyle: trainingStyleScore(client, trainer),
		Motivation:    motivationScore(client, trainer),
		Experience:    experienceScore(client, trainer),
		Logistics:     logisticsScore(client, trainer),
		Confidence:    confidenceScore(client, trainer),
	}
	breakdown.Global = aggregate(breakdown)
	breakdown.Reasons = buildReasons(client, trainer, breakdown)
	return breakdown
}

func aggregate(b models.ScoreBreakdown) int {
	return roundScore(weightGoals*float64(b.Goals) +
		weightTrainingStyle*float64(b.TrainingStyle) +
		weightMotivation*float64(b.Motivation) +
		weightExperience*float64(b.Experience) +
		weightLogistics*float64(b.Logistics))
}

// Weights exposes the dimension weights for display alongside a breakdown.
func Weights() map[string]float64 {
	return map[string]float64{
		"goals":          weightGoals,
		"training_style": weightTrainingStyle,
		"motivation":     weightMotivation,
		"experience":     weightExperience,
		"logistics":      weightLogistics,
	}
}

func roundScore(value float64) int {
	return int(math.Round(value))
}

func floorAt0(value int) int {
	if value < 0 {
		return 0
	}
	return value
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
