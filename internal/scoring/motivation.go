package scoring

import "github.com/fitmatch-dev/TrainerMatchBack/internal/models"

// toneCompat scores adjacent coaching tones as workable. strict and
// encouraging are opposite styles and score 0 together.
var toneCompat = map[string]int{
	"balanced|strict":      70,
	"balanced|encouraging": 70,
}

// motivationScore weighs tone compatibility (0.4), energy alignment (0.4)
// and motivation-type match (0.2). An unstated tone zeroes the tone term,
// same as an unstated goal in goalsScore.
func motivationScore(client *models.ClientProfile, trainer *models.TrainerProfile) int {
	toneMatch := 0
	clientTone, clientOK := enumValue(client.CoachingTone, coachingTones)
	trainerTone, trainerOK := enumValue(trainer.CoachingTone, coachingTones)
	if clientOK && trainerOK {
		toneMatch = compatLookup(toneCompat, clientTone, trainerTone)
	}

	energyAlign := 50
	if clientEnergy, ok := ordinalValue(client.EnergyLevel); ok {
		if trainerEnergy, ok := ordinalValue(trainer.EnergyLevel); ok {
			energyAlign = floorAt0(100 - 20*absDiff(clientEnergy, trainerEnergy))
		}
	}

	typeMatch := 50
	clientType, clientOK := enumValue(client.MotivationType, motivationTypes)
	trainerType, trainerOK := enumValue(trainer.MotivationStyle, motivationTypes)
	if clientOK && trainerOK && clientType == trainerType {
		typeMatch = 100
	}

	return roundScore(0.4*float64(toneMatch) + 0.4*float64(energyAlign) + 0.2*float64(typeMatch))
}
