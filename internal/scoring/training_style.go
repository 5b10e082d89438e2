package scoring

import "github.com/fitmatch-dev/TrainerMatchBack/internal/models"

// trainingStyleScore weighs format match (0.5) against pacing (0.3) and
// structure (0.2) alignment. A format mismatch is a soft penalty, not a
// disqualifier: an in-person client can still work with a hybrid trainer.
func trainingStyleScore(client *models.ClientProfile, trainer *models.TrainerProfile) int {
	formatMatch := 50
	clientFormat, clientOK := enumValue(client.TrainingFormat, trainingFormats)
	trainerModality, trainerOK := enumValue(trainer.Modality, trainingFormats)
	if clientOK && trainerOK && clientFormat == trainerModality {
		formatMatch = 100
	}

	pacingAlign := 50
	if clientPacing, ok := ordinalValue(client.PacingPreference); ok {
		if trainerPacing, ok := ordinalValue(trainer.Pacing); ok {
			pacingAlign = floorAt0(100 - 25*absDiff(clientPacing, trainerPacing))
		}
	}

	structureAlign := 50
	if clientStructure, ok := ordinalValue(client.StructurePreference); ok {
		if trainerAdaptability, ok := ordinalValue(trainer.Adaptability); ok {
			structureAlign = floorAt0(100 - 25*absDiff(clientStructure, trainerAdaptability))
		}
	}

	return roundScore(0.5*float64(formatMatch) + 0.3*float64(pacingAlign) + 0.2*float64(structureAlign))
}
