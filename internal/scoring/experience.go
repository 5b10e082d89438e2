package scoring

import "github.com/fitmatch-dev/TrainerMatchBack/internal/models"

// experienceScore has a single signal, so unlike the other dimensions it
// returns a flat neutral 50 when either side left years unanswered rather
// than defaulting term by term.
func experienceScore(client *models.ClientProfile, trainer *models.TrainerProfile) int {
	clientYears, clientOK := yearsValue(client.ExperienceYears)
	trainerYears, trainerOK := yearsValue(trainer.ExperienceYears)
	if !clientOK || !trainerOK {
		return 50
	}
	return floorAt0(100 - 10*absDiff(clientYears, trainerYears))
}
