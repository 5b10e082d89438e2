package scoring

import "github.com/fitmatch-dev/TrainerMatchBack/internal/models"

// goalCompat lists the cross-compatible goal pairs worth partial credit.
// Identical goals score 100, unlisted pairs score 0. general_health is
// broad enough to partially serve every focused goal; muscle gain and
// performance training overlap heavily in practice.
var goalCompat = map[string]int{
	"general_health|muscle_gain": 70,
	"general_health|performance": 70,
	"general_health|weight_loss": 70,
	"muscle_gain|performance":    70,
}

// goalsScore weighs primary-goal compatibility (0.6) against intensity
// alignment (0.2) and tracking-style alignment (0.2). A missing goal on
// either side zeroes the goal term: with no goal stated there is nothing
// to align on.
func goalsScore(client *models.ClientProfile, trainer *models.TrainerProfile) int {
	goalMatch := 0
	clientGoal, clientOK := enumValue(client.PrimaryGoal, goals)
	trainerFocus, trainerOK := enumValue(trainer.Focus, goals)
	if clientOK && trainerOK {
		goalMatch = compatLookup(goalCompat, clientGoal, trainerFocus)
	}

	intensityAlign := 50
	if clientIntensity, ok := ordinalValue(client.GoalIntensity); ok {
		if trainerIntensity, ok := ordinalValue(trainer.FocusIntensity); ok {
			intensityAlign = floorAt0(100 - 20*absDiff(clientIntensity, trainerIntensity))
		}
	}

	trackingAlign := 50
	clientTracking, clientOK := enumValue(client.TrackingStyle, trackingStyles)
	trainerTracking, trainerOK := enumValue(trainer.TrackingMethod, trackingStyles)
	if clientOK && trainerOK && clientTracking == trainerTracking {
		trackingAlign = 100
	}

	return roundScore(0.6*float64(goalMatch) + 0.2*float64(intensityAlign) + 0.2*float64(trackingAlign))
}
