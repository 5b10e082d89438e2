package scoring

import (
	"reflect"
	"testing"

	"github.com/fitmatch-dev/TrainerMatchBack/internal/models"
)

func strPtr(value string) *string { return &value }
func intPtr(value int) *int       { return &value }

func matchedClientProfile() *models.ClientProfile {
	return &models.ClientProfile{
		PrimaryGoal:             strPtr("weight_loss"),
		GoalIntensity:           intPtr(3),
		TrackingStyle:           strPtr("daily"),
		TrainingFormat:          strPtr("online"),
		PacingPreference:        intPtr(3),
		StructurePreference:     intPtr(4),
		CoachingTone:            strPtr("balanced"),
		EnergyLevel:             intPtr(4),
		MotivationType:          strPtr("intrinsic"),
		ExperienceYears:         intPtr(2),
		WeeklyAvailabilityHours: intPtr(6),
		Location:                strPtr("berlin"),
		BudgetTier:              strPtr("standard"),
		Language:                strPtr("english"),
	}
}

func matchedTrainerProfile() *models.TrainerProfile {
	return &models.TrainerProfile{
		Focus:           strPtr("weight_loss"),
		FocusIntensity:  intPtr(3),
		TrackingMethod:  strPtr("daily"),
		Modality:        strPtr("online"),
		Pacing:          intPtr(3),
		Adaptability:    intPtr(4),
		CoachingTone:    strPtr("balanced"),
		EnergyLevel:     intPtr(4),
		MotivationStyle: strPtr("intrinsic"),
		ExperienceYears: intPtr(2),
		Location:        strPtr("berlin"),
		RateTier:        strPtr("standard"),
		Language:        strPtr("english"),
	}
}

func TestScorePerfectlyMatchedProfiles(t *testing.T) {
	breakdown := Score(matchedClientProfile(), matchedTrainerProfile())

	if breakdown.Goals != 100 {
		t.Fatalf("expected goals 100, got %d", breakdown.Goals)
	}
	if breakdown.TrainingStyle != 100 || breakdown.Motivation != 100 ||
		breakdown.Experience != 100 || breakdown.Logistics != 100 {
		t.Fatalf("expected all sub-scores 100, got %+v", breakdown)
	}
	if breakdown.Global != 100 {
		t.Fatalf("expected global 100, got %d", breakdown.Global)
	}
	if breakdown.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %f", breakdown.Confidence)
	}
}

func TestScoreEmptyProfilesStillProducesFullBreakdown(t *testing.T) {
	breakdown := Score(&models.ClientProfile{}, &models.TrainerProfile{})

	if breakdown.Goals != 20 {
		t.Fatalf("expected goals default 20, got %d", breakdown.Goals)
	}
	if breakdown.TrainingStyle != 50 {
		t.Fatalf("expected training style default 50, got %d", breakdown.TrainingStyle)
	}
	if breakdown.Motivation != 30 {
		t.Fatalf("expected motivation default 30, got %d", breakdown.Motivation)
	}
	if breakdown.Experience != 50 {
		t.Fatalf("expected experience default 50, got %d", breakdown.Experience)
	}
	if breakdown.Logistics != 0 {
		t.Fatalf("expected logistics default 0, got %d", breakdown.Logistics)
	}
	if breakdown.Global != 32 {
		t.Fatalf("expected global 32, got %d", breakdown.Global)
	}
	if breakdown.Confidence != 0 {
		t.Fatalf("expected confidence 0, got %f", breakdown.Confidence)
	}
}

func TestScoreNilProfilesMatchEmptyProfiles(t *testing.T) {
	fromNil := Score(nil, nil)
	fromEmpty := Score(&models.ClientProfile{}, &models.TrainerProfile{})
	if !reflect.DeepEqual(fromNil, fromEmpty) {
		t.Fatalf("nil profiles scored %+v, empty profiles scored %+v", fromNil, fromEmpty)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	client := matchedClientProfile()
	client.CoachingTone = strPtr("strict")
	trainer := matchedTrainerProfile()
	trainer.Location = strPtr("virtual")

	first := Score(client, trainer)
	second := Score(client, trainer)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs scored differently: %+v vs %+v", first, second)
	}
}

func TestScoreBoundsHoldForPartialProfiles(t *testing.T) {
	clients := []*models.ClientProfile{
		{},
		{PrimaryGoal: strPtr("performance"), GoalIntensity: intPtr(5)},
		{WeeklyAvailabilityHours: intPtr(0)},
		{TrainerGenderPreference: strPtr("female"), Language: strPtr("german")},
		{PrimaryGoal: strPtr("not_a_goal"), GoalIntensity: intPtr(9)},
		matchedClientProfile(),
	}
	trainers := []*models.TrainerProfile{
		{},
		{Focus: strPtr("general_health"), ExperienceYears: intPtr(20)},
		{Gender: strPtr("male"), Location: strPtr("virtual")},
		matchedTrainerProfile(),
	}

	for _, client := range clients {
		for _, trainer := range trainers {
			breakdown := Score(client, trainer)
			for name, score := range map[string]int{
				"goals":          breakdown.Goals,
				"training_style": breakdown.TrainingStyle,
				"motivation":     breakdown.Motivation,
				"experience":     breakdown.Experience,
				"logistics":      breakdown.Logistics,
				"global":         breakdown.Global,
			} {
				if score < 0 || score > 100 {
					t.Fatalf("%s out of bounds: %d (breakdown %+v)", name, score, breakdown)
				}
			}
			if breakdown.Confidence < 0 || breakdown.Confidence > 1 {
				t.Fatalf("confidence out of bounds: %f", breakdown.Confidence)
			}
		}
	}
}

func TestAggregateMatchesWeightedSum(t *testing.T) {
	cases := []struct {
		breakdown models.ScoreBreakdown
		expected  int
	}{
		{models.ScoreBreakdown{Goals: 100, TrainingStyle: 100, Motivation: 100, Experience: 100, Logistics: 100}, 100},
		{models.ScoreBreakdown{Goals: 100, TrainingStyle: 100, Motivation: 100, Experience: 100, Logistics: 0}, 90},
		{models.ScoreBreakdown{Goals: 20, TrainingStyle: 50, Motivation: 30, Experience: 50, Logistics: 0}, 32},
		{models.ScoreBreakdown{Goals: 62, TrainingStyle: 75, Motivation: 48, Experience: 50, Logistics: 80}, 62},
		{models.ScoreBreakdown{}, 0},
	}

	for _, tc := range cases {
		if got := aggregate(tc.breakdown); got != tc.expected {
			t.Fatalf("aggregate(%+v) = %d, expected %d", tc.breakdown, got, tc.expected)
		}
	}
}

func TestHardZeroLogisticsOnlyDiscountsGlobal(t *testing.T) {
	client := matchedClientProfile()
	client.WeeklyAvailabilityHours = intPtr(0)

	breakdown := Score(client, matchedTrainerProfile())
	if breakdown.Logistics != 0 {
		t.Fatalf("expected logistics 0 with zero availability, got %d", breakdown.Logistics)
	}
	if breakdown.Goals != 100 || breakdown.TrainingStyle != 100 {
		t.Fatalf("other dimensions should be unaffected, got %+v", breakdown)
	}
	if breakdown.Global != 90 {
		t.Fatalf("expected global 90 (logistics weight only), got %d", breakdown.Global)
	}
}

func TestCompatibilityTablesAreSymmetric(t *testing.T) {
	for a := range goals {
		for b := range goals {
			if compatLookup(goalCompat, a, b) != compatLookup(goalCompat, b, a) {
				t.Fatalf("goal compatibility not symmetric for %s and %s", a, b)
			}
		}
	}
	for a := range coachingTones {
		for b := range coachingTones {
			if compatLookup(toneCompat, a, b) != compatLookup(toneCompat, b, a) {
				t.Fatalf("tone compatibility not symmetric for %s and %s", a, b)
			}
		}
	}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, weight := range Weights() {
		sum += weight
	}
	if sum != 1.0 {
		t.Fatalf("expected weights to sum to 1.0, got %f", sum)
	}
}

func TestScoreEmptyProfilesReasons(t *testing.T) {
	breakdown := Score(&models.ClientProfile{}, &models.TrainerProfile{})
	expected := []string{"weak_goal_alignment", "weak_motivation_fit", "weak_logistics_fit", "low_data_confidence"}
	if !reflect.DeepEqual(breakdown.Reasons, expected) {
		t.Fatalf("expected reasons %v, got %v", expected, breakdown.Reasons)
	}
}

func TestScoreHardBlockReasonComesFirst(t *testing.T) {
	client := matchedClientProfile()
	client.TrainerGenderPreference = strPtr("female")
	trainer := matchedTrainerProfile()
	trainer.Gender = strPtr("male")

	breakdown := Score(client, trainer)
	if breakdown.Logistics != 0 {
		t.Fatalf("expected logistics 0 on gender conflict, got %d", breakdown.Logistics)
	}
	if len(breakdown.Reasons) == 0 || breakdown.Reasons[0] != "gender_preference_conflict" {
		t.Fatalf("expected gender_preference_conflict first, got %v", breakdown.Reasons)
	}
}
