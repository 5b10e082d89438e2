package scoring

import "strings"

// Closed answer sets. A value outside its set is treated as unanswered,
// never as a match, so a typo in stored data can only lower a score.
var (
	goals = map[string]struct{}{
		"weight_loss":    {},
		"muscle_gain":    {},
		"performance":    {},
		"general_health": {},
	}

	trackingStyles = map[string]struct{}{
		"daily":     {},
		"weekly":    {},
		"monthly":   {},
		"milestone": {},
	}

	trainingFormats = map[string]struct{}{
		"in_person": {},
		"online":    {},
		"hybrid":    {},
	}

	coachingTones = map[string]struct{}{
		"strict":      {},
		"balanced":    {},
		"encouraging": {},
	}

	motivationTypes = map[string]struct{}{
		"intrinsic":   {},
		"extrinsic":   {},
		"social":      {},
		"data_driven": {},
	}

	budgetTiers = map[string]struct{}{
		"budget":   {},
		"standard": {},
		"premium":  {},
	}

	genders = map[string]struct{}{
		"male":       {},
		"female":     {},
		"non_binary": {},
	}
)

func normalize(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	value = strings.ReplaceAll(value, " ", "_")
	value = strings.ReplaceAll(value, "-", "_")
	return value
}

// enumValue normalizes a pointer answer against its closed set. The second
// return is false when the answer is absent or not a member.
func enumValue(raw *string, set map[string]struct{}) (string, bool) {
	if raw == nil {
		return "", false
	}
	value := normalize(*raw)
	if _, ok := set[value]; !ok {
		return "", false
	}
	return value, true
}

// ordinalValue bounds a 1-5 questionnaire answer. Out-of-range values are
// treated as unanswered, matching the enum policy.
func ordinalValue(raw *int) (int, bool) {
	if raw == nil || *raw < 1 || *raw > 5 {
		return 0, false
	}
	return *raw, true
}

// yearsValue reads a non-negative experience answer.
func yearsValue(raw *int) (int, bool) {
	if raw == nil || *raw < 0 {
		return 0, false
	}
	return *raw, true
}

// textValue reads a free-text answer such as location or language.
func textValue(raw *string) (string, bool) {
	if raw == nil {
		return "", false
	}
	value := normalize(*raw)
	if value == "" {
		return "", false
	}
	return value, true
}

// compatLookup resolves a pair of same-set values against a symmetric
// compatibility table keyed by the sorted pair.
func compatLookup(table map[string]int, a, b string) int {
	if a == b {
		return 100
	}
	if a > b {
		a, b = b, a
	}
	return table[a+"|"+b]
}
