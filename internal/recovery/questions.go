package recovery

import (
	"strings"

	"github.com/narabid/bidassist/internal/domain"
)

// SecurityQuestions is the fixed ordered list of recovery questions. A
// record's question index points into this list; the list must therefore
// never be reordered, only appended to.
var SecurityQuestions = []string{
	"What is the name of your most memorable teacher?",
	"What was the name of your first pet?",
	"In which city were you born?",
	"What is your favorite food?",
}

// legacyKeyToIndex maps historical free-text question keys to their modern
// index. Kept for records written before question indexes existed.
var legacyKeyToIndex = map[string]int{
	"favorite_teacher": 0,
	"first_pet":        1,
	"birth_city":       2,
	"favorite_food":    3,
}

// ResolveQuestionIndex returns the question index configured on a record,
// accepting either the modern integer index or a recognized legacy key.
// It returns false when neither field resolves to a valid index, in which
// case recovery cannot proceed for that record.
func ResolveQuestionIndex(qa domain.RecoveryQA) (int, bool) {
	if qa.QuestionIndex != nil {
		idx := *qa.QuestionIndex
		if idx >= 0 && idx < len(SecurityQuestions) {
			return idx, true
		}
		// An out-of-range modern index falls through to the legacy key,
		// matching how the slot writer has always resolved it.
	}
	if legacy := strings.TrimSpace(qa.Question); legacy != "" {
		if idx, ok := legacyKeyToIndex[legacy]; ok {
			return idx, true
		}
	}
	return 0, false
}

// normalize prepares free-text fields for comparison: inputs and stored
// values are matched trimmed and case-folded.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
