// internal/extract/validate.go
package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/qaharvest/qaharvest/pkg/types"
)

const (
	minSuitableQuestionLength = 10
	minSuitableAnswerLength   = 20
	suitabilityThreshold      = 0.7
	maxReportedIssues         = 5
)

// ValidateForTraining classifies each QA record against the minimum-quality
// heuristic and gates the whole collection on the suitability ratio. The
// result is informational: a failing report never aborts a run.
func ValidateForTraining(pairs []types.QAPair) types.ValidationReport {
	if len(pairs) == 0 {
		return types.ValidationReport{
			Passed:  false,
			Message: "no data extracted for training",
		}
	}

	suitable := 0
	var issues []string
	for i, pair := range pairs {
		switch {
		case utf8.RuneCountInString(pair.Question) < minSuitableQuestionLength:
			issues = append(issues, fmt.Sprintf("item %d: question too short - %s", i+1, pair.Question))
		case utf8.RuneCountInString(pair.Answer) < minSuitableAnswerLength:
			issues = append(issues, fmt.Sprintf("item %d: answer too short - %s", i+1, pair.Answer))
		case !pair.IsQuestion():
			issues = append(issues, fmt.Sprintf("item %d: question does not end with a question mark - %s", i+1, pair.Question))
		default:
			suitable++
		}
	}

	ratio := float64(suitable) / float64(len(pairs))
	report := types.ValidationReport{
		Total:    len(pairs),
		Suitable: suitable,
		Ratio:    ratio,
		Issues:   issues,
	}

	if ratio < suitabilityThreshold {
		shown := issues
		if len(shown) > maxReportedIssues {
			shown = shown[:maxReportedIssues]
		}
		report.Message = fmt.Sprintf("only %.1f%% of data is suitable for training; issues: %s",
			ratio*100, strings.Join(shown, "; "))
		return report
	}

	report.Passed = true
	report.Message = fmt.Sprintf("%.1f%% of data is suitable for LLM training", ratio*100)
	return report
}
