package quizController

import (
	"pronocoach/models"
	quizValidator "pronocoach/validators/quiz"
)

// GradedAnswer is the per-question outcome of one submission.
type GradedAnswer struct {
	QuestionID       uint  `json:"question_id"`
	SelectedOptionID *uint `json:"selected_option_id"`
	CorrectOptionID  *uint `json:"correct_option_id"`
	IsCorrect        bool  `json:"is_correct"`
}

// GradeResponses scores a submission against the quiz's question set.
// A response whose option does not belong to its claimed question is
// dropped and the question graded as unanswered. The correct option of
// a question is the first one flagged correct.
func GradeResponses(questions []models.Question, responses []quizValidator.AnswerPayload) (int, []GradedAnswer) {
	optionOwner := make(map[uint]uint)
	correctByQuestion := make(map[uint]uint)

	for _, q := range questions {
		for _, opt := range q.Options {
			optionOwner[opt.ID] = q.ID
			if opt.IsCorrect {
				if _, seen := correctByQuestion[q.ID]; !seen {
					correctByQuestion[q.ID] = opt.ID
				}
			}
		}
	}

	selected := make(map[uint]uint)
	for _, r := range responses {
		if r.OptionID == nil {
			continue
		}
		if owner, known := optionOwner[*r.OptionID]; !known || owner != r.QuestionID {
			continue
		}
		selected[r.QuestionID] = *r.OptionID
	}

	score := 0
	breakdown := make([]GradedAnswer, 0, len(questions))
	for _, q := range questions {
		answer := GradedAnswer{QuestionID: q.ID}

		if sel, ok := selected[q.ID]; ok {
			v := sel
			answer.SelectedOptionID = &v
		}
		if correctID, ok := correctByQuestion[q.ID]; ok {
			v := correctID
			answer.CorrectOptionID = &v
			if answer.SelectedOptionID != nil && *answer.SelectedOptionID == correctID {
				answer.IsCorrect = true
				score++
			}
		}

		breakdown = append(breakdown, answer)
	}

	return score, breakdown
}
