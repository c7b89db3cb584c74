package quizController

import (
	"testing"

	"pronocoach/models"
	quizValidator "pronocoach/validators/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func question(id uint, optionIDs []uint, correctIdx int) models.Question {
	q := models.Question{Model: gorm.Model{ID: id}, QuizID: 1}
	for i, optID := range optionIDs {
		q.Options = append(q.Options, models.Option{
			Model:      gorm.Model{ID: optID},
			QuestionID: id,
			IsCorrect:  i == correctIdx,
			OrderIndex: i,
		})
	}
	return q
}

func optID(id uint) *uint { return &id }

func TestGradeResponsesAllCorrect(t *testing.T) {
	questions := []models.Question{
		question(1, []uint{10, 11, 12}, 1),
		question(2, []uint{20, 21}, 0),
	}
	responses := []quizValidator.AnswerPayload{
		{QuestionID: 1, OptionID: optID(11)},
		{QuestionID: 2, OptionID: optID(20)},
	}

	score, breakdown := GradeResponses(questions, responses)

	assert.Equal(t, 2, score)
	require.Len(t, breakdown, 2)
	assert.True(t, breakdown[0].IsCorrect)
	assert.True(t, breakdown[1].IsCorrect)
}

func TestGradeResponsesPartialAndUnanswered(t *testing.T) {
	questions := []models.Question{
		question(1, []uint{10, 11}, 0),
		question(2, []uint{20, 21}, 1),
	}
	// Only question 1 answered, and correctly
	responses := []quizValidator.AnswerPayload{
		{QuestionID: 1, OptionID: optID(10)},
	}

	score, breakdown := GradeResponses(questions, responses)

	assert.Equal(t, 1, score)
	require.Len(t, breakdown, 2)

	assert.True(t, breakdown[0].IsCorrect)
	require.NotNil(t, breakdown[0].SelectedOptionID)
	assert.Equal(t, uint(10), *breakdown[0].SelectedOptionID)

	assert.False(t, breakdown[1].IsCorrect)
	assert.Nil(t, breakdown[1].SelectedOptionID)
	require.NotNil(t, breakdown[1].CorrectOptionID)
	assert.Equal(t, uint(21), *breakdown[1].CorrectOptionID)
}

func TestGradeResponsesRejectsCrossQuestionOption(t *testing.T) {
	questions := []models.Question{
		question(1, []uint{10, 11}, 0),
		question(2, []uint{20, 21}, 0),
	}
	// Option 20 belongs to question 2; claiming it for question 1 must
	// not score even though 20 is a correct option somewhere
	responses := []quizValidator.AnswerPayload{
		{QuestionID: 1, OptionID: optID(20)},
	}

	score, breakdown := GradeResponses(questions, responses)

	assert.Equal(t, 0, score)
	assert.Nil(t, breakdown[0].SelectedOptionID)
	assert.False(t, breakdown[0].IsCorrect)
}

func TestGradeResponsesUnknownOptionAndQuestion(t *testing.T) {
	questions := []models.Question{
		question(1, []uint{10, 11}, 0),
	}
	responses := []quizValidator.AnswerPayload{
		{QuestionID: 1, OptionID: optID(999)},
		{QuestionID: 42, OptionID: optID(10)},
		{QuestionID: 1, OptionID: nil},
	}

	score, breakdown := GradeResponses(questions, responses)

	assert.Equal(t, 0, score)
	require.Len(t, breakdown, 1)
	assert.Nil(t, breakdown[0].SelectedOptionID)
}

func TestGradeResponsesDeterministic(t *testing.T) {
	questions := []models.Question{
		question(1, []uint{10, 11, 12}, 2),
		question(2, []uint{20, 21}, 0),
		question(3, []uint{30, 31}, 1),
	}
	responses := []quizValidator.AnswerPayload{
		{QuestionID: 1, OptionID: optID(12)},
		{QuestionID: 2, OptionID: optID(21)},
		{QuestionID: 3, OptionID: optID(31)},
	}

	firstScore, firstBreakdown := GradeResponses(questions, responses)
	for i := 0; i < 5; i++ {
		score, breakdown := GradeResponses(questions, responses)
		assert.Equal(t, firstScore, score)
		assert.Equal(t, firstBreakdown, breakdown)
	}
	assert.Equal(t, 2, firstScore)
}

func TestGradeResponsesFirstFlaggedOptionWins(t *testing.T) {
	q := models.Question{Model: gorm.Model{ID: 1}, QuizID: 1}
	q.Options = []models.Option{
		{Model: gorm.Model{ID: 10}, QuestionID: 1, IsCorrect: false},
		{Model: gorm.Model{ID: 11}, QuestionID: 1, IsCorrect: true},
		{Model: gorm.Model{ID: 12}, QuestionID: 1, IsCorrect: true},
	}

	score, breakdown := GradeResponses([]models.Question{q}, []quizValidator.AnswerPayload{
		{QuestionID: 1, OptionID: optID(12)},
	})

	// Two flagged options; only the first counts as the answer key
	assert.Equal(t, 0, score)
	require.NotNil(t, breakdown[0].CorrectOptionID)
	assert.Equal(t, uint(11), *breakdown[0].CorrectOptionID)
}

func TestGradeResponsesNoCorrectOptionNeverScores(t *testing.T) {
	q := question(1, []uint{10, 11}, -1)

	score, breakdown := GradeResponses([]models.Question{q}, []quizValidator.AnswerPayload{
		{QuestionID: 1, OptionID: optID(10)},
	})

	assert.Equal(t, 0, score)
	assert.Nil(t, breakdown[0].CorrectOptionID)
	assert.False(t, breakdown[0].IsCorrect)
}

func TestBuildQuizModelsForcesFirstOptionCorrect(t *testing.T) {
	payload := &quizValidator.QuizPayload{
		Title: "Cebuano basics",
		Questions: []quizValidator.QuestionPayload{
			{Prompt: "How do you say thank you?", Options: []string{"Salamat", "Maayo"}, CorrectOption: 0},
		},
	}

	quiz := BuildQuizModels(payload)

	require.Len(t, quiz.Questions, 1)
	require.Len(t, quiz.Questions[0].Options, 2)
	assert.True(t, quiz.Questions[0].Options[0].IsCorrect)
	assert.False(t, quiz.Questions[0].Options[1].IsCorrect)
}

func TestBuildQuizModelsHonorsCorrectIndex(t *testing.T) {
	payload := &quizValidator.QuizPayload{
		Title: "Bikol basics",
		Questions: []quizValidator.QuestionPayload{
			{Prompt: "Pick one", Options: []string{"A", "B", "C"}, CorrectOption: 3},
		},
	}

	quiz := BuildQuizModels(payload)

	require.Len(t, quiz.Questions[0].Options, 3)
	assert.False(t, quiz.Questions[0].Options[0].IsCorrect)
	assert.False(t, quiz.Questions[0].Options[1].IsCorrect)
	assert.True(t, quiz.Questions[0].Options[2].IsCorrect)
}
