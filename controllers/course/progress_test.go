package courseController

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, percentage(0, 0))
	assert.Equal(t, 0.0, percentage(0, 4))
	assert.Equal(t, 50.0, percentage(1, 2))
	assert.Equal(t, 100.0, percentage(2, 2))
	assert.Equal(t, 33.3, percentage(1, 3))
	assert.Equal(t, 66.7, percentage(2, 3))
}

func TestQuizStepDoneNoAttempt(t *testing.T) {
	assert.False(t, quizStepDone(nil, nil))

	reset := time.Now()
	assert.False(t, quizStepDone(nil, &reset))
}

func TestQuizStepDoneAttemptWithoutMarker(t *testing.T) {
	attempt := time.Now()
	assert.True(t, quizStepDone(&attempt, nil))
}

func TestQuizStepDoneResetOrdering(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	// Attempt at T1, reset at T2: step pending again
	assert.False(t, quizStepDone(&t1, &t2))

	// New attempt at T3 after the T2 reset: completed again
	assert.True(t, quizStepDone(&t3, &t2))

	// Attempt exactly at the reset instant does not count
	assert.False(t, quizStepDone(&t2, &t2))
}

func TestActionableStepIndex(t *testing.T) {
	assert.Equal(t, 0, actionableStepIndex(nil))
	assert.Equal(t, 0, actionableStepIndex([]FlowStep{}))

	allPending := []FlowStep{
		{Status: stepPending},
		{Status: stepPending},
	}
	assert.Equal(t, 0, actionableStepIndex(allPending))

	mixed := []FlowStep{
		{Status: stepCompleted},
		{Status: stepCompleted},
		{Status: stepPending},
		{Status: stepPending},
	}
	assert.Equal(t, 2, actionableStepIndex(mixed))

	allDone := []FlowStep{
		{Status: stepCompleted},
		{Status: stepCompleted},
		{Status: stepCompleted},
	}
	assert.Equal(t, 2, actionableStepIndex(allDone))
}

func TestNumberSteps(t *testing.T) {
	flow := []FlowStep{
		{Type: "course"},
		{Type: "quiz"},
		{Type: "course"},
	}

	numberSteps(flow)

	assert.Equal(t, 1, flow[0].StepNumber)
	assert.Equal(t, 2, flow[1].StepNumber)
	assert.Equal(t, 3, flow[2].StepNumber)
}

// A single-course module with only the handout read sits at 50% with the
// quiz step actionable.
func TestSingleCourseModuleHalfway(t *testing.T) {
	flow := []FlowStep{
		{Type: "course", Status: stepCompleted},
		{Type: "quiz", Status: stepPending},
	}
	numberSteps(flow)

	assert.Equal(t, 50.0, percentage(1, len(flow)))
	assert.Equal(t, 1, actionableStepIndex(flow))
	assert.Equal(t, 2, flow[1].StepNumber)
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "3/5", scoreLabel(3, 5))
	assert.Equal(t, "0/2", scoreLabel(0, 2))
}
