package courseController

import (
	"fmt"
	"math"
	"time"
)

// BookView is the reading-step payload of the module flow.
type BookView struct {
	File         string     `json:"file"`
	DisplayName  string     `json:"display_name"`
	HandoutLabel string     `json:"handout_label"`
	PageRange    string     `json:"page_range"`
	PDFURL       string     `json:"pdf_url"`
	LastReadAt   *time.Time `json:"last_read_at"`
}

// QuizView is the quiz-step payload of the module flow.
type QuizView struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Score          *int       `json:"score"`
	TotalQuestions *int       `json:"total_questions"`
	ScoreLabel     string     `json:"score_label"`
	CompletedAt    *time.Time `json:"completed_at"`
	Attempts       int64      `json:"attempts"`
}

// FlowStep is one step of a module's learning flow.
type FlowStep struct {
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	StepNumber int       `json:"step_number"`
	Title      string    `json:"title"`
	CourseID   uint      `json:"course_id"`
	QuizID     uint      `json:"quiz_id"`
	Book       *BookView `json:"book,omitempty"`
	Quiz       *QuizView `json:"quiz,omitempty"`
}

// CourseView summarizes one course inside a module.
type CourseView struct {
	ID             uint    `json:"id"`
	Title          string  `json:"title"`
	CompletedSteps int     `json:"completed_steps"`
	TotalSteps     int     `json:"total_steps"`
	Percentage     float64 `json:"percentage"`
}

// ProgressView is the completed/total/percentage triple of a module.
type ProgressView struct {
	CompletedSteps int     `json:"completed_steps"`
	TotalSteps     int     `json:"total_steps"`
	Percentage     float64 `json:"percentage"`
}

// ModuleView is one entry of the course_modules response.
type ModuleView struct {
	ID                  uint         `json:"id"`
	Title               string       `json:"title"`
	Dialect             string       `json:"dialect"`
	Summary             string       `json:"summary"`
	Progress            ProgressView `json:"progress"`
	ActionableStepIndex int          `json:"actionable_step_index"`
	Courses             []CourseView `json:"courses"`
	Flow                []FlowStep   `json:"flow"`
}

const (
	stepCompleted = "completed"
	stepPending   = "pending"
)

// percentage rounds completed/total to one decimal. Zero totals count
// as a single pending step, so an empty module reports 0.
func percentage(completed, total int) float64 {
	if total <= 0 {
		total = 1
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

// quizStepDone decides whether a quiz step counts as completed. A reset
// marker hides attempts made at or before its reset time; only a
// strictly later attempt completes the step again.
func quizStepDone(attemptAt *time.Time, resetAt *time.Time) bool {
	if attemptAt == nil {
		return false
	}
	if resetAt == nil {
		return true
	}
	return attemptAt.After(*resetAt)
}

// actionableStepIndex points the UI at the first pending step. Fully
// completed flows land on the last step; empty flows on 0.
func actionableStepIndex(flow []FlowStep) int {
	for i, step := range flow {
		if step.Status != stepCompleted {
			return i
		}
	}
	if len(flow) > 0 {
		return len(flow) - 1
	}
	return 0
}

// numberSteps assigns 1-based step numbers once the flow is final.
func numberSteps(flow []FlowStep) {
	for i := range flow {
		flow[i].StepNumber = i + 1
	}
}

// scoreLabel renders "3/5" for completed quiz steps.
func scoreLabel(score, total int) string {
	return fmt.Sprintf("%d/%d", score, total)
}

func stepStatus(done bool) string {
	if done {
		return stepCompleted
	}
	return stepPending
}
