package service

import (
	"jeopardy-server/internal/model"
)

// EvaluatorService decides the outcome of a submitted answer set. Strict
// Jeopardy semantics: the submission must match the canonical correct set
// exactly; extra wrong selections invalidate the answer, and an incorrect
// submission awards the question's value to the computer opponent (the
// steal). Pure and stateless; the game session applies the returned outcome.
type EvaluatorService struct{}

// NewEvaluatorService creates a new evaluator.
func NewEvaluatorService() *EvaluatorService {
	return &EvaluatorService{}
}

// Evaluate compares the submitted answer identifiers against the question's
// correct set and returns the outcome with its point delta and beneficiary.
func (s *EvaluatorService) Evaluate(q *model.Question, submitted []string) model.Outcome {
	want := q.CorrectAnswerIDs()
	got := make(map[string]struct{}, len(submitted))
	for _, id := range submitted {
		got[id] = struct{}{}
	}

	if setsEqual(want, got) {
		return model.Outcome{Correct: true, Delta: q.Value, Beneficiary: model.RoleHuman}
	}
	return model.Outcome{Correct: false, Delta: q.Value, Beneficiary: model.RoleComputer}
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}
