package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jeopardy-server/internal/model"
)

func TestEvaluate(t *testing.T) {
	question := &model.Question{
		ID:    "q_1",
		Value: 30,
		Answers: []model.Answer{
			{ID: "1", Correct: true},
			{ID: "2", Correct: true},
			{ID: "3", Correct: false},
			{ID: "4", Correct: false},
		},
	}
	evaluator := NewEvaluatorService()

	tests := []struct {
		name        string
		submitted   []string
		correct     bool
		beneficiary model.Role
	}{
		{"exact match", []string{"1", "2"}, true, model.RoleHuman},
		{"exact match order-independent", []string{"2", "1"}, true, model.RoleHuman},
		{"duplicate ids collapse", []string{"1", "2", "1"}, true, model.RoleHuman},
		{"missing correct answer", []string{"1"}, false, model.RoleComputer},
		{"extra wrong answer", []string{"1", "2", "3"}, false, model.RoleComputer},
		{"only wrong answers", []string{"3", "4"}, false, model.RoleComputer},
		{"empty submission", nil, false, model.RoleComputer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evaluator.Evaluate(question, tt.submitted)
			assert.Equal(t, tt.correct, out.Correct)
			assert.Equal(t, tt.beneficiary, out.Beneficiary)
			assert.Equal(t, 30, out.Delta, "delta is always the question value")
		})
	}
}
