package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jeopardy-server/internal/model"
)

func viewTestGame(t *testing.T) *model.Game {
	t.Helper()
	g := model.NewGame("g_1",
		&model.User{ID: "u_1", Username: "hans"},
		[]*model.Category{
			{
				ID:   "c_1",
				Name: model.LocalizedText{model.LocaleEN: "Movies"},
				Questions: []model.Question{
					{
						ID:    "q_1",
						Text:  model.LocalizedText{model.LocaleEN: "Which of these films were directed by Alfred Hitchcock?"},
						Value: 20,
						Answers: []model.Answer{
							{ID: "1", Text: model.LocalizedText{model.LocaleEN: "Psycho"}, Correct: true},
							{ID: "2", Text: model.LocalizedText{model.LocaleEN: "Alien"}, Correct: false},
						},
					},
					{ID: "q_2", Value: 40, Answers: []model.Answer{{ID: "3", Correct: true}}},
				},
			},
		})
	return g
}

func TestGameViewBoard(t *testing.T) {
	g := viewTestGame(t)
	require.NoError(t, g.ChooseQuestion("q_1"))
	require.NoError(t, g.ResolveRound(model.Outcome{Correct: true, Delta: 20, Beneficiary: model.RoleHuman}))

	view := gameView(g.Snapshot())

	assert.Equal(t, "g_1", view.ID)
	assert.Equal(t, "hans", view.Human.Username)
	assert.Equal(t, 20, view.Human.Score)
	require.Len(t, view.Categories, 1)
	require.Len(t, view.Categories[0].Questions, 2)
	assert.True(t, view.Categories[0].Questions[0].Played)
	assert.False(t, view.Categories[0].Questions[1].Played)
	assert.Nil(t, view.CurrentQuestion, "no question in flight after the round resolved")
}

func TestGameViewHidesCorrectFlags(t *testing.T) {
	g := viewTestGame(t)
	require.NoError(t, g.ChooseQuestion("q_1"))

	view := gameView(g.Snapshot())
	require.NotNil(t, view.CurrentQuestion)
	require.Len(t, view.CurrentQuestion.Answers, 2)

	// Render to JSON the way the handler does and make sure no correctness
	// marker leaks to the client.
	rec := httptest.NewRecorder()
	writeJSON(rec, 200, view)
	assert.NotContains(t, rec.Body.String(), "correct")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
}

func TestWriteGameErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid transition", model.ErrInvalidTransition, 409},
		{"question not on board", model.ErrQuestionNotOnBoard, 409},
		{"unknown session", model.ErrUnknownSession, 401},
		{"anything else", assert.AnError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeGameError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
