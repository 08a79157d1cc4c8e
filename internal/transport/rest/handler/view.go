package handler

import (
	"jeopardy-server/internal/model"
)

// View DTOs rendered to clients. The pending question's answers never carry
// their correct flags — revealing them would let the client cheat.

// PlayerView is one side of the scoreboard.
type PlayerView struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	Score    int        `json:"score"`
}

// BoardQuestionView is a board tile.
type BoardQuestionView struct {
	ID     string `json:"id"`
	Value  int    `json:"value"`
	Played bool   `json:"played"`
}

// CategoryView is one board column.
type CategoryView struct {
	ID        string              `json:"id"`
	Name      model.LocalizedText `json:"name"`
	Questions []BoardQuestionView `json:"questions"`
}

// AnswerView is a selectable choice without its correct flag.
type AnswerView struct {
	ID   string              `json:"id"`
	Text model.LocalizedText `json:"text"`
}

// QuestionView is the question currently awaiting submission.
type QuestionView struct {
	ID      string              `json:"id"`
	Text    model.LocalizedText `json:"text"`
	Value   int                 `json:"value"`
	Answers []AnswerView        `json:"answers"`
}

// GameView is the full session state rendered to the client.
type GameView struct {
	ID              string          `json:"id"`
	State           model.GameState `json:"state"`
	Human           PlayerView      `json:"human"`
	Computer        PlayerView      `json:"computer"`
	Categories      []CategoryView  `json:"categories"`
	CurrentQuestion *QuestionView   `json:"currentQuestion,omitempty"`
}

// ResultView is the terminal outcome of a finished game.
type ResultView struct {
	Winner PlayerView `json:"winner"`
	Loser  PlayerView `json:"loser"`
}

func playerView(p *model.Player) PlayerView {
	return PlayerView{
		Username: p.User.Username,
		Role:     p.Role,
		Score:    p.Score,
	}
}

// gameView renders a session snapshot taken under the store's per-key lock;
// the handler never sees the live aggregate.
func gameView(g *model.GameSnapshot) GameView {
	view := GameView{
		ID:       g.ID,
		State:    g.State,
		Human:    playerView(&g.Human),
		Computer: playerView(&g.Computer),
	}

	for _, c := range g.Categories {
		cv := CategoryView{ID: c.ID, Name: c.Name}
		for _, q := range c.Questions {
			cv.Questions = append(cv.Questions, BoardQuestionView{
				ID:     q.ID,
				Value:  q.Value,
				Played: g.QuestionPlayed(q.ID),
			})
		}
		view.Categories = append(view.Categories, cv)
	}

	if q := g.SelectedQuestion; q != nil {
		qv := &QuestionView{ID: q.ID, Text: q.Text, Value: q.Value}
		for _, a := range q.Answers {
			qv.Answers = append(qv.Answers, AnswerView{ID: a.ID, Text: a.Text})
		}
		view.CurrentQuestion = qv
	}
	return view
}
