package model

import (
	"time"
)

// GameState is the round-progression state of a game session.
type GameState string

const (
	StateRoundStart    GameState = "ROUND_START"
	StateAnswerPending GameState = "ANSWER_PENDING"
	StateGameOver      GameState = "GAME_OVER"
)

// Game is the stateful aggregate for one player session: the board snapshot,
// both players and the current round state. It is owned exclusively by the
// session store; all transitions for one key are serialized there.
type Game struct {
	ID         string      `json:"id"`
	Categories []*Category `json:"categories"`
	Human      *Player     `json:"human"`
	Computer   *Player     `json:"computer"`
	State      GameState   `json:"state"`

	// SelectedQuestionID is set while a round is in flight.
	SelectedQuestionID string `json:"selectedQuestionId,omitempty"`
	// ChosenAnswerIDs holds the human's tentative selection for the
	// current round; cleared when the round resolves.
	ChosenAnswerIDs []string `json:"chosenAnswerIds,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	played    map[string]bool
	questions map[string]*Question
}

// NewGame builds a game session for the given user over a board snapshot.
// Categories without questions are dropped from the board.
func NewGame(id string, user *User, categories []*Category) *Game {
	g := &Game{
		ID:        id,
		Human:     &Player{User: user, Role: RoleHuman},
		Computer:  &Player{User: computerUser(), Role: RoleComputer},
		State:     StateRoundStart,
		CreatedAt: time.Now(),
		played:    make(map[string]bool),
		questions: make(map[string]*Question),
	}
	for _, c := range categories {
		if len(c.Questions) == 0 {
			continue
		}
		g.Categories = append(g.Categories, c)
		for i := range c.Questions {
			q := &c.Questions[i]
			g.questions[q.ID] = q
		}
	}
	return g
}

func computerUser() *User {
	return &User{
		ID:       "computer",
		Username: "computer",
		Gender:   GenderFemale,
	}
}

// IsRoundStart reports whether the board is open for question selection.
func (g *Game) IsRoundStart() bool { return g.State == StateRoundStart }

// IsAnswerPending reports whether a question awaits the human's submission.
func (g *Game) IsAnswerPending() bool { return g.State == StateAnswerPending }

// IsGameOver reports whether the session reached its terminal state.
func (g *Game) IsGameOver() bool { return g.State == StateGameOver }

// ChooseQuestion marks the question as selected and transitions to
// ANSWER_PENDING. Valid only in ROUND_START and only for an unplayed
// question on this board.
func (g *Game) ChooseQuestion(questionID string) error {
	if !g.IsRoundStart() {
		return ErrInvalidTransition
	}
	q, ok := g.questions[questionID]
	if !ok || g.played[q.ID] {
		return ErrQuestionNotOnBoard
	}
	g.SelectedQuestionID = questionID
	g.ChosenAnswerIDs = nil
	g.State = StateAnswerPending
	return nil
}

// SelectedQuestion returns the question currently in flight, or nil.
func (g *Game) SelectedQuestion() *Question {
	if g.SelectedQuestionID == "" {
		return nil
	}
	return g.questions[g.SelectedQuestionID]
}

// QuestionPlayed reports whether a board question has already been played.
func (g *Game) QuestionPlayed(questionID string) bool {
	return g.played[questionID]
}

// ResolveRound applies a scoring outcome to the in-flight round: credits the
// beneficiary, marks the question played, clears the selection and
// transitions back to ROUND_START, or to GAME_OVER when the board is
// exhausted. Valid only in ANSWER_PENDING.
func (g *Game) ResolveRound(out Outcome) error {
	if !g.IsAnswerPending() {
		return ErrInvalidTransition
	}
	switch out.Beneficiary {
	case RoleComputer:
		g.Computer.Score += out.Delta
	default:
		g.Human.Score += out.Delta
	}
	g.played[g.SelectedQuestionID] = true
	g.SelectedQuestionID = ""
	g.ChosenAnswerIDs = nil
	if g.BoardExhausted() {
		g.State = StateGameOver
	} else {
		g.State = StateRoundStart
	}
	return nil
}

// BoardExhausted reports whether every question on the board has been played.
// Derived, never stored.
func (g *Game) BoardExhausted() bool {
	for id := range g.questions {
		if !g.played[id] {
			return false
		}
	}
	return true
}

// Winner returns the player with the higher score. An exact tie goes to the
// human: the computer only scores through steals, so matching it point for
// point should not cost the human the game. Valid only in GAME_OVER.
func (g *Game) Winner() (*Player, error) {
	if !g.IsGameOver() {
		return nil, ErrInvalidTransition
	}
	if g.Computer.Score > g.Human.Score {
		return g.Computer, nil
	}
	return g.Human, nil
}

// Loser returns the opponent of Winner. Valid only in GAME_OVER.
func (g *Game) Loser() (*Player, error) {
	w, err := g.Winner()
	if err != nil {
		return nil, err
	}
	if w == g.Human {
		return g.Computer, nil
	}
	return g.Human, nil
}
