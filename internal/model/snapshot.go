package model

// GameSnapshot is a point-in-time copy of a game session for rendering.
// Players are copied by value and the played set is duplicated; categories
// and questions are shared since they never change after board creation.
// Snapshots must be taken while holding the session's per-key lock — the
// live aggregate itself never leaves the lock.
type GameSnapshot struct {
	ID               string
	State            GameState
	Human            Player
	Computer         Player
	Categories       []*Category
	SelectedQuestion *Question
	ChosenAnswerIDs  []string

	played map[string]bool
}

// Snapshot returns an immutable copy of the current session state.
func (g *Game) Snapshot() *GameSnapshot {
	played := make(map[string]bool, len(g.played))
	for id, done := range g.played {
		played[id] = done
	}
	return &GameSnapshot{
		ID:               g.ID,
		State:            g.State,
		Human:            *g.Human,
		Computer:         *g.Computer,
		Categories:       g.Categories,
		SelectedQuestion: g.SelectedQuestion(),
		ChosenAnswerIDs:  append([]string(nil), g.ChosenAnswerIDs...),
		played:           played,
	}
}

// QuestionPlayed reports whether the question had been played when the
// snapshot was taken.
func (s *GameSnapshot) QuestionPlayed(questionID string) bool {
	return s.played[questionID]
}

// IsGameOver reports whether the snapshot captured the terminal state.
func (s *GameSnapshot) IsGameOver() bool { return s.State == StateGameOver }

// Winner mirrors Game.Winner on the snapshot's copied players.
func (s *GameSnapshot) Winner() (*Player, error) {
	if !s.IsGameOver() {
		return nil, ErrInvalidTransition
	}
	if s.Computer.Score > s.Human.Score {
		return &s.Computer, nil
	}
	return &s.Human, nil
}

// Loser returns the opponent of Winner. Valid only in GAME_OVER.
func (s *GameSnapshot) Loser() (*Player, error) {
	w, err := s.Winner()
	if err != nil {
		return nil, err
	}
	if w == &s.Human {
		return &s.Computer, nil
	}
	return &s.Human, nil
}
