package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jeopardy-server/internal/cache"
	"jeopardy-server/internal/model"
	"jeopardy-server/internal/repository"
)

// CategoryLimit caps how many categories one board carries. When the catalog
// is larger, a uniformly random subset of this size is sampled.
const CategoryLimit = 5

// GameService drives the game session state machine: one authoritative
// in-memory game per session key, all transitions serialized per key by the
// store's lock.
type GameService struct {
	users       repository.UserRepo
	categories  repository.CategoryRepo
	store       cache.GameStore
	evaluator   *EvaluatorService
	highscore   HighscoreClient
	social      SocialClient
	leaderboard cache.LeaderboardCache
	broadcaster Broadcaster
	rng         *rand.Rand
	log         zerolog.Logger

	categoryLimit int
}

// NewGameService creates a new game service. A nil rng falls back to a
// time-seeded source.
func NewGameService(
	users repository.UserRepo,
	categories repository.CategoryRepo,
	store cache.GameStore,
	evaluator *EvaluatorService,
	highscore HighscoreClient,
	social SocialClient,
	leaderboard cache.LeaderboardCache,
	rng *rand.Rand,
	log zerolog.Logger,
) *GameService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameService{
		users:         users,
		categories:    categories,
		store:         store,
		evaluator:     evaluator,
		highscore:     highscore,
		social:        social,
		leaderboard:   leaderboard,
		rng:           rng,
		log:           log,
		categoryLimit: CategoryLimit,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events.
func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// RoundResult summarizes one resolved round for clients.
type RoundResult struct {
	QuestionID  string          `json:"questionId"`
	Correct     bool            `json:"correct"`
	Delta       int             `json:"delta"`
	Beneficiary model.Role      `json:"beneficiary"`
	State       model.GameState `json:"state"`
}

// CurrentGame returns the game for the session key, transparently creating a
// fresh one when the store has no entry (first play or expired session).
// Indistinguishable from starting a brand-new game. The returned snapshot is
// taken under the per-key lock; the live aggregate never escapes it.
func (s *GameService) CurrentGame(ctx context.Context, sessionKey, username string) (*model.GameSnapshot, error) {
	unlock := s.store.Lock(sessionKey)
	defer unlock()
	game, err := s.currentLocked(ctx, sessionKey, username)
	if err != nil {
		return nil, err
	}
	return game.Snapshot(), nil
}

// NewGame discards any cached game and builds a fresh board.
func (s *GameService) NewGame(ctx context.Context, sessionKey, username string) (*model.GameSnapshot, error) {
	unlock := s.store.Lock(sessionKey)
	defer unlock()
	s.store.Delete(sessionKey)
	game, err := s.createGame(ctx, sessionKey, username)
	if err != nil {
		return nil, err
	}
	return game.Snapshot(), nil
}

// ChooseQuestion selects an unplayed board question for the current round.
func (s *GameService) ChooseQuestion(ctx context.Context, sessionKey, username, questionID string) (*model.GameSnapshot, error) {
	unlock := s.store.Lock(sessionKey)
	defer unlock()

	game, err := s.currentLocked(ctx, sessionKey, username)
	if err != nil {
		return nil, err
	}
	if err := game.ChooseQuestion(questionID); err != nil {
		return nil, err
	}

	s.log.Info().Str("session", sessionKey).Str("user", username).
		Str("question", questionID).Msg("question selected")

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionKey, "question_selected", map[string]interface{}{
			"questionId": questionID,
		})
	}
	return game.Snapshot(), nil
}

// SubmitAnswers resolves the in-flight round: evaluates the submission,
// applies the score delta, marks the question played and advances the state
// machine. Reaching GAME_OVER triggers the best-effort external side effects
// asynchronously; their failure never touches the terminal game.
func (s *GameService) SubmitAnswers(ctx context.Context, sessionKey, username string, answerIDs []string) (*model.GameSnapshot, *RoundResult, error) {
	unlock := s.store.Lock(sessionKey)
	defer unlock()

	game, err := s.currentLocked(ctx, sessionKey, username)
	if err != nil {
		return nil, nil, err
	}
	if !game.IsAnswerPending() {
		return nil, nil, model.ErrInvalidTransition
	}

	question := game.SelectedQuestion()
	outcome := s.evaluator.Evaluate(question, answerIDs)
	game.ChosenAnswerIDs = answerIDs
	if err := game.ResolveRound(outcome); err != nil {
		return nil, nil, err
	}

	result := &RoundResult{
		QuestionID:  question.ID,
		Correct:     outcome.Correct,
		Delta:       outcome.Delta,
		Beneficiary: outcome.Beneficiary,
		State:       game.State,
	}

	s.log.Info().Str("session", sessionKey).Str("user", username).
		Str("question", question.ID).Bool("correct", outcome.Correct).
		Int("humanScore", game.Human.Score).Int("computerScore", game.Computer.Score).
		Msg("answers submitted")

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionKey, "round_scored", result)
	}

	if game.IsGameOver() {
		winner, _ := game.Winner()
		loser, _ := game.Loser()
		record := model.HighscoreRecordFrom(winner, loser)
		go s.finishGame(sessionKey, username, winner.User.Username, winner.Score, record)
	}
	return game.Snapshot(), result, nil
}

func (s *GameService) currentLocked(ctx context.Context, sessionKey, username string) (*model.Game, error) {
	if game, ok := s.store.Get(sessionKey); ok {
		return game, nil
	}
	return s.createGame(ctx, sessionKey, username)
}

// createGame samples the board and caches the fresh game. Categories with no
// usable questions are omitted rather than aborting creation.
func (s *GameService) createGame(ctx context.Context, sessionKey, username string) (*model.Game, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Session key still valid but the backing account vanished.
		return nil, model.ErrUnknownSession
	}

	all, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	usable := all[:0]
	for _, c := range all {
		if len(c.Questions) > 0 {
			usable = append(usable, c)
		}
	}
	if len(usable) > s.categoryLimit {
		s.rng.Shuffle(len(usable), func(i, j int) {
			usable[i], usable[j] = usable[j], usable[i]
		})
		usable = usable[:s.categoryLimit]
	}

	game := model.NewGame("g_"+uuid.New().String()[:8], user, usable)
	s.store.Put(sessionKey, game)

	s.log.Info().Str("session", sessionKey).Str("user", username).
		Int("categories", len(game.Categories)).Msg("created new game")
	return game, nil
}

// finishGame runs the game-over collaborators: highscore submission first,
// social notification only when a non-empty token came back, leaderboard
// last. Every step is best-effort; failures are logged and never roll back
// the terminal game state.
func (s *GameService) finishGame(sessionKey, username, winnerName string, winnerScore int, record model.HighscoreRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	token := ""
	if s.highscore != nil {
		var err error
		token, err = s.highscore.Submit(ctx, record)
		if err != nil {
			s.log.Error().Err(err).Str("session", sessionKey).Msg("highscore submission failed")
			token = ""
		}
	}

	if token != "" && s.social != nil {
		msg := model.SocialMessage{Username: username, Token: token, Timestamp: time.Now()}
		if err := s.social.Publish(ctx, msg); err != nil {
			s.log.Error().Err(err).Str("session", sessionKey).Msg("social notification failed")
		}
	}

	if s.leaderboard != nil {
		if err := s.leaderboard.RecordWin(ctx, winnerName, winnerScore); err != nil {
			s.log.Error().Err(err).Str("session", sessionKey).Msg("leaderboard update failed")
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionKey, "game_over", map[string]interface{}{
			"winner": winnerName,
			"token":  token,
		})
	}
}
