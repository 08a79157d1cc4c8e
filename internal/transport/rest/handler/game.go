package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"jeopardy-server/internal/cache"
	"jeopardy-server/internal/service"
	"jeopardy-server/internal/transport/rest/middleware"
)

// GameHandler handles the game endpoints.
type GameHandler struct {
	gameSvc     *service.GameService
	leaderboard cache.LeaderboardCache
}

// NewGameHandler creates a new game handler.
func NewGameHandler(gameSvc *service.GameService, leaderboard cache.LeaderboardCache) *GameHandler {
	return &GameHandler{gameSvc: gameSvc, leaderboard: leaderboard}
}

// Current handles GET /v1/game: returns the live game, creating one
// transparently on first access or after expiry.
func (h *GameHandler) Current(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameSvc.CurrentGame(r.Context(),
		middleware.GetSessionKey(r.Context()), middleware.GetUsername(r.Context()))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameView(game))
}

// New handles POST /v1/game/new: discards the current game and starts over.
func (h *GameHandler) New(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameSvc.NewGame(r.Context(),
		middleware.GetSessionKey(r.Context()), middleware.GetUsername(r.Context()))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, gameView(game))
}

// ChooseQuestionRequest is the request body for selecting a question.
type ChooseQuestionRequest struct {
	QuestionID string `json:"questionId"`
}

// Choose handles POST /v1/game/question.
func (h *GameHandler) Choose(w http.ResponseWriter, r *http.Request) {
	var req ChooseQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	game, err := h.gameSvc.ChooseQuestion(r.Context(),
		middleware.GetSessionKey(r.Context()), middleware.GetUsername(r.Context()), req.QuestionID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameView(game))
}

// SubmitAnswersRequest is the request body for answering a question.
type SubmitAnswersRequest struct {
	AnswerIDs []string `json:"answerIds"`
}

// SubmitAnswersResponse carries the round result plus the updated game.
type SubmitAnswersResponse struct {
	Result *service.RoundResult `json:"result"`
	Game   GameView             `json:"game"`
}

// Submit handles POST /v1/game/answers.
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, result, err := h.gameSvc.SubmitAnswers(r.Context(),
		middleware.GetSessionKey(r.Context()), middleware.GetUsername(r.Context()), req.AnswerIDs)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SubmitAnswersResponse{Result: result, Game: gameView(game)})
}

// Result handles GET /v1/game/result: winner and loser of a finished game.
func (h *GameHandler) Result(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameSvc.CurrentGame(r.Context(),
		middleware.GetSessionKey(r.Context()), middleware.GetUsername(r.Context()))
	if err != nil {
		writeGameError(w, err)
		return
	}

	winner, err := game.Winner()
	if err != nil {
		writeGameError(w, err)
		return
	}
	loser, _ := game.Loser()

	writeJSON(w, http.StatusOK, ResultView{
		Winner: playerView(winner),
		Loser:  playerView(loser),
	})
}

// Leaderboard handles GET /v1/leaderboard. An optional username query param
// additionally returns that player's 1-indexed rank (-1 when unranked).
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	top := 20
	if s := r.URL.Query().Get("top"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			top = n
		}
	}

	entries, err := h.leaderboard.GetTop(r.Context(), top)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := map[string]interface{}{"leaderboard": entries}
	if username := r.URL.Query().Get("username"); username != "" {
		rank, err := h.leaderboard.GetRank(r.Context(), username)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp["rank"] = rank
	}

	writeJSON(w, http.StatusOK, resp)
}
