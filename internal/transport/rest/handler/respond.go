package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"jeopardy-server/internal/model"
	"jeopardy-server/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeGameError maps the game error taxonomy onto HTTP statuses. Invalid
// transitions are conflicts the client recovers from by re-fetching state.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrUnknownSession):
		writeError(w, http.StatusUnauthorized, "session expired, please log in again")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
