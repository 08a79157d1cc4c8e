package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jeopardy-server/internal/cache"
)

type fakeLeaderboard struct {
	entries []cache.LeaderboardEntry
	ranks   map[string]int64
}

func (f *fakeLeaderboard) RecordWin(_ context.Context, _ string, _ int) error {
	return nil
}

func (f *fakeLeaderboard) GetTop(_ context.Context, limit int) ([]cache.LeaderboardEntry, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func (f *fakeLeaderboard) GetRank(_ context.Context, username string) (int64, error) {
	if rank, ok := f.ranks[username]; ok {
		return rank, nil
	}
	return -1, nil
}

func leaderboardFixture() *GameHandler {
	return NewGameHandler(nil, &fakeLeaderboard{
		entries: []cache.LeaderboardEntry{
			{Username: "hans", Score: 210, Rank: 1},
			{Username: "gerda", Score: 120, Rank: 2},
			{Username: "computer", Score: 60, Rank: 3},
		},
		ranks: map[string]int64{"hans": 1, "gerda": 2, "computer": 3},
	})
}

func TestLeaderboardTop(t *testing.T) {
	h := leaderboardFixture()

	req := httptest.NewRequest("GET", "/v1/leaderboard?top=2", nil)
	rec := httptest.NewRecorder()
	h.Leaderboard(rec, req)

	require.Equal(t, 200, rec.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "rank", "no rank without a username param")

	var entries []cache.LeaderboardEntry
	require.NoError(t, json.Unmarshal(body["leaderboard"], &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "hans", entries[0].Username)
}

func TestLeaderboardWithRank(t *testing.T) {
	h := leaderboardFixture()

	req := httptest.NewRequest("GET", "/v1/leaderboard?username=gerda", nil)
	rec := httptest.NewRecorder()
	h.Leaderboard(rec, req)

	require.Equal(t, 200, rec.Code)
	var body struct {
		Rank int64 `json:"rank"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Rank)
}

func TestLeaderboardUnrankedUsername(t *testing.T) {
	h := leaderboardFixture()

	req := httptest.NewRequest("GET", "/v1/leaderboard?username=nobody", nil)
	rec := httptest.NewRecorder()
	h.Leaderboard(rec, req)

	require.Equal(t, 200, rec.Code)
	var body struct {
		Rank int64 `json:"rank"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(-1), body.Rank)
}
