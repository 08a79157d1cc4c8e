package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "jeopardy:leaderboard"

// LeaderboardCache handles Redis ZSET operations for the all-time highscore
// list. Members are usernames; scores are the best winning total.
type LeaderboardCache interface {
	RecordWin(ctx context.Context, username string, score int) error
	GetTop(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	GetRank(ctx context.Context, username string) (int64, error)
}

// LeaderboardEntry is a single leaderboard row.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}

type leaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a new leaderboard cache.
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{client: client}
}

// RecordWin stores the score if it beats the member's previous best.
func (c *leaderboardCache) RecordWin(ctx context.Context, username string, score int) error {
	return c.client.ZAddGT(ctx, leaderboardKey, redis.Z{
		Score:  float64(score),
		Member: username,
	}).Err()
}

func (c *leaderboardCache) GetTop(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(results))
	for i, z := range results {
		entries[i] = LeaderboardEntry{
			Username: z.Member.(string),
			Score:    int(z.Score),
			Rank:     i + 1,
		}
	}
	return entries, nil
}

func (c *leaderboardCache) GetRank(ctx context.Context, username string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, leaderboardKey, username).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}
