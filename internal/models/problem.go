package models

import "time"

// Problem is a single problem-completion record owned by one user.
type Problem struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Platform      string    `json:"platform"`   // e.g. LeetCode, Codeforces
	Difficulty    string    `json:"difficulty"` // e.g. Easy, Medium, Hard
	Topics        []string  `json:"topics"`
	DateCompleted string    `json:"date_completed"` // calendar date, YYYY-MM-DD
	CreatedAt     time.Time `json:"created_at"`
}

// TopicStat is the per-topic slice of the frequency distribution.
type TopicStat struct {
	Topic      string  `json:"topic"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // of total solved, 1 decimal
}

// Stats is the derived view over a user's problems. Not stored.
type Stats struct {
	TotalSolved   int         `json:"total_solved"`
	CurrentStreak int         `json:"current_streak"`
	TopicWise     []TopicStat `json:"topic_wise"`
}
