package service

import (
	"context"
	"math"
	"sort"
	"time"

	"problem_tracker/internal/models"
	"problem_tracker/internal/repository"
)

// StatsService derives the topic distribution and daily streak from a
// user's problem list. Nothing here is stored.
type StatsService struct {
	problems  repository.Problems
	listLimit int
	now       func() time.Time
}

func NewStatsService(problems repository.Problems, listLimit int, now func() time.Time) *StatsService {
	return &StatsService{problems: problems, listLimit: listLimit, now: now}
}

// Get computes stats over the caller's problems (bounded by the configured
// retrieval cap).
func (s *StatsService) Get(ctx context.Context, userID string) (models.Stats, error) {
	problems, err := s.problems.ListByUser(ctx, userID, s.listLimit)
	if err != nil {
		return models.Stats{}, err
	}
	return buildStats(problems, s.now().UTC()), nil
}

// buildStats aggregates in a single pass over the problem list.
func buildStats(problems []models.Problem, now time.Time) models.Stats {
	total := len(problems)

	// Topics are free-form strings; "Arrays" and "arrays" are distinct.
	counts := make(map[string]int)
	var firstSeen []string
	for _, p := range problems {
		for _, topic := range p.Topics {
			if _, ok := counts[topic]; !ok {
				firstSeen = append(firstSeen, topic)
			}
			counts[topic]++
		}
	}

	topicWise := make([]models.TopicStat, 0, len(firstSeen))
	for _, topic := range firstSeen {
		count := counts[topic]
		var pct float64
		if total > 0 {
			pct = round1(float64(count) / float64(total) * 100)
		}
		topicWise = append(topicWise, models.TopicStat{
			Topic:      topic,
			Count:      count,
			Percentage: pct,
		})
	}
	// Descending by count; stable keeps first-seen order among ties.
	sort.SliceStable(topicWise, func(i, j int) bool {
		return topicWise[i].Count > topicWise[j].Count
	})

	return models.Stats{
		TotalSolved:   total,
		CurrentStreak: currentStreak(problems, now),
		TopicWise:     topicWise,
	}
}

// currentStreak counts consecutive calendar days ending today (UTC) with at
// least one completion. Duplicate dates count once. There is intentionally
// no grace period: if the most recent date is not today, the streak is 0.
func currentStreak(problems []models.Problem, now time.Time) int {
	seen := make(map[string]struct{}, len(problems))
	dates := make([]string, 0, len(problems))
	for _, p := range problems {
		if _, ok := seen[p.DateCompleted]; ok {
			continue
		}
		seen[p.DateCompleted] = struct{}{}
		dates = append(dates, p.DateCompleted)
	}
	// ISO dates order lexicographically; most recent first.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	today := now.UTC()
	streak := 0
	for i, d := range dates {
		expected := today.AddDate(0, 0, -i).Format(dateLayout)
		if d != expected {
			break
		}
		streak++
	}
	return streak
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
