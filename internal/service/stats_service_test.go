package service

import (
	"context"
	"errors"
	"testing"

	"problem_tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// problemOn builds a minimal problem completed on the given date.
func problemOn(date string, topics ...string) models.Problem {
	return models.Problem{
		ID:            "p-" + date,
		UserID:        "u-1",
		Title:         "t",
		Platform:      "LeetCode",
		Difficulty:    "Easy",
		Topics:        topics,
		DateCompleted: date,
	}
}

func day(offset int) string {
	return fixedNow().AddDate(0, 0, offset).Format(dateLayout)
}

func TestBuildStats_Empty(t *testing.T) {
	stats := buildStats(nil, fixedNow())

	assert.Equal(t, 0, stats.TotalSolved)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Empty(t, stats.TopicWise)
}

func TestBuildStats_SingleProblemToday(t *testing.T) {
	stats := buildStats([]models.Problem{
		problemOn(day(0), "Arrays", "Hash Table"),
	}, fixedNow())

	require.Equal(t, 1, stats.TotalSolved)
	require.Equal(t, 1, stats.CurrentStreak)
	require.Len(t, stats.TopicWise, 2)
	assert.Equal(t, models.TopicStat{Topic: "Arrays", Count: 1, Percentage: 100.0}, stats.TopicWise[0])
	assert.Equal(t, models.TopicStat{Topic: "Hash Table", Count: 1, Percentage: 100.0}, stats.TopicWise[1])
}

func TestBuildStats_TopicDistribution(t *testing.T) {
	// 3 problems: DP twice, Arrays once. total_solved counts problems,
	// not topic occurrences.
	problems := []models.Problem{
		problemOn(day(0), "DP"),
		problemOn(day(-1), "DP", "Arrays"),
		problemOn(day(-2), "Graphs"),
	}
	stats := buildStats(problems, fixedNow())

	require.Equal(t, 3, stats.TotalSolved)
	require.Len(t, stats.TopicWise, 3)

	// sorted by count descending, first-seen order among ties
	assert.Equal(t, "DP", stats.TopicWise[0].Topic)
	assert.Equal(t, 2, stats.TopicWise[0].Count)
	assert.InDelta(t, 66.7, stats.TopicWise[0].Percentage, 1e-9)

	assert.Equal(t, "Arrays", stats.TopicWise[1].Topic)
	assert.InDelta(t, 33.3, stats.TopicWise[1].Percentage, 1e-9)
	assert.Equal(t, "Graphs", stats.TopicWise[2].Topic)
}

func TestBuildStats_TopicsAreCaseSensitive(t *testing.T) {
	stats := buildStats([]models.Problem{
		problemOn(day(0), "Arrays"),
		problemOn(day(0), "arrays"),
	}, fixedNow())

	require.Len(t, stats.TopicWise, 2)
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{name: "no problems", dates: nil, want: 0},
		{name: "today only", dates: []string{day(0)}, want: 1},
		{name: "today and yesterday", dates: []string{day(0), day(-1)}, want: 2},
		{name: "gap at yesterday caps streak at 1", dates: []string{day(0), day(-2)}, want: 1},
		{name: "no grace period: yesterday without today is 0", dates: []string{day(-1), day(-2)}, want: 0},
		{name: "duplicates on one day count once", dates: []string{day(0), day(0), day(-1)}, want: 2},
		{name: "unordered input", dates: []string{day(-2), day(0), day(-1)}, want: 3},
		{name: "long run with one hole", dates: []string{day(0), day(-1), day(-2), day(-4), day(-5)}, want: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			problems := make([]models.Problem, 0, len(tt.dates))
			for _, d := range tt.dates {
				problems = append(problems, problemOn(d, "Misc"))
			}
			assert.Equal(t, tt.want, currentStreak(problems, fixedNow()))
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 33.3, round1(100.0/3.0))
	assert.Equal(t, 66.7, round1(200.0/3.0))
	assert.Equal(t, 100.0, round1(100.0))
	assert.Equal(t, 12.5, round1(12.5))
}

func TestStatsService_Get(t *testing.T) {
	repo := &mockProblemRepo{
		ListByUserFn: func(userID string, limit int) ([]models.Problem, error) {
			require.Equal(t, "u-1", userID)
			return []models.Problem{problemOn(day(0), "Arrays")}, nil
		},
	}
	svc := NewStatsService(repo, 1000, fixedNow)

	stats, err := svc.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSolved)
	assert.Equal(t, 1, stats.CurrentStreak)
	// the configured retrieval cap is what reaches the store
	assert.Equal(t, 1000, repo.lastLimit)
}

func TestStatsService_Get_RepoError(t *testing.T) {
	repo := &mockProblemRepo{
		ListByUserFn: func(userID string, limit int) ([]models.Problem, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewStatsService(repo, 1000, fixedNow)

	_, err := svc.Get(context.Background(), "u-1")
	require.Error(t, err)
}
