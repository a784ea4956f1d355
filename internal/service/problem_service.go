package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"problem_tracker/internal/models"
	"problem_tracker/internal/repository"

	"github.com/google/uuid"
)

// dateLayout is the calendar-date format of date_completed (no time component).
const dateLayout = "2006-01-02"

// ProblemInput is the caller-supplied part of a problem record.
type ProblemInput struct {
	Title         string
	Platform      string
	Difficulty    string
	Topics        []string
	DateCompleted string
}

type ProblemService struct {
	problems  repository.Problems
	listLimit int
	now       func() time.Time
}

func NewProblemService(problems repository.Problems, listLimit int, now func() time.Time) *ProblemService {
	return &ProblemService{problems: problems, listLimit: listLimit, now: now}
}

// validate rejects malformed input before anything reaches the store.
func (in ProblemInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title is required")
	}
	if strings.TrimSpace(in.Platform) == "" {
		return NewValidationError("platform is required")
	}
	if strings.TrimSpace(in.Difficulty) == "" {
		return NewValidationError("difficulty is required")
	}
	if len(in.Topics) == 0 {
		return NewValidationError("topics must be a non-empty list")
	}
	for _, t := range in.Topics {
		if strings.TrimSpace(t) == "" {
			return NewValidationError("topics must not contain empty strings")
		}
	}
	if _, err := time.Parse(dateLayout, in.DateCompleted); err != nil {
		return NewValidationError("date_completed must be a YYYY-MM-DD date")
	}
	return nil
}

// Create validates the input and persists a new problem owned by userID.
func (s *ProblemService) Create(ctx context.Context, userID string, in ProblemInput) (models.Problem, error) {
	if err := in.validate(); err != nil {
		return models.Problem{}, err
	}

	p := models.Problem{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         in.Title,
		Platform:      in.Platform,
		Difficulty:    in.Difficulty,
		Topics:        in.Topics,
		DateCompleted: in.DateCompleted,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.problems.Create(ctx, p); err != nil {
		return models.Problem{}, err
	}
	return p, nil
}

// List returns the caller's problems, capped at the configured limit.
func (s *ProblemService) List(ctx context.Context, userID string) ([]models.Problem, error) {
	return s.problems.ListByUser(ctx, userID, s.listLimit)
}

// seedProblem is one fixed sample entry; DaysAgo is relative to today.
type seedProblem struct {
	Title      string
	Platform   string
	Difficulty string
	Topics     []string
	DaysAgo    int
}

var seedProblems = []seedProblem{
	{Title: "Two Sum", Platform: "LeetCode", Difficulty: "Easy", Topics: []string{"Arrays", "Hash Table"}, DaysAgo: 5},
	{Title: "Reverse Linked List", Platform: "LeetCode", Difficulty: "Easy", Topics: []string{"Linked List"}, DaysAgo: 4},
	{Title: "Valid Parentheses", Platform: "LeetCode", Difficulty: "Easy", Topics: []string{"Stack", "Strings"}, DaysAgo: 3},
	{Title: "Binary Tree Inorder Traversal", Platform: "LeetCode", Difficulty: "Medium", Topics: []string{"Trees", "DFS"}, DaysAgo: 2},
	{Title: "Longest Palindromic Substring", Platform: "LeetCode", Difficulty: "Medium", Topics: []string{"Strings", "DP"}, DaysAgo: 1},
	{Title: "Merge Two Sorted Lists", Platform: "LeetCode", Difficulty: "Easy", Topics: []string{"Linked List"}, DaysAgo: 0},
	{Title: "Maximum Subarray", Platform: "LeetCode", Difficulty: "Medium", Topics: []string{"Arrays", "DP"}, DaysAgo: 0},
	{Title: "Climbing Stairs", Platform: "LeetCode", Difficulty: "Easy", Topics: []string{"DP"}, DaysAgo: 6},
	{Title: "Roman to Integer", Platform: "Codeforces", Difficulty: "Easy", Topics: []string{"Strings", "Hash Table"}, DaysAgo: 7},
	{Title: "Binary Search", Platform: "Codeforces", Difficulty: "Easy", Topics: []string{"Arrays", "Binary Search"}, DaysAgo: 8},
}

// Seed inserts the fixed sample set for users with an empty journal.
// Idempotent per user: a second call is a no-op.
func (s *ProblemService) Seed(ctx context.Context, userID string) (string, error) {
	n, err := s.problems.CountByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if n > 0 {
		return "User already has problems", nil
	}

	today := s.now().UTC()
	for _, sp := range seedProblems {
		p := models.Problem{
			ID:            uuid.NewString(),
			UserID:        userID,
			Title:         sp.Title,
			Platform:      sp.Platform,
			Difficulty:    sp.Difficulty,
			Topics:        sp.Topics,
			DateCompleted: today.AddDate(0, 0, -sp.DaysAgo).Format(dateLayout),
			CreatedAt:     today,
		}
		if err := s.problems.Create(ctx, p); err != nil {
			return "", fmt.Errorf("seed problem %q: %w", sp.Title, err)
		}
	}
	return fmt.Sprintf("Seeded %d sample problems", len(seedProblems)), nil
}
