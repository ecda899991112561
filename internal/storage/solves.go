package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSolveNotFound is returned when a solve ID has no matching record.
var ErrSolveNotFound = errors.New("storage: solve not found")

// Solve is one recorded solve: the scramble it started from, the strategy
// used, and the solution the search produced.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Strategy   string
	Scramble   string
	Solution   string
	Steps      int
	Expanded   int
	DurationMs int64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solve and returns its generated ID.
func (r *SolveRepository) Create(s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, strategy, scramble, solution, steps, expanded, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), s.Strategy, s.Scramble, s.Solution, s.Steps, s.Expanded, s.DurationMs)
	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get returns the solve with the given ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, strategy, scramble, solution, steps, expanded, duration_ms
		FROM solves WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSolveNotFound, solveID)
	}
	return s, err
}

// Latest returns the most recently recorded solve.
func (r *SolveRepository) Latest() (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, strategy, scramble, solution, steps, expanded, duration_ms
		FROM solves ORDER BY created_at DESC, solve_id DESC LIMIT 1
	`)

	s, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSolveNotFound
	}
	return s, err
}

// List returns up to limit solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, strategy, scramble, solution, steps, expanded, duration_ms
		FROM solves ORDER BY created_at DESC, solve_id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAt string

	err := row.Scan(&s.SolveID, &createdAt, &s.Strategy, &s.Scramble, &s.Solution, &s.Steps, &s.Expanded, &s.DurationMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan solve: %w", err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &s, nil
}
