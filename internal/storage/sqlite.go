// Package storage provides SQLite-based persistence for solved boards and
// play attempts. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/orbs/internal/orbs/core"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Solution is a stored solver result for one board.
type Solution struct {
	ID        int64
	LevelID   string // Empty when the board did not come from a level
	BoardHash uint64 // Board.OrderHash
	BoardKey  string // Board.OrderKey
	Solvable  bool
	Moves     []core.Move
	Expanded  int
	Enqueued  int
	CreatedAt time.Time
}

// Attempt is the outcome of one interactive play session.
type Attempt struct {
	ID        int64
	LevelID   string
	Player    string // SSH user or "local"
	Moves     int
	Hints     int
	Solved    bool
	CreatedAt time.Time
}

// Stats summarizes database contents.
type Stats struct {
	Solutions      int
	Attempts       int
	SolvedAttempts int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solutions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL DEFAULT '',
			board_hash INTEGER NOT NULL,
			board_key BLOB NOT NULL UNIQUE,
			solvable INTEGER NOT NULL,
			moves TEXT NOT NULL,
			move_count INTEGER NOT NULL,
			expanded INTEGER NOT NULL DEFAULT 0,
			enqueued INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solutions_hash ON solutions(board_hash);
		CREATE INDEX IF NOT EXISTS idx_solutions_level ON solutions(level_id);

		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL,
			moves INTEGER NOT NULL,
			hints INTEGER NOT NULL DEFAULT 0,
			solved INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_best ON attempts(level_id, solved, moves);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSolution records a solver result. A board that is already stored is
// overwritten, so the row always reflects the latest search.
func (s *Store) SaveSolution(sol Solution) (int64, error) {
	moves := sol.Moves
	if moves == nil {
		moves = []core.Move{}
	}
	data, err := json.Marshal(moves)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode moves: %w", err)
	}

	var id int64
	err = s.db.QueryRow(
		`INSERT INTO solutions (level_id, board_hash, board_key, solvable, moves, move_count, expanded, enqueued)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(board_key) DO UPDATE SET
			level_id = excluded.level_id,
			solvable = excluded.solvable,
			moves = excluded.moves,
			move_count = excluded.move_count,
			expanded = excluded.expanded,
			enqueued = excluded.enqueued,
			created_at = CURRENT_TIMESTAMP
		 RETURNING id`,
		sol.LevelID, int64(sol.BoardHash), []byte(sol.BoardKey), sol.Solvable,
		string(data), len(moves), sol.Expanded, sol.Enqueued,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solution: %w", err)
	}

	return id, nil
}

// SolutionFor looks up a stored result for the board and its orb order.
// found is false when the board has never been solved in that order.
func (s *Store) SolutionFor(b *core.Board) (sol Solution, found bool, err error) {
	return s.SolutionByHash(b.OrderHash(), b.OrderKey())
}

// SolutionByHash looks up a stored result by board hash, confirming the
// match against the full canonical key.
func (s *Store) SolutionByHash(hash uint64, key string) (Solution, bool, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, board_hash, board_key, solvable, moves, expanded, enqueued, created_at
		 FROM solutions
		 WHERE board_hash = ?`,
		int64(hash),
	)
	if err != nil {
		return Solution{}, false, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	sols, err := scanSolutions(rows)
	if err != nil {
		return Solution{}, false, err
	}
	for _, sol := range sols {
		if sol.BoardKey == key {
			return sol, true, nil
		}
	}
	return Solution{}, false, nil
}

// RecentSolutions retrieves the N most recently stored solutions.
func (s *Store) RecentSolutions(limit int) ([]Solution, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, board_hash, board_key, solvable, moves, expanded, enqueued, created_at
		 FROM solutions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	return scanSolutions(rows)
}

// LevelSolutions retrieves every stored solution recorded for a level,
// shortest first.
func (s *Store) LevelSolutions(levelID string) ([]Solution, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, board_hash, board_key, solvable, moves, expanded, enqueued, created_at
		 FROM solutions
		 WHERE level_id = ?
		 ORDER BY solvable DESC, move_count ASC, id ASC`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	return scanSolutions(rows)
}

func scanSolutions(rows *sql.Rows) ([]Solution, error) {
	var out []Solution
	for rows.Next() {
		var (
			sol       Solution
			hash      int64
			key       []byte
			movesJSON string
			createdAt any
		)
		if err := rows.Scan(&sol.ID, &sol.LevelID, &hash, &key, &sol.Solvable,
			&movesJSON, &sol.Expanded, &sol.Enqueued, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sol.BoardHash = uint64(hash)
		sol.BoardKey = string(key)
		if err := json.Unmarshal([]byte(movesJSON), &sol.Moves); err != nil {
			return nil, fmt.Errorf("storage: cannot decode moves of solution %d: %w", sol.ID, err)
		}
		sol.CreatedAt = parseTime(createdAt)
		out = append(out, sol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// SaveAttempt records the outcome of a play session.
// Returns the ID of the inserted record.
func (s *Store) SaveAttempt(a Attempt) (int64, error) {
	if a.LevelID == "" {
		return 0, errors.New("storage: attempt without level id")
	}
	if a.Player == "" {
		a.Player = "local"
	}

	result, err := s.db.Exec(
		"INSERT INTO attempts (level_id, player, moves, hints, solved) VALUES (?, ?, ?, ?, ?)",
		a.LevelID, a.Player, a.Moves, a.Hints, a.Solved,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestAttempt returns the solved attempt with the fewest moves for a level.
// found is false if the level has never been solved.
func (s *Store) BestAttempt(levelID string) (a Attempt, found bool, err error) {
	var createdAt any
	err = s.db.QueryRow(
		`SELECT id, level_id, player, moves, hints, solved, created_at
		 FROM attempts
		 WHERE level_id = ? AND solved = 1
		 ORDER BY moves ASC, hints ASC, id ASC
		 LIMIT 1`,
		levelID,
	).Scan(&a.ID, &a.LevelID, &a.Player, &a.Moves, &a.Hints, &a.Solved, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, false, nil
	}
	if err != nil {
		return Attempt{}, false, fmt.Errorf("storage: cannot query best attempt: %w", err)
	}
	a.CreatedAt = parseTime(createdAt)
	return a, true, nil
}

// Attempts retrieves the latest attempts for a level, newest first.
// An empty levelID returns attempts for every level.
func (s *Store) Attempts(levelID string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, moves, hints, solved, created_at
		 FROM attempts
		 WHERE ? = '' OR level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.LevelID, &a.Player, &a.Moves, &a.Hints, &a.Solved, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Stats counts stored rows.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT
			(SELECT COUNT(*) FROM solutions),
			(SELECT COUNT(*) FROM attempts),
			(SELECT COUNT(*) FROM attempts WHERE solved = 1)`,
	).Scan(&st.Solutions, &st.Attempts, &st.SolvedAttempts)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
