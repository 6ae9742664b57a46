// Package storage provides SQLite-based run history for 2048.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded with a run.
const (
	EndStuck    = "stuck"    // no legal move was left
	EndFinished = "finished" // the player declared the run over
)

// ErrBadBoard is returned by DecodeBoard for malformed input.
var ErrBadBoard = errors.New("storage: malformed board")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"game_id"`
	SessionID string    `json:"session_id"`
	Seed      int64     `json:"seed"`
	Moves     int       `json:"moves"`
	MaxTile   int       `json:"max_tile"`
	Tiles     int       `json:"tiles"`
	Board     string    `json:"board"` // EncodeBoard form
	EndReason string    `json:"end_reason"`
	CreatedAt time.Time `json:"created_at"`
}

// RunStats contains aggregated statistics for a game.
type RunStats struct {
	GameID     string
	Runs       int
	BestTile   int
	AvgMoves   float64
	TotalMoves int64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			session_id TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			max_tile INTEGER NOT NULL DEFAULT 0,
			tiles INTEGER NOT NULL DEFAULT 0,
			board TEXT NOT NULL DEFAULT '',
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(game_id, max_tile DESC, moves ASC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (game_id, session_id, seed, moves, max_tile, tiles, board, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.SessionID, r.Seed, r.Moves, r.MaxTile, r.Tiles, r.Board, r.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// NewRun builds a run record, deriving the tile count and encoded board
// from numbers.
func NewRun(gameID, sessionID string, seed int64, moves, maxTile int, numbers [][]int, reason string) Run {
	r := Run{
		GameID:    gameID,
		SessionID: sessionID,
		Seed:      seed,
		Moves:     moves,
		MaxTile:   maxTile,
		EndReason: reason,
	}
	if numbers != nil {
		r.Board = EncodeBoard(numbers)
		for _, row := range numbers {
			for _, n := range row {
				if n != 0 {
					r.Tiles++
				}
			}
		}
	}
	return r
}

const runColumns = `id, game_id, session_id, seed, moves, max_tile, tiles, board, end_reason, created_at`

// RecentRuns retrieves the latest N runs for the given game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// BestRuns retrieves the top N runs for the given game.
// Results are ordered by max tile descending, then by fewest moves.
func (s *Store) BestRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY max_tile DESC, moves ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.SessionID,
			&r.Seed,
			&r.Moves,
			&r.MaxTile,
			&r.Tiles,
			&r.Board,
			&r.EndReason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunStats retrieves aggregated statistics for the given game.
func (s *Store) RunStats(gameID string) (*RunStats, error) {
	stats := &RunStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(max_tile), 0), COALESCE(AVG(moves), 0), COALESCE(SUM(moves), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.BestTile, &stats.AvgMoves, &stats.TotalMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// EncodeBoard formats a row-major grid as "2,0,0,4/0,0,0,0/...".
func EncodeBoard(rows [][]int) string {
	var sb strings.Builder
	for r, row := range rows {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c, n := range row {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// DecodeBoard parses the EncodeBoard form. The grid must be square.
func DecodeBoard(s string) ([][]int, error) {
	if s == "" {
		return nil, nil
	}

	lines := strings.Split(s, "/")
	rows := make([][]int, len(lines))
	for r, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) != len(lines) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadBoard, r, len(fields), len(lines))
		}
		rows[r] = make([]int, len(fields))
		for c, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %q", ErrBadBoard, r, c, f)
			}
			rows[r][c] = n
		}
	}
	return rows, nil
}
