// Package store keeps privacy-conscious site analytics in sqlite: page visits
// keyed by hashed IP and the outcome of assistant questions.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Chat outcomes recorded per question.
const (
	OutcomeAnswered    = "answered"
	OutcomeFailed      = "failed"
	OutcomeUnavailable = "unavailable"
)

// maxQuestionLen bounds how much of a question is kept.
const maxQuestionLen = 200

type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatEvent struct {
	ID        int64         `json:"id"`
	HashedIP  string        `json:"hashed_ip"`
	Question  string        `json:"question"`
	Outcome   string        `json:"outcome"`
	Latency   time.Duration `json:"latency"`
	Timestamp time.Time     `json:"timestamp"`
}

type Stats struct {
	TotalVisitors    int64       `json:"total_visitors"`
	UniqueVisitors   int64       `json:"unique_visitors"`
	VisitorsToday    int64       `json:"visitors_today"`
	VisitorsThisWeek int64       `json:"visitors_this_week"`
	TotalQuestions   int64       `json:"total_questions"`
	FailedQuestions  int64       `json:"failed_questions"`
	RecentVisitors   []Visitor   `json:"recent_visitors"`
	RecentChats      []ChatEvent `json:"recent_chats"`
}

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite serialises writers anyway; one connection also keeps
	// ":memory:" databases from splitting per connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,  -- never the raw IP
			user_agent TEXT,
			path TEXT,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS visitors_created_at ON visitors(created_at)`,
		`CREATE TABLE IF NOT EXISTS chat_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			question TEXT,
			outcome TEXT NOT NULL,
			latency_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS chat_events_created_at ON chat_events(created_at)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, v Visitor) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, created_at)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// RecordChat stores the outcome of one assistant question. Long questions
// are truncated.
func (s *Store) RecordChat(ctx context.Context, e ChatEvent) error {
	q := []rune(e.Question)
	if len(q) > maxQuestionLen {
		q = q[:maxQuestionLen]
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_events (hashed_ip, question, outcome, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.HashedIP, string(q), e.Outcome, e.Latency.Milliseconds(), e.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("failed to record chat event: %w", err)
	}
	return nil
}

// Stats aggregates the dashboard numbers as of now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{startOfDay.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{now.AddDate(0, 0, -7).Unix()}},
		{&stats.TotalQuestions, `SELECT COUNT(*) FROM chat_events`, nil},
		{&stats.FailedQuestions, `SELECT COUNT(*) FROM chat_events WHERE outcome != ?`, []any{OutcomeAnswered}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("failed to load stats: %w", err)
		}
	}

	var err error
	if stats.RecentVisitors, err = s.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}
	if stats.RecentChats, err = s.RecentChats(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}

// RecentVisitors returns the latest visits, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), created_at
		FROM visitors
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// RecentChats returns the latest assistant questions, newest first.
func (s *Store) RecentChats(ctx context.Context, limit int) ([]ChatEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(question, ''), outcome, latency_ms, created_at
		FROM chat_events
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat events: %w", err)
	}
	defer rows.Close()

	var events []ChatEvent
	for rows.Next() {
		var e ChatEvent
		var ms, ts int64
		if err := rows.Scan(&e.ID, &e.HashedIP, &e.Question, &e.Outcome, &ms, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan chat event: %w", err)
		}
		e.Latency = time.Duration(ms) * time.Millisecond
		e.Timestamp = time.Unix(ts, 0).UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}

// PurgeBefore deletes visits and chat events older than cutoff.
func (s *Store) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var total int64
	for _, table := range []string{"visitors", "chat_events"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE created_at < ?`, cutoff.Unix())
		if err != nil {
			return total, fmt.Errorf("failed to purge %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
