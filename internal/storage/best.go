package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-coins/internal/games/flappy"
)

// BestScore implements flappy.ScoreStore. A missing key is (0, false, nil).
func (s *Store) BestScore(key string) (int, bool, error) {
	var score int
	err := s.db.QueryRow(
		s.rebind("SELECT score FROM best_scores WHERE score_key = ?"),
		key,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read best score %q: %w", key, err)
	}
	return score, true, nil
}

// SetBestScore implements flappy.ScoreStore. The stored value only ever
// grows, so concurrent sessions cannot overwrite a higher score.
func (s *Store) SetBestScore(key string, score int) error {
	_, err := s.db.Exec(
		s.rebind(`INSERT INTO best_scores (score_key, score) VALUES (?, ?)
		 ON CONFLICT (score_key) DO UPDATE
		 SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > best_scores.score`),
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score %q: %w", key, err)
	}
	return nil
}

// ClearBest removes the best score stored under key.
func (s *Store) ClearBest(key string) error {
	_, err := s.db.Exec(s.rebind("DELETE FROM best_scores WHERE score_key = ?"), key)
	if err != nil {
		return fmt.Errorf("storage: cannot clear best score %q: %w", key, err)
	}
	return nil
}

// Ensure Store plugs into the game controller
var (
	_ flappy.ScoreStore  = (*Store)(nil)
	_ flappy.RunRecorder = (*Store)(nil)
)
