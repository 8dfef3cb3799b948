package leaderboard

import (
	"cmp"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/mcoot/leaderboard/internal/model"
)

// Registry maps player names to their most recent score.
//
// Players are kept in the order they were first recorded. That order is the
// tie-break for both ListRanked and TopPlayer, so results are reproducible.
type Registry struct {
	mu sync.RWMutex

	// index maps a player name to its position in entries
	index   map[string]int
	entries []model.Entry
	logger  *slog.Logger
}

// New creates an empty Registry
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Registry{
		index:  make(map[string]int),
		logger: logger,
	}
}

// Record sets the score for a player, replacing any previous score.
// A replaced player keeps its original insertion position.
func (r *Registry) Record(player string, score float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, replaced := r.index[player]
	if replaced {
		r.entries[i].Score = score
	} else {
		r.index[player] = len(r.entries)
		r.entries = append(r.entries, model.Entry{Player: player, Score: score})
	}

	r.logger.Debug("score recorded",
		slog.String("player", player),
		slog.Float64("score", score),
		slog.Bool("replaced", replaced),
	)
}

// ListRanked returns all entries ordered by score descending.
// Equal scores keep insertion order. The result is a copy.
func (r *Registry) ListRanked() []model.Entry {
	r.mu.RLock()
	ranked := make([]model.Entry, len(r.entries))
	copy(ranked, r.entries)
	r.mu.RUnlock()

	slices.SortStableFunc(ranked, func(a, b model.Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}

// TopPlayer returns the player with the highest score, or false if the
// registry is empty. On a tie the earliest recorded player wins. Ordering
// matches ListRanked, so NaN sorts below every number.
func (r *Registry) TopPlayer() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return "", false
	}

	top := r.entries[0]
	for _, e := range r.entries[1:] {
		if cmp.Compare(e.Score, top.Score) > 0 {
			top = e
		}
	}
	return top.Player, true
}

// Ranking returns the ranked listing and top player as one snapshot
func (r *Registry) Ranking() model.Ranking {
	ranked := r.ListRanked()
	ranking := model.Ranking{Entries: ranked}
	if len(ranked) > 0 {
		top := ranked[0].Player
		ranking.TopPlayer = &top
	}
	return ranking
}

// Score returns the current score for a player
func (r *Registry) Score(player string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[player]
	if !ok {
		return 0, false
	}
	return r.entries[i].Score, true
}

// Len returns the number of distinct players recorded
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
