package search

import (
	"log/slog"

	"github.com/runger/lume/internal/result"
)

// LogObserver writes every delivered result's score to a logger at debug
// level. Wire it in with WithScoreObserver when diagnosing ranking; it is
// not part of the scoring path.
type LogObserver struct {
	Logger *slog.Logger
}

// ObserveScore implements ScoreObserver.
func (o LogObserver) ObserveScore(identity string, source result.Source, tier, score int) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("result scored",
		"identity", identity,
		"source", string(source),
		"tier", tier,
		"score", score,
	)
}
