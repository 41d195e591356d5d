// Package search orchestrates a launcher query: it fans out to the
// registered providers concurrently, joins their candidates, reranks and
// deduplicates them across sources, and delivers one ordered list. Delivery
// is gated by a generation counter so a superseded search is silently
// dropped instead of delivering stale rows.
package search

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/runger/lume/internal/history"
	"github.com/runger/lume/internal/query"
	"github.com/runger/lume/internal/result"
)

// DefaultRecentLimit is how many recent history entries the empty-query fast
// path shows.
const DefaultRecentLimit = 8

// Provider is an independent candidate source. Implementations must tolerate
// concurrent calls and treat their own failures as "no candidates": a
// returned error is logged and dropped, never surfaced to the caller.
type Provider interface {
	Name() string
	Search(ctx context.Context, q query.Query) ([]result.Candidate, error)
}

// Resolver re-resolves a history target reference into a concrete result.
// Used by the recents fast path so a recent entry can surface as the thing
// it launched rather than a bare command string.
type Resolver interface {
	Resolve(ref *result.TargetRef) (result.SearchResult, bool)
}

// ScoreObserver receives the final per-result scores of a delivered search.
// Debug tooling only; a nil observer costs nothing.
type ScoreObserver interface {
	ObserveScore(identity string, source result.Source, tier, score int)
}

// Conductor owns the search pipeline. Construct with NewConductor, then call
// Search per keystroke; at most one callback fires per burst of calls, always
// the latest generation's.
type Conductor struct {
	providers []Provider
	store     *history.Store
	resolver  Resolver
	observer  ScoreObserver
	logger    *slog.Logger

	// deliver marshals the result callback onto the caller's context (a UI
	// loop, typically). The default invokes it on the search goroutine.
	deliver func(func())

	recentLimit int
	maxResults  int
	generation  atomic.Uint64
}

// Option configures a Conductor.
type Option func(*Conductor)

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Conductor) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDeliverFunc sets the delivery executor that marshals callbacks onto the
// caller's thread or queue.
func WithDeliverFunc(deliver func(func())) Option {
	return func(c *Conductor) {
		if deliver != nil {
			c.deliver = deliver
		}
	}
}

// WithResolver sets the target re-resolver for the recents fast path.
func WithResolver(r Resolver) Option {
	return func(c *Conductor) { c.resolver = r }
}

// WithScoreObserver attaches a score observer.
func WithScoreObserver(o ScoreObserver) Option {
	return func(c *Conductor) { c.observer = o }
}

// WithRecentLimit overrides the empty-query recents count.
func WithRecentLimit(n int) Option {
	return func(c *Conductor) {
		if n > 0 {
			c.recentLimit = n
		}
	}
}

// WithMaxResults caps the delivered list. Zero or negative means unlimited.
func WithMaxResults(n int) Option {
	return func(c *Conductor) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

// NewConductor wires the providers and history store together.
func NewConductor(providers []Provider, store *history.Store, opts ...Option) *Conductor {
	c := &Conductor{
		providers:   providers,
		store:       store,
		logger:      slog.Default(),
		deliver:     func(f func()) { f() },
		recentLimit: DefaultRecentLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search starts an asynchronous search for rawQuery and returns immediately.
// callback receives the final ordered list exactly once. If a newer Search
// supersedes this one first the callback is never invoked.
func (c *Conductor) Search(ctx context.Context, rawQuery string, callback func([]result.SearchResult)) {
	gen := c.generation.Add(1)
	q := query.New(rawQuery)

	go c.run(ctx, gen, q, callback)
}

// run executes one generation end to end on its own goroutine.
func (c *Conductor) run(ctx context.Context, gen uint64, q query.Query, callback func([]result.SearchResult)) {
	if q.IsEmpty() {
		c.finish(gen, c.recents(), callback)
		return
	}

	// URL/path short-circuit: classified before any provider work so the
	// synthetic row is ready to merge ahead of provider output.
	synthetic := c.classify(q)

	candidates := c.fanOut(ctx, q)

	// First gate: a newer search may have started while providers ran.
	if !c.current(gen) {
		return
	}

	final := rerank(candidates, synthetic, q, c.observer)
	c.finish(gen, final, callback)
}

// fanOut dispatches the query to every provider concurrently and joins all
// results. Provider errors are logged and contribute empty lists.
func (c *Conductor) fanOut(ctx context.Context, q query.Query) []result.Candidate {
	results := make([][]result.Candidate, len(c.providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range c.providers {
		i, p := i, p
		g.Go(func() error {
			cands, err := p.Search(gctx, q)
			if err != nil {
				c.logger.Warn("provider failed", "provider", p.Name(), "error", err)
				return nil
			}
			results[i] = cands
			return nil
		})
	}
	_ = g.Wait() // providers never return errors upward

	var merged []result.Candidate
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// classify turns URL- or path-shaped input into synthetic candidates.
func (c *Conductor) classify(q query.Query) []result.SearchResult {
	switch cls := query.Classify(q.Trimmed); cls.Class {
	case query.ClassURL:
		return []result.SearchResult{result.URLTarget(cls.URL)}
	case query.ClassPath:
		return query.Browse(cls.Path)
	default:
		return nil
	}
}

// recents builds the empty-query view: the most recent history entries,
// re-resolved against their stored targets where possible and tagged as
// recent either way.
func (c *Conductor) recents() []result.SearchResult {
	if c.store == nil {
		return nil
	}
	entries := c.store.Recent(c.recentLimit)
	out := make([]result.SearchResult, 0, len(entries))
	for _, e := range entries {
		if c.resolver != nil && e.Target != nil {
			if res, ok := c.resolver.Resolve(e.Target); ok {
				res.IsRecent = true
				out = append(out, res)
				continue
			}
		}
		res := result.HistoryCommand(e.Command, e.Display, e.Subtitle, e.Target)
		res.IsRecent = true
		out = append(out, res)
	}
	return out
}

// finish delivers results for gen, re-checking currency immediately before
// the callback to close the race between rerank and delivery.
func (c *Conductor) finish(gen uint64, results []result.SearchResult, callback func([]result.SearchResult)) {
	if !c.current(gen) {
		return
	}
	if c.maxResults > 0 && len(results) > c.maxResults {
		results = results[:c.maxResults]
	}
	c.deliver(func() {
		if !c.current(gen) {
			return
		}
		callback(results)
	})
}

func (c *Conductor) current(gen uint64) bool {
	return c.generation.Load() == gen
}

// RecordSuccess appends a launched command to history.
func (c *Conductor) RecordSuccess(command, display, subtitle string, target *result.TargetRef) {
	if c.store == nil {
		return
	}
	c.store.Record(history.Entry{
		Command:  command,
		Display:  display,
		Subtitle: subtitle,
		Target:   target,
	})
}

// RemoveHistoryEntry deletes a history entry by command text.
func (c *Conductor) RemoveHistoryEntry(command string) bool {
	if c.store == nil {
		return false
	}
	return c.store.Remove(command)
}
