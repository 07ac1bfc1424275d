// Package worker provides a worker pool for replaying games in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/ajedrez-go/internal/chess"
	"github.com/lgbarn/ajedrez-go/internal/pgn"
)

// WorkItem is one game queued for replay.
type WorkItem struct {
	Game   *pgn.Game
	Source string // file the game came from
	Index  int    // position within the input stream
}

// ReplayResult is the outcome of replaying one game.
type ReplayResult struct {
	Game   *pgn.Game
	Source string
	Index  int
	Board  *chess.Board // final position, valid up to the failing ply
	Log    []string     // one description per committed ply
	Err    error
}

// ReplayFunc replays a single work item.
type ReplayFunc func(item WorkItem) ReplayResult

// Pool runs replay workers over a stream of games.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan ReplayResult
	replay     ReplayFunc
	wg         sync.WaitGroup
	stopFlag   int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. replay is required; defaults are one
// worker and a buffer of 10.
func NewPool(replay ReplayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		replay:     replay,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ReplayResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker replays items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without replaying
		}
		p.resultChan <- p.replay(item)
	}
}

// Submit queues a game for replay. Blocks when the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop tells workers to skip items still in the queue.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for the workers; the result
// channel is closed once they finish.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel of replay results.
func (p *Pool) Results() <-chan ReplayResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ReplayAll replays every game with n workers and returns the results
// reordered to match the input.
func ReplayAll(games []*pgn.Game, source string, n int, replay ReplayFunc) []ReplayResult {
	pool := NewPool(replay, WithWorkers(n), WithBufferSize(len(games)+1))
	pool.Start()

	go func() {
		for i, g := range games {
			pool.Submit(WorkItem{Game: g, Source: source, Index: i})
		}
		pool.Close()
	}()

	results := make([]ReplayResult, len(games))
	for res := range pool.Results() {
		results[res.Index] = res
	}
	return results
}
