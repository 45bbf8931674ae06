// Package autoplay plays 2048 without a human. Strategies register
// themselves in init() and the runner plays whole games headlessly against
// the engine, so strategies can be compared and results recorded.
package autoplay

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/slide2048/internal/games/t2048/board"
)

// Strategy picks the next move for a board.
type Strategy interface {
	// Name returns the registered name (e.g. "greedy").
	Name() string

	// Next returns the move to play. ok is false when no move changes the
	// board, which only happens once the game is over.
	Next(b *board.Board) (m board.Move, ok bool)
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	Name        string
	Description string
}

// Factory creates a strategy. rng is the strategy's own random source.
type Factory func(rng *rand.Rand) Strategy

type entry struct {
	factory     Factory
	description string
}

var (
	factories = make(map[string]entry)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("autoplay: strategy %q already registered", name))
	}
	factories[name] = entry{factory: f, description: description}
}

// List returns all registered strategies, sorted by name.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for name, e := range factories {
		result = append(result, StrategyInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create instantiates a strategy by name.
func Create(name string, rng *rand.Rand) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("autoplay: unknown strategy %q", name)
	}
	return e.factory(rng), nil
}

// Exists checks if a strategy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
