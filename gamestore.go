package doubledeck

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrGameExists    = errors.New("game already exists")
	ErrStoreFull     = errors.New("too many games in progress")
)

// GameStore keeps the games currently being played. Nothing outlives the process.
type GameStore interface {
	AddGame(game GameEngine) error
	FindGame(gameID string) (GameEngine, bool)
	RemoveGame(gameID string) error
	GameIDs() []string
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu       sync.RWMutex
	games    map[string]GameEngine
	maxGames int
}

// NewInMemoryGameStore constructs an InMemoryGameStore. A maxGames of zero
// or less means no limit.
func NewInMemoryGameStore(maxGames int) *InMemoryGameStore {
	return &InMemoryGameStore{
		games:    map[string]GameEngine{},
		maxGames: maxGames,
	}
}

func (s *InMemoryGameStore) AddGame(game GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, game.ID())
	}
	if s.maxGames > 0 && len(s.games) >= s.maxGames {
		return ErrStoreFull
	}

	s.games[game.ID()] = game
	return nil
}

func (s *InMemoryGameStore) FindGame(gameID string) (GameEngine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[gameID]
	return game, ok
}

// RemoveGame stops the game and forgets it
func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	game, ok := s.games[gameID]
	delete(s.games, gameID)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}

	game.Stop()
	return nil
}

func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
