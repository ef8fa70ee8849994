// Package news serves the situation-update articles shown alongside the map
// and refreshes them on a fixed interval.
package news

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/haitialert/alertnet/internal/domain"
)

// FetchFunc pulls the current article set from a content source.
type FetchFunc func(ctx context.Context) ([]domain.NewsArticle, error)

// Service holds the article collection and keeps it fresh.
type Service struct {
	clock    clockwork.Clock
	interval time.Duration
	fetch    FetchFunc
	logger   *slog.Logger

	mu       sync.RWMutex
	articles []domain.NewsArticle
}

// NewService creates a Service that refreshes via fetch every interval once
// Run is started.
func NewService(clock clockwork.Clock, interval time.Duration, fetch FetchFunc, logger *slog.Logger) *Service {
	return &Service{
		clock:    clock,
		interval: interval,
		fetch:    fetch,
		logger:   logger,
	}
}

// Load replaces the article set immediately.
func (s *Service) Load(articles []domain.NewsArticle) {
	s.mu.Lock()
	s.articles = append([]domain.NewsArticle(nil), articles...)
	s.mu.Unlock()
}

// Articles returns a copy of the current article set.
func (s *Service) Articles() []domain.NewsArticle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.NewsArticle(nil), s.articles...)
}

// Article returns the article with the given id.
func (s *Service) Article(id string) (domain.NewsArticle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.articles {
		if a.ID == id {
			return a, true
		}
	}
	return domain.NewsArticle{}, false
}

// Run refreshes the articles on every interval tick until ctx is done. A
// failed fetch keeps the previous article set.
func (s *Service) Run(ctx context.Context) {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.refresh(ctx)
		}
	}
}

func (s *Service) refresh(ctx context.Context) {
	articles, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("news refresh failed", "error", err)
		return
	}
	s.Load(articles)
	s.logger.Debug("news refreshed", "articles", len(articles))
}
