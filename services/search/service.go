package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	catalogRepo "airlace/database/repository/catalog"
	"airlace/database/repository/localstore"
	"airlace/models"
	"airlace/utils"

	"github.com/karlseguin/ccache/v3"
	"go.uber.org/zap"
)

const (
	// maxRecentSearches bounds the persisted recent-search list.
	maxRecentSearches = 5
	cacheTTL          = 5 * time.Minute
)

// DefaultSearchService implements SearchService over a catalog repository,
// with a small local result cache keyed by the normalized query.
type DefaultSearchService struct {
	Catalog  catalogRepo.CatalogRepository
	Store    localstore.SearchStore
	Debounce *Debouncer
	cache    *ccache.Cache[[]models.Property]
}

// NewSearchService creates a search service with the given debounce window.
func NewSearchService(catalog catalogRepo.CatalogRepository, store localstore.SearchStore, debounceWindow time.Duration) *DefaultSearchService {
	return &DefaultSearchService{
		Catalog:  catalog,
		Store:    store,
		Debounce: NewDebouncer(debounceWindow),
		cache:    ccache.New(ccache.Configure[[]models.Property]().MaxSize(200)),
	}
}

// Search filters the full catalog by the query, serving repeated queries
// from the local cache.
func (s *DefaultSearchService) Search(q models.SearchQuery) ([]models.Property, error) {
	key := cacheKey(q)
	if item := s.cache.Get(key); item != nil && !item.Expired() {
		return item.Value(), nil
	}

	catalog, err := s.Catalog.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	results := Filter(catalog, q)
	s.cache.Set(key, results, cacheTTL)
	return results, nil
}

// SearchDebounced runs Search after the quiet window, replacing any search
// still pending for an earlier keystroke.
func (s *DefaultSearchService) SearchDebounced(q models.SearchQuery, deliver func([]models.Property, error)) {
	s.Debounce.Do(func() {
		deliver(s.Search(q))
	})
}

// RecentSearches returns the persisted selections, most recent first. A
// corrupt persisted value is discarded, never surfaced.
func (s *DefaultSearchService) RecentSearches() ([]models.RecentSearch, error) {
	searches, err := s.Store.LoadRecent()
	if err != nil {
		utils.GetLogger().Warn("discarding corrupt recent searches", zap.Error(err))
		return nil, nil
	}
	return searches, nil
}

// RememberSearch records a search selection, deduplicating and keeping the
// most recent entries up to the cap.
func (s *DefaultSearchService) RememberSearch(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	searches, err := s.RecentSearches()
	if err != nil {
		return err
	}

	updated := []models.RecentSearch{{
		Term:       term,
		SearchedAt: time.Now().Format(time.RFC3339),
	}}
	for _, prev := range searches {
		if strings.EqualFold(prev.Term, term) {
			continue
		}
		updated = append(updated, prev)
		if len(updated) == maxRecentSearches {
			break
		}
	}

	if err := s.Store.SaveRecent(updated); err != nil {
		return fmt.Errorf("failed to persist recent searches: %w", err)
	}
	return nil
}

// cacheKey normalizes a query into a stable cache key. Tag order does not
// affect the result, so tags are sorted before joining.
func cacheKey(q models.SearchQuery) string {
	tags := append([]string(nil), q.Tags...)
	for i := range tags {
		tags[i] = strings.ToLower(tags[i])
	}
	sort.Strings(tags)
	return fmt.Sprintf("%s|%g|%g|%s", strings.ToLower(q.Term), q.MinPrice, q.MaxPrice, strings.Join(tags, ","))
}
