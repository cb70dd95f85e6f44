package store

import (
	"context"
	"log/slog"
	"sync"

	"zenhealing/internal/domain"
	"zenhealing/internal/fallback"
	"zenhealing/internal/normalize"
	"zenhealing/internal/transport"
)

const (
	OpArticles       = "articles"
	OpArticleDetails = "articleDetails"
)

// ArticleStore owns the wellness article catalog and its featured slice.
type ArticleStore struct {
	api    ArticleAPI
	logger *slog.Logger

	mu       sync.Mutex
	articles []domain.Article
	featured []domain.Article
	details  map[int64]domain.Article
	ops      opState
}

func NewArticleStore(api ArticleAPI, logger *slog.Logger) *ArticleStore {
	return &ArticleStore{
		api:     api,
		logger:  logger.With("store", "article"),
		details: make(map[int64]domain.Article),
		ops:     newOpState(),
	}
}

// FetchAll replaces the catalog with the backend listing. Failures and empty
// results are absorbed with the fallback dataset. The featured slice is the
// first three entries of whatever listing wins.
func (s *ArticleStore) FetchAll(ctx context.Context) {
	s.mu.Lock()
	s.ops.begin(OpArticles)
	s.mu.Unlock()

	var articles []domain.Article
	raw, err := s.api.ListArticles(ctx)
	if err == nil {
		articles, err = normalize.List[domain.Article](raw, "articles")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || len(articles) == 0 {
		s.logger.Warn("article listing unavailable, substituting fallback data", "error", err)
		articles = fallback.Articles()
	}
	s.articles = articles
	if len(articles) > 3 {
		s.featured = append([]domain.Article(nil), articles[:3]...)
	} else {
		s.featured = append([]domain.Article(nil), articles...)
	}
	s.ops.finish(OpArticles, nil)
}

// FetchArticle returns the article by id: the details cache first, then the
// catalog, then the network. Failures soft-fail to nil with the error recorded
// under OpArticleDetails.
func (s *ArticleStore) FetchArticle(ctx context.Context, id int64) *domain.Article {
	s.mu.Lock()
	if a, ok := s.details[id]; ok {
		s.mu.Unlock()
		return &a
	}
	for _, a := range s.articles {
		if a.ID == id {
			s.details[id] = a
			s.mu.Unlock()
			out := a
			return &out
		}
	}
	s.ops.begin(OpArticleDetails)
	s.mu.Unlock()

	raw, err := s.api.GetArticle(ctx, id)
	if err != nil {
		s.reject(OpArticleDetails, err)
		return nil
	}
	article, err := normalize.Item[domain.Article](raw)
	if err != nil {
		s.reject(OpArticleDetails, err)
		return nil
	}

	s.mu.Lock()
	s.details[id] = article
	s.ops.finish(OpArticleDetails, nil)
	s.mu.Unlock()
	return &article
}

func (s *ArticleStore) Articles() []domain.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Article(nil), s.articles...)
}

func (s *ArticleStore) Featured() []domain.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Article(nil), s.featured...)
}

func (s *ArticleStore) Loading(op string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops.isLoading(op)
}

func (s *ArticleStore) Err(op string) *transport.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops.err(op)
}

func (s *ArticleStore) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops.clearErrors()
}

func (s *ArticleStore) reject(op string, err error) {
	terr := transport.Wrap(err)
	s.mu.Lock()
	s.ops.finish(op, terr)
	s.mu.Unlock()
	s.logger.Error("operation failed", "op", op, "kind", terr.Kind, "error", terr.Message)
}
