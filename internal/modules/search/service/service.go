package search

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const memoriesIndex = "memories"

// Document is the flattened, searchable projection of a content item.
type Document struct {
	UID         string `json:"uid"`
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Date        string `json:"date"`
	Author      string `json:"author"`
}

// Service keeps the Meilisearch "memories" index in sync with journal
// entries, photos and events, and answers free-text queries. Indexing
// is best effort: the database stays the source of truth and index
// failures are only logged.
type Service interface {
	Index(doc Document)
	Delete(contentType, contentID string)
	Search(ctx context.Context, query string, limit int64) ([]Document, error)
}

type searchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
	log       *zap.Logger
}

// NewService builds the search service; client may be nil, indexing is
// then skipped and queries return no results.
func NewService(client meilisearch.ServiceManager, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}

	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
	if client != nil {
		s.initIndex()
	}
	return s
}

func (s *searchService) initIndex() {
	filterable := []interface{}{"content_type", "date"}
	if _, err := s.client.Index(memoriesIndex).UpdateFilterableAttributes(&filterable); err != nil {
		s.log.Warn("failed to update memories filterable attributes", zap.Error(err))
	}

	sortable := []string{"date"}
	if _, err := s.client.Index(memoriesIndex).UpdateSortableAttributes(&sortable); err != nil {
		s.log.Warn("failed to update memories sortable attributes", zap.Error(err))
	}
}

// cleanForIndex strips markup from user-authored text before it is
// indexed.
func (s *searchService) cleanForIndex(text string) string {
	// Block-closing tags become spaces so adjacent paragraphs do not
	// merge into one word.
	text = strings.ReplaceAll(text, "</p>", " ")
	text = strings.ReplaceAll(text, "<br>", " ")
	text = strings.ReplaceAll(text, "</div>", " ")

	clean := html.UnescapeString(s.sanitizer.Sanitize(text))
	return strings.Join(strings.Fields(clean), " ")
}

func (s *searchService) Index(doc Document) {
	if s.client == nil {
		return
	}
	doc.UID = docUID(doc.ContentType, doc.ContentID)
	doc.Title = s.cleanForIndex(doc.Title)
	doc.Body = s.cleanForIndex(doc.Body)
	if _, err := s.client.Index(memoriesIndex).AddDocuments([]Document{doc}, strPtr("uid")); err != nil {
		s.log.Warn("meilisearch index failed",
			zap.String("uid", doc.UID),
			zap.Error(err),
		)
	}
}

func (s *searchService) Delete(contentType, contentID string) {
	if s.client == nil {
		return
	}
	uid := docUID(contentType, contentID)
	if _, err := s.client.Index(memoriesIndex).DeleteDocument(uid); err != nil {
		s.log.Warn("meilisearch delete failed",
			zap.String("uid", uid),
			zap.Error(err),
		)
	}
}

func (s *searchService) Search(ctx context.Context, query string, limit int64) ([]Document, error) {
	if s.client == nil {
		return []Document{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	resp, err := s.client.Index(memoriesIndex).SearchWithContext(ctx, query, &meilisearch.SearchRequest{
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("meilisearch query failed: %w", err)
	}

	docs := make([]Document, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func docUID(contentType, contentID string) string {
	return contentType + "-" + contentID
}

func strPtr(s string) *string {
	return &s
}
