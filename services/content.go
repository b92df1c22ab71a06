package services

import (
	"context"
	"encoding/json"
	"log"

	"counselling-module/contentstore"
	"counselling-module/models"
	"counselling-module/utils"
)

// DocumentStore is the slice of the content-store client the services need.
type DocumentStore interface {
	ListDocuments(ctx context.Context, collection string, opts contentstore.ListOptions) (*contentstore.DocumentList, error)
	CreateDocument(ctx context.Context, collection string, data interface{}) (string, error)
}

// Result reports how a content read completed. When Degraded is true the
// returned data is the static fallback set and Err holds the store error for
// optional diagnostic display; the section still renders.
type Result struct {
	Degraded bool
	Err      error
}

// ContentService serves the site's informational sections from the remote
// content store, falling back to fixed data when the store is unreachable.
// The site must never show an empty section because the backend is down.
type ContentService struct {
	store DocumentStore
}

func NewContentService(store DocumentStore) *ContentService {
	return &ContentService{store: store}
}

// published fetches published documents from a collection, newest first,
// decoding each into out's element type via the decode callback.
func (s *ContentService) published(ctx context.Context, collection string, limit int, decode func(json.RawMessage) error) error {
	list, err := s.store.ListDocuments(ctx, collection, contentstore.ListOptions{
		Equal:     map[string]string{"status": utils.StatusPublished},
		OrderDesc: "created_at",
		Limit:     limit,
	})
	if err != nil {
		return err
	}
	for _, doc := range list.Documents {
		if err := decode(doc); err != nil {
			return err
		}
	}
	return nil
}

// Testimonials returns published testimonials, newest first.
func (s *ContentService) Testimonials(ctx context.Context, limit int) ([]models.Testimonial, Result) {
	var items []models.Testimonial
	err := s.published(ctx, utils.CollectionTestimonials, limit, func(doc json.RawMessage) error {
		var t models.Testimonial
		if err := json.Unmarshal(doc, &t); err != nil {
			return err
		}
		items = append(items, t)
		return nil
	})
	if err != nil {
		log.Printf("[CONTENT] Testimonials fetch failed, serving fallback: %v", err)
		return FallbackTestimonials(), Result{Degraded: true, Err: err}
	}
	return items, Result{}
}

// BlogPosts returns published blog posts, newest first.
func (s *ContentService) BlogPosts(ctx context.Context, limit int) ([]models.BlogPost, Result) {
	var items []models.BlogPost
	err := s.published(ctx, utils.CollectionBlogPosts, limit, func(doc json.RawMessage) error {
		var p models.BlogPost
		if err := json.Unmarshal(doc, &p); err != nil {
			return err
		}
		items = append(items, p)
		return nil
	})
	if err != nil {
		log.Printf("[CONTENT] Blog posts fetch failed, serving fallback: %v", err)
		return FallbackBlogPosts(), Result{Degraded: true, Err: err}
	}
	return items, Result{}
}

// Universities returns published partner universities, newest first.
func (s *ContentService) Universities(ctx context.Context, limit int) ([]models.University, Result) {
	var items []models.University
	err := s.published(ctx, utils.CollectionUniversities, limit, func(doc json.RawMessage) error {
		var u models.University
		if err := json.Unmarshal(doc, &u); err != nil {
			return err
		}
		items = append(items, u)
		return nil
	})
	if err != nil {
		log.Printf("[CONTENT] Universities fetch failed, serving fallback: %v", err)
		return FallbackUniversities(), Result{Degraded: true, Err: err}
	}
	return items, Result{}
}

// CareerPaths returns published career paths, newest first.
func (s *ContentService) CareerPaths(ctx context.Context, limit int) ([]models.CareerPath, Result) {
	var items []models.CareerPath
	err := s.published(ctx, utils.CollectionCareerPaths, limit, func(doc json.RawMessage) error {
		var c models.CareerPath
		if err := json.Unmarshal(doc, &c); err != nil {
			return err
		}
		items = append(items, c)
		return nil
	})
	if err != nil {
		log.Printf("[CONTENT] Career paths fetch failed, serving fallback: %v", err)
		return FallbackCareerPaths(), Result{Degraded: true, Err: err}
	}
	return items, Result{}
}

// FAQs returns published FAQs, newest first.
func (s *ContentService) FAQs(ctx context.Context, limit int) ([]models.FAQ, Result) {
	var items []models.FAQ
	err := s.published(ctx, utils.CollectionFAQs, limit, func(doc json.RawMessage) error {
		var f models.FAQ
		if err := json.Unmarshal(doc, &f); err != nil {
			return err
		}
		items = append(items, f)
		return nil
	})
	if err != nil {
		log.Printf("[CONTENT] FAQs fetch failed, serving fallback: %v", err)
		return FallbackFAQs(), Result{Degraded: true, Err: err}
	}
	return items, Result{}
}
