package services

import (
	"context"
	"strings"

	"labsite/dto"
	"labsite/internal/repository"
)

// Search runs free-text lookup across the three content collections.
// Collections are small and every read already re-fetches in full, so
// matching happens in memory over the canonical entities.
type Search struct {
	Teams        repository.TeamRepository
	Publications repository.PublicationRepository
	Research     repository.ResearchRepository
}

func (s *Search) Query(ctx context.Context, q string) ([]dto.SearchResult, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	results := []dto.SearchResult{}
	if q == "" {
		return results, nil
	}

	pubs, err := s.Publications.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range pubs {
		if containsFold(q, p.Title, p.Journal, strings.Join(p.Authors, " ")) {
			results = append(results, dto.SearchResult{
				Type:     "publication",
				Title:    p.Title,
				Abstract: p.Journal,
				Year:     p.Year,
			})
		}
	}

	projects, err := s.Research.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if containsFold(q, p.Title, p.Description) {
			results = append(results, dto.SearchResult{
				Type:        "research",
				Title:       p.Title,
				Description: p.Description,
			})
		}
	}

	members, err := s.Teams.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if containsFold(q, m.Name, m.Bio) {
			results = append(results, dto.SearchResult{
				Type: "team",
				Name: m.Name,
				Bio:  m.Bio,
			})
		}
	}

	return results, nil
}

func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
