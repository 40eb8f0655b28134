package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite/dto"
	"labsite/model"
)

type stubTeams struct{ fakeTeams }

func (s *stubTeams) GetAll(ctx context.Context) ([]model.TeamMember, error) {
	return []model.TeamMember{
		{ID: "t1", Name: "Ann Lee", Bio: "mass spectrometry methods"},
	}, nil
}

type stubPublications struct{ fakePublications }

func (s *stubPublications) GetAll(ctx context.Context) ([]model.Publication, error) {
	return []model.Publication{
		{ID: "p1", Title: "Lipidomics of yeast", Journal: "J Chem", Year: 2021, Authors: []string{"Ann Lee"}},
	}, nil
}

type stubResearch struct{ fakeResearch }

func (s *stubResearch) GetAll(ctx context.Context) ([]model.ResearchProject, error) {
	return []model.ResearchProject{
		{ID: "r1", Title: "Metabolomics pipeline", Description: "untargeted workflows"},
	}, nil
}

func newSearch() *Search {
	return &Search{
		Teams:        &stubTeams{},
		Publications: &stubPublications{},
		Research:     &stubResearch{},
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	results, err := newSearch().Query(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchMatchesAcrossCollections(t *testing.T) {
	results, err := newSearch().Query(context.Background(), "ann lee")
	require.NoError(t, err)

	types := map[string]bool{}
	for _, r := range results {
		types[r.Type] = true
	}
	// author match on the publication, name match on the member
	assert.True(t, types["publication"])
	assert.True(t, types["team"])
}

func TestSearchPublicationCarriesYear(t *testing.T) {
	results, err := newSearch().Query(context.Background(), "lipidomics")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, dto.SearchResult{
		Type:     "publication",
		Title:    "Lipidomics of yeast",
		Abstract: "J Chem",
		Year:     2021,
	}, results[0])
}

func TestSearchResearchByDescription(t *testing.T) {
	results, err := newSearch().Query(context.Background(), "untargeted")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "research", results[0].Type)
}

func TestSearchCaseInsensitive(t *testing.T) {
	results, err := newSearch().Query(context.Background(), "METABOLOMICS")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Metabolomics pipeline", results[0].Title)
}
