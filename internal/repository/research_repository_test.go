package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"labsite/dto"
	"labsite/model"
)

func TestResearchFromDocDefaults(t *testing.T) {
	p := researchFromDoc(bson.M{"title": "Metabolomics"})

	assert.Equal(t, model.StatusActive, p.Status)
	assert.Equal(t, model.CategoryAnalytical, p.Category)
	assert.Equal(t, model.EndDateOngoing, p.EndDate)
	assert.NotEmpty(t, p.StartDate)
	assert.Equal(t, []string{}, p.Team)
}

func TestResearchFromDocKeepsValidValues(t *testing.T) {
	p := researchFromDoc(bson.M{
		"status":   model.StatusCompleted,
		"category": model.CategoryOmics,
		"endDate":  "2024-01-01",
		"team":     bson.A{"Ann", "Bob"},
	})

	assert.Equal(t, model.StatusCompleted, p.Status)
	assert.Equal(t, model.CategoryOmics, p.Category)
	assert.Equal(t, "2024-01-01", p.EndDate)
	assert.Equal(t, []string{"Ann", "Bob"}, p.Team)
}

func TestResearchFromDocBadEnums(t *testing.T) {
	p := researchFromDoc(bson.M{"status": "paused", "category": "misc"})
	assert.Equal(t, model.StatusActive, p.Status)
	assert.Equal(t, model.CategoryAnalytical, p.Category)
}

func TestResearchSetDocEmptyPatch(t *testing.T) {
	assert.Empty(t, researchSetDoc(dto.ResearchPatch{}))
}
