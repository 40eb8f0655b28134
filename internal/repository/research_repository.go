package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"labsite/dto"
	"labsite/model"
)

type ResearchRepository interface {
	GetAll(ctx context.Context) ([]model.ResearchProject, error)
	Add(ctx context.Context, p model.ResearchProject) (model.ResearchProject, error)
	Update(ctx context.Context, id string, patch dto.ResearchPatch) error
	Delete(ctx context.Context, id string) error
}

type mongoResearchRepo struct {
	col *mongo.Collection
}

func NewResearchRepo(db *mongo.Database) ResearchRepository {
	return &mongoResearchRepo{col: db.Collection("research")}
}

func (r *mongoResearchRepo) GetAll(ctx context.Context) ([]model.ResearchProject, error) {
	cursor, err := r.col.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("fetch research projects: %w", err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode research projects: %w", err)
	}

	projects := make([]model.ResearchProject, 0, len(raw))
	for _, doc := range raw {
		projects = append(projects, researchFromDoc(doc))
	}
	return projects, nil
}

func (r *mongoResearchRepo) Add(ctx context.Context, p model.ResearchProject) (model.ResearchProject, error) {
	p = withResearchDefaults(p)
	res, err := r.col.InsertOne(ctx, researchDoc(p))
	if err != nil {
		return model.ResearchProject{}, fmt.Errorf("add research project: %w", err)
	}
	p.ID = docID(res.InsertedID)
	return p, nil
}

func (r *mongoResearchRepo) Update(ctx context.Context, id string, patch dto.ResearchPatch) error {
	set := researchSetDoc(patch)
	if len(set) == 0 {
		return nil
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid research id %q: %w", id, err)
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update research project: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoResearchRepo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid research id %q: %w", id, err)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete research project: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func researchFromDoc(doc bson.M) model.ResearchProject {
	p := model.ResearchProject{
		ID:              docID(doc["_id"]),
		Title:           asString(doc["title"]),
		Description:     asString(doc["description"]),
		LongDescription: asString(doc["longDescription"]),
		ImageURL:        asString(doc["imageUrl"]),
		Team:            NormalizeList(doc["team"]),
		Funding:         asString(doc["funding"]),
		Status:          asString(doc["status"]),
		Category:        asString(doc["category"]),
		StartDate:       asString(doc["startDate"]),
		EndDate:         asString(doc["endDate"]),
	}
	return withResearchDefaults(p)
}

func withResearchDefaults(p model.ResearchProject) model.ResearchProject {
	if !model.ValidStatus(p.Status) {
		p.Status = model.StatusActive
	}
	if !model.ValidCategory(p.Category) {
		p.Category = model.CategoryAnalytical
	}
	if p.StartDate == "" {
		p.StartDate = time.Now().UTC().Format(time.RFC3339)
	}
	if p.EndDate == "" {
		p.EndDate = model.EndDateOngoing
	}
	p.Team = NormalizeList(p.Team)
	return p
}

func researchDoc(p model.ResearchProject) bson.M {
	return bson.M{
		"title":           p.Title,
		"description":     p.Description,
		"longDescription": p.LongDescription,
		"imageUrl":        p.ImageURL,
		"team":            NormalizeList(p.Team),
		"funding":         p.Funding,
		"status":          p.Status,
		"category":        p.Category,
		"startDate":       p.StartDate,
		"endDate":         p.EndDate,
	}
}

func researchSetDoc(p dto.ResearchPatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.LongDescription != nil {
		set["longDescription"] = *p.LongDescription
	}
	if p.ImageURL != nil {
		set["imageUrl"] = *p.ImageURL
	}
	if p.Team != nil {
		set["team"] = NormalizeList(*p.Team)
	}
	if p.Funding != nil {
		set["funding"] = *p.Funding
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.StartDate != nil {
		set["startDate"] = *p.StartDate
	}
	if p.EndDate != nil {
		set["endDate"] = *p.EndDate
	}
	return set
}
