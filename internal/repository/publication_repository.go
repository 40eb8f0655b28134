package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"labsite/dto"
	"labsite/model"
)

type PublicationRepository interface {
	GetAll(ctx context.Context) ([]model.Publication, error)
	Add(ctx context.Context, p model.Publication) (model.Publication, error)
	Update(ctx context.Context, id string, patch dto.PublicationPatch) error
	Delete(ctx context.Context, id string) error
}

type mongoPublicationRepo struct {
	col *mongo.Collection
}

func NewPublicationRepo(db *mongo.Database) PublicationRepository {
	return &mongoPublicationRepo{col: db.Collection("publications")}
}

func (r *mongoPublicationRepo) GetAll(ctx context.Context) ([]model.Publication, error) {
	cursor, err := r.col.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "year", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("fetch publications: %w", err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode publications: %w", err)
	}

	pubs := make([]model.Publication, 0, len(raw))
	for _, doc := range raw {
		pubs = append(pubs, publicationFromDoc(doc))
	}
	return pubs, nil
}

func (r *mongoPublicationRepo) Add(ctx context.Context, p model.Publication) (model.Publication, error) {
	res, err := r.col.InsertOne(ctx, publicationDoc(p))
	if err != nil {
		return model.Publication{}, fmt.Errorf("add publication: %w", err)
	}
	p.ID = docID(res.InsertedID)
	p.Authors = NormalizeList(p.Authors)
	return p, nil
}

func (r *mongoPublicationRepo) Update(ctx context.Context, id string, patch dto.PublicationPatch) error {
	set := publicationSetDoc(patch)
	if len(set) == 0 {
		return nil
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid publication id %q: %w", id, err)
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update publication: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPublicationRepo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid publication id %q: %w", id, err)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete publication: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func publicationFromDoc(doc bson.M) model.Publication {
	return model.Publication{
		ID:      docID(doc["_id"]),
		Title:   asString(doc["title"]),
		Authors: NormalizeList(doc["authors"]),
		Journal: asString(doc["journal"]),
		Volume:  asString(doc["volume"]),
		Year:    asInt(doc["year"], 0),
		DOI:     asString(doc["doi"]),
	}
}

func publicationDoc(p model.Publication) bson.M {
	return bson.M{
		"title":   p.Title,
		"authors": NormalizeList(p.Authors),
		"journal": p.Journal,
		"volume":  p.Volume,
		"year":    p.Year,
		"doi":     p.DOI,
	}
}

func publicationSetDoc(p dto.PublicationPatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Authors != nil {
		set["authors"] = NormalizeList(*p.Authors)
	}
	if p.Journal != nil {
		set["journal"] = *p.Journal
	}
	if p.Volume != nil {
		set["volume"] = *p.Volume
	}
	if p.Year != nil {
		set["year"] = *p.Year
	}
	if p.DOI != nil {
		set["doi"] = *p.DOI
	}
	return set
}
