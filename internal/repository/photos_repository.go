package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"labsite/model"
)

// PhotosRepository manages the singleton site-imagery document. Unlike
// the other collections it is upserted, never added/deleted.
type PhotosRepository interface {
	Get(ctx context.Context) (model.Photos, error)
	Save(ctx context.Context, p model.Photos) error
}

type mongoPhotosRepo struct {
	col *mongo.Collection
}

func NewPhotosRepo(db *mongo.Database) PhotosRepository {
	return &mongoPhotosRepo{col: db.Collection("photos")}
}

func (r *mongoPhotosRepo) Get(ctx context.Context) (model.Photos, error) {
	var doc bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": model.PhotosDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Photos{}, nil
	}
	if err != nil {
		return model.Photos{}, fmt.Errorf("fetch photos: %w", err)
	}
	return photosFromDoc(doc), nil
}

func (r *mongoPhotosRepo) Save(ctx context.Context, p model.Photos) error {
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": model.PhotosDocID},
		photosDoc(p),
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save photos: %w", err)
	}
	return nil
}

func photosFromDoc(doc bson.M) model.Photos {
	return model.Photos{
		ProfileImageURL:    asString(doc["profileImageUrl"]),
		BannerImageURL:     asString(doc["bannerImageUrl"]),
		ResearchBanner1URL: asString(doc["researchBanner1Url"]),
		ResearchBanner2URL: asString(doc["researchBanner2Url"]),
		ResearchBanner3URL: asString(doc["researchBanner3Url"]),
	}
}

func photosDoc(p model.Photos) bson.M {
	return bson.M{
		"_id":                model.PhotosDocID,
		"profileImageUrl":    p.ProfileImageURL,
		"bannerImageUrl":     p.BannerImageURL,
		"researchBanner1Url": p.ResearchBanner1URL,
		"researchBanner2Url": p.ResearchBanner2URL,
		"researchBanner3Url": p.ResearchBanner3URL,
	}
}
