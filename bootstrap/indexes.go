package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureContentIndexes backs the collection-specific list orderings:
// teams by roleOrder/name, publications by year desc, research by title.
func EnsureContentIndexes(db *mongo.Database) error {
	ctx := context.Background()

	if _, err := db.Collection("teams").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "roleOrder", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().SetName("role_order_name"),
		},
	); err != nil {
		return err
	}

	if _, err := db.Collection("publications").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "year", Value: -1}},
			Options: options.Index().SetName("year_desc"),
		},
	); err != nil {
		return err
	}

	_, err := db.Collection("research").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("title_asc"),
		},
	)
	return err
}
