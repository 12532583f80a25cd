package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"airlace/database"
	"airlace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB. Documents
// carry a "seq" field set at seed time; queries sort on it so results keep
// catalog order.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	coll := database.MongoClient.Database("airlace").Collection("properties")
	repo := &MongoCatalogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "region", Value: 1}}},
		{Keys: bson.D{{Key: "seq", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Seed replaces the collection contents with the given catalog, numbering
// documents so reads reproduce the input order.
func (r *MongoCatalogRepo) Seed(properties []models.Property) error {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear properties collection: %w", err)
	}

	docs := make([]interface{}, 0, len(properties))
	for i, p := range properties {
		docs = append(docs, bson.M{
			"seq":         i,
			"id":          p.ID,
			"title":       p.Title,
			"description": p.Description,
			"location":    p.Location,
			"price":       p.Price,
			"rating":      p.Rating,
			"image_url":   p.ImageURL,
			"is_new":      p.IsNew,
			"is_featured": p.IsFeatured,
			"amenities":   p.Amenities,
			"max_guests":  p.MaxGuests,
			"bedrooms":    p.Bedrooms,
			"beds":        p.Beds,
			"baths":       p.Baths,
			"region":      p.Region,
		})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed properties: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) All() ([]models.Property, error) {
	return r.find(bson.M{})
}

func (r *MongoCatalogRepo) GetByID(id string) (*models.Property, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prop models.Property
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&prop)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch property %s: %w", id, err)
	}
	return &prop, nil
}

func (r *MongoCatalogRepo) Featured() ([]models.Property, error) {
	return r.find(bson.M{"is_featured": true})
}

func (r *MongoCatalogRepo) New() ([]models.Property, error) {
	return r.find(bson.M{"is_new": true})
}

func (r *MongoCatalogRepo) ByRegion(region string) ([]models.Property, error) {
	return r.find(bson.M{"region": region})
}

func (r *MongoCatalogRepo) find(filter bson.M) ([]models.Property, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return properties, nil
}
