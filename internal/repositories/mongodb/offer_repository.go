package mongodb

import (
	"context"
	"fmt"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type offerRepository struct {
	collection *mongo.Collection
}

func NewOfferRepository(db *mongo.Database) interfaces.OfferRepository {
	return &offerRepository{
		collection: db.Collection("ride_offers"),
	}
}

// EnsureOfferIndexes creates the indexes the pool reads depend on.
func EnsureOfferIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("ride_offers").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "driver_id", Value: 1}}},
		{Keys: bson.D{{Key: "departure_time", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create offer indexes: %w", err)
	}
	return nil
}

func (r *offerRepository) Create(ctx context.Context, offer *models.RideOffer) error {
	offer.ID = primitive.NewObjectID()
	offer.CreatedAt = time.Now()
	offer.UpdatedAt = offer.CreatedAt
	if offer.Status == "" {
		offer.Status = models.OfferStatusActive
	}

	_, err := r.collection.InsertOne(ctx, offer)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}

	return nil
}

func (r *offerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideOffer, error) {
	var offer models.RideOffer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&offer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("offer not found")
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	return &offer, nil
}

func (r *offerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	return nil
}

func (r *offerRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OfferStatus) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update offer status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("offer not found")
	}

	return nil
}

// GetActiveOffers sorts by creation time ascending so the candidate pool
// order, and therefore the first-match tie-break, is stable across reads.
func (r *offerRepository) GetActiveOffers(ctx context.Context) ([]*models.RideOffer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"status": models.OfferStatusActive}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get active offers: %w", err)
	}
	defer cursor.Close(ctx)

	var offers []*models.RideOffer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode active offers: %w", err)
	}

	return offers, nil
}

func (r *offerRepository) GetActiveOffersByDriver(ctx context.Context, driverID primitive.ObjectID) ([]*models.RideOffer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{
		"status":    models.OfferStatusActive,
		"driver_id": driverID,
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver offers: %w", err)
	}
	defer cursor.Close(ctx)

	var offers []*models.RideOffer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode driver offers: %w", err)
	}

	return offers, nil
}

func (r *offerRepository) GetOffersByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.RideOffer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "departure_time", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{
		"departure_time": bson.M{
			"$gte": startDate,
			"$lte": endDate,
		},
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get offers by date range: %w", err)
	}
	defer cursor.Close(ctx)

	var offers []*models.RideOffer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode offers by date range: %w", err)
	}

	return offers, nil
}
