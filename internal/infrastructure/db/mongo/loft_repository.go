package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

const collectionLofts = "lofts"

type LoftRepository struct {
	col *mongo.Collection
}

func NewLoftRepository(db *mongo.Database) *LoftRepository {
	return &LoftRepository{col: db.Collection(collectionLofts)}
}

func (r *LoftRepository) Create(ctx context.Context, loft *domain.Loft) (*domain.Loft, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *loft
	if created.ID == "" {
		created.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert loft: %w", err)
	}
	return &created, nil
}

func (r *LoftRepository) FindByID(ctx context.Context, id string) (*domain.Loft, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var loft domain.Loft
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&loft); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLoftNotFound
		}
		return nil, fmt.Errorf("find loft: %w", err)
	}
	return &loft, nil
}

func (r *LoftRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*domain.Loft, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("find lofts by owner: %w", err)
	}
	defer cursor.Close(ctx)

	var lofts []*domain.Loft
	if err := cursor.All(ctx, &lofts); err != nil {
		return nil, fmt.Errorf("decode lofts: %w", err)
	}
	return lofts, nil
}

func (r *LoftRepository) Update(ctx context.Context, loft *domain.Loft) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": loft.ID}, loft)
	if err != nil {
		return fmt.Errorf("update loft: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLoftNotFound
	}
	return nil
}

func (r *LoftRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *LoftRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
