package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

const collectionMemberships = "memberships"

type MembershipRepository struct {
	col *mongo.Collection
}

func NewMembershipRepository(db *mongo.Database) *MembershipRepository {
	return &MembershipRepository{col: db.Collection(collectionMemberships)}
}

func (r *MembershipRepository) Create(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *m
	if created.ID == "" {
		created.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, &created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMembershipExists
		}
		return nil, fmt.Errorf("insert membership: %w", err)
	}
	return &created, nil
}

func (r *MembershipRepository) FindByID(ctx context.Context, id string) (*domain.Membership, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByUserAndLoft resolves the single relation for a (user, loft) pair.
// This is the query behind every authorization decision.
func (r *MembershipRepository) FindByUserAndLoft(ctx context.Context, userID, loftID string) (*domain.Membership, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "loft_id": loftID})
}

func (r *MembershipRepository) findOne(ctx context.Context, filter bson.M) (*domain.Membership, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Membership
	if err := r.col.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("find membership: %w", err)
	}
	return &m, nil
}

func (r *MembershipRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Membership, error) {
	return r.findMany(ctx, bson.M{"user_id": userID})
}

func (r *MembershipRepository) FindByLoftID(ctx context.Context, loftID string) ([]*domain.Membership, error) {
	return r.findMany(ctx, bson.M{"loft_id": loftID})
}

func (r *MembershipRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Membership, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find memberships: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Membership
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode memberships: %w", err)
	}
	return out, nil
}

func (r *MembershipRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMembershipNotFound
	}
	return nil
}

// EnsureIndexes enforces the one-relation-per-pair invariant with a unique
// compound index, plus lookup indexes for both directions.
func (r *MembershipRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "loft_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "loft_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
