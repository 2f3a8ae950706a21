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
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

const collectionPigeons = "pigeons"

type PigeonRepository struct {
	col *mongo.Collection
}

func NewPigeonRepository(db *mongo.Database) *PigeonRepository {
	return &PigeonRepository{col: db.Collection(collectionPigeons)}
}

func (r *PigeonRepository) Create(ctx context.Context, p *domain.Pigeon) (*domain.Pigeon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *p
	if created.ID == "" {
		created.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert pigeon: %w", err)
	}
	return &created, nil
}

func (r *PigeonRepository) FindByID(ctx context.Context, id string) (*domain.Pigeon, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByRing resolves a ring reference within a single loft. Rings are only
// unique per breeder, so the loft scope is what keeps pedigrees from
// crossing tenant boundaries.
func (r *PigeonRepository) FindByRing(ctx context.Context, ring, loftID string) (*domain.Pigeon, error) {
	return r.findOne(ctx, bson.M{"ring": ring, "loft_id": loftID})
}

func (r *PigeonRepository) findOne(ctx context.Context, filter bson.M) (*domain.Pigeon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Pigeon
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPigeonNotFound
		}
		return nil, fmt.Errorf("find pigeon: %w", err)
	}
	return &p, nil
}

func (r *PigeonRepository) FindByLoftID(ctx context.Context, filter ports.ListPigeonsFilter) ([]*domain.Pigeon, error) {
	query := bson.M{"loft_id": filter.LoftID}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Sex != "" {
		query["sex"] = filter.Sex
	}
	if filter.Line != "" {
		query["line"] = filter.Line
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"ring": pattern},
			bson.M{"color": pattern},
			bson.M{"line": pattern},
		}
	}
	return r.findMany(ctx, query)
}

// FindByParentRing returns every pigeon in the loft referencing ring as
// father or mother.
func (r *PigeonRepository) FindByParentRing(ctx context.Context, ring, loftID string) ([]*domain.Pigeon, error) {
	return r.findMany(ctx, bson.M{
		"loft_id": loftID,
		"$or": bson.A{
			bson.M{"father_ring": ring},
			bson.M{"mother_ring": ring},
		},
	})
}

func (r *PigeonRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Pigeon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find pigeons: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Pigeon
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode pigeons: %w", err)
	}
	return out, nil
}

func (r *PigeonRepository) Update(ctx context.Context, p *domain.Pigeon) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("update pigeon: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPigeonNotFound
	}
	return nil
}

func (r *PigeonRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete pigeon: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPigeonNotFound
	}
	return nil
}

func (r *PigeonRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "loft_id", Value: 1}, {Key: "ring", Value: 1}}},
		{Keys: bson.D{{Key: "loft_id", Value: 1}, {Key: "father_ring", Value: 1}}},
		{Keys: bson.D{{Key: "loft_id", Value: 1}, {Key: "mother_ring", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
