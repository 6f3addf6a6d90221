package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/courseforge/course-market/internal/core/domain"
)

const collectionPurchases = "purchases"

type PurchaseRepository struct {
	coll *mongo.Collection
}

func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{coll: db.Collection(collectionPurchases)}
}

type mongoPurchase struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	CourseID  string             `bson:"course_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *PurchaseRepository) Create(ctx context.Context, p *domain.Purchase) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mongoPurchase{
		UserID:    p.UserID,
		CourseID:  p.CourseID,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("insert purchase: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert purchase: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *PurchaseRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find purchases: %w", err)
	}
	defer cur.Close(ctx)

	purchases := []*domain.Purchase{}
	for cur.Next(ctx) {
		var mp mongoPurchase
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode purchase: %w", err)
		}
		purchases = append(purchases, toDomainPurchase(&mp))
	}
	return purchases, cur.Err()
}

func (r *PurchaseRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*domain.Purchase, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPurchase
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "course_id": courseID}).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("find purchase: %w", err)
	}
	return toDomainPurchase(&mp), nil
}

// EnsureIndexes creates the user index used by purchase listings.
func (r *PurchaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "course_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDomainPurchase(mp *mongoPurchase) *domain.Purchase {
	return &domain.Purchase{
		ID:        mp.ID.Hex(),
		UserID:    mp.UserID,
		CourseID:  mp.CourseID,
		CreatedAt: mp.CreatedAt.UTC(),
	}
}
