package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
)

const categoryCollection = "categories"

type MongoCategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{coll: db.Collection(categoryCollection)}
}

type mongoCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Group     string             `bson:"category_group"`
	UserEmail string             `bson:"user_email"`
}

func (r *MongoCategoryRepository) ListByUser(ctx context.Context, userEmail string) ([]domain.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_email": userEmail})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	for cursor.Next(ctx) {
		var mc mongoCategory
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *MongoCategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	doc := mongoCategory{
		Name:      category.Name,
		Group:     string(category.Group),
		UserEmail: category.UserEmail,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	created := *category
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = id.Hex()
	}
	return &created, nil
}

func (r *MongoCategoryRepository) Delete(ctx context.Context, id, userEmail string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}

	// Scoped to the owner so one user cannot delete another user's slice.
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_email": userEmail})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (mc mongoCategory) toDomain() domain.Category {
	return domain.Category{
		ID:        mc.ID.Hex(),
		Name:      mc.Name,
		Group:     domain.CategoryGroup(mc.Group),
		UserEmail: mc.UserEmail,
	}
}
