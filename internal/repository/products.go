package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/familygrill/backend/internal/models"
)

// ProductRepository implements catalog persistence against the
// "products" collection.
type ProductRepository struct {
	coll *mongo.Collection
}

// NewProductRepository creates a ProductRepository bound to db.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

// productFilter builds the catalog list filter: optional exact category
// match plus a case-insensitive substring match over name and description.
func productFilter(category, search string) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
		}
	}
	return filter
}

// List returns catalog items matching the optional category and search
// filters, sorted by name, capped at listLimit.
func (r *ProductRepository) List(ctx context.Context, category, search string) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, productFilter(category, search),
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("List products: %w", err)
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("List products: %w", err)
	}
	return products, nil
}

// FindByID returns the product with the given store id, or models.ErrNotFound.
func (r *ProductRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Product, error) {
	var p models.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Product{}, fmt.Errorf("FindByID: %w", mapFindErr(err))
	}
	return p, nil
}

// Insert stores a new product and returns the id the store assigned.
func (r *ProductRepository) Insert(ctx context.Context, p models.Product) (bson.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("Insert product: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("Insert product: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// productPatch builds the $set document for a product update. The store id
// is never part of the patch.
func productPatch(p models.Product) bson.M {
	return bson.M{"$set": bson.M{
		"name":          p.Name,
		"description":   p.Description,
		"price":         p.Price,
		"category":      p.Category,
		"image":         p.Image,
		"specs":         p.Specs,
		"on_sale":       p.OnSale,
		"regular_price": p.RegularPrice,
	}}
}

// Update overwrites the mutable fields of the product with the given id.
// Returns models.ErrNotFound when the id matches no product.
func (r *ProductRepository) Update(ctx context.Context, id bson.ObjectID, p models.Product) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, productPatch(p))
	if err != nil {
		return fmt.Errorf("Update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
