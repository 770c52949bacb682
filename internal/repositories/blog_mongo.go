package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/bloglist/internal/logger"
	"github.com/sbilibin2017/bloglist/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const blogsCollection = "blogs"

// blogDocument is the shape of a blog in the blogs collection.
type blogDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Version int                `bson:"__v"`
	Title   string             `bson:"title,omitempty"`
	Author  string             `bson:"author,omitempty"`
	URL     string             `bson:"url,omitempty"`
	Likes   int                `bson:"likes"`
}

func (d blogDocument) record() models.BlogRecord {
	return models.BlogRecord{
		ID:       d.ID.Hex(),
		Revision: d.Version,
		Title:    d.Title,
		Author:   d.Author,
		URL:      d.URL,
		Likes:    d.Likes,
	}
}

// BlogMongoRepository stores blogs in a MongoDB collection.
type BlogMongoRepository struct {
	coll *mongo.Collection
}

func NewBlogMongoRepository(db *mongo.Database) *BlogMongoRepository {
	return &BlogMongoRepository{coll: db.Collection(blogsCollection)}
}

func (r *BlogMongoRepository) FindAll(ctx context.Context) ([]models.BlogRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		logger.Log.Infow("mongo operation", "collection", blogsCollection, "op", "find", "error", err)
		return nil, err
	}

	var docs []blogDocument
	err = cursor.All(ctx, &docs)

	logger.Log.Infow("mongo operation",
		"collection", blogsCollection,
		"op", "find",
		"result", len(docs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	records := make([]models.BlogRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, d.record())
	}
	return records, nil
}

func (r *BlogMongoRepository) Create(ctx context.Context, blog models.BlogRecord) (models.BlogRecord, error) {
	doc := blogDocument{
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
	}

	res, err := r.coll.InsertOne(ctx, doc)

	logger.Log.Infow("mongo operation",
		"collection", blogsCollection,
		"op", "insertOne",
		"args", doc,
		"error", err,
	)

	if err != nil {
		return models.BlogRecord{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.BlogRecord{}, errors.New("unexpected inserted id type")
	}
	doc.ID = oid
	return doc.record(), nil
}

func (r *BlogMongoRepository) FindByIDAndRemove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}

	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()

	logger.Log.Infow("mongo operation",
		"collection", blogsCollection,
		"op", "findOneAndDelete",
		"args", id,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrNotFound
	}
	return err
}

// FindByIDAndUpdate sets the supplied fields and unsets the absent ones,
// returning the document as it is after the update.
func (r *BlogMongoRepository) FindByIDAndUpdate(ctx context.Context, id string, in models.BlogInput) (models.BlogRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.BlogRecord{}, models.ErrInvalidID
	}

	update := blogUpdate(in)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc blogDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)

	logger.Log.Infow("mongo operation",
		"collection", blogsCollection,
		"op", "findOneAndUpdate",
		"args", []any{id, update},
		"result", doc,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BlogRecord{}, models.ErrNotFound
	}
	if err != nil {
		return models.BlogRecord{}, err
	}
	return doc.record(), nil
}

// blogUpdate builds a full-replace update document for the four blog fields.
func blogUpdate(in models.BlogInput) bson.D {
	set := bson.D{}
	unset := bson.D{}

	if in.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *in.Title})
	} else {
		unset = append(unset, bson.E{Key: "title", Value: ""})
	}
	if in.Author != nil {
		set = append(set, bson.E{Key: "author", Value: *in.Author})
	} else {
		unset = append(unset, bson.E{Key: "author", Value: ""})
	}
	if in.URL != nil {
		set = append(set, bson.E{Key: "url", Value: *in.URL})
	} else {
		unset = append(unset, bson.E{Key: "url", Value: ""})
	}
	if in.Likes != nil {
		set = append(set, bson.E{Key: "likes", Value: *in.Likes})
	} else {
		unset = append(unset, bson.E{Key: "likes", Value: ""})
	}

	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}
	return update
}
