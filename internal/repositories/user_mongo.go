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

const usersCollection = "users"

// userDocument is the shape of a user in the users collection.
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Version      int                `bson:"__v"`
	Username     string             `bson:"username"`
	Name         string             `bson:"name,omitempty"`
	PasswordHash string             `bson:"passwordHash"`
	Adult        bool               `bson:"adult"`
}

func (d userDocument) record() models.UserRecord {
	return models.UserRecord{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Adult:        d.Adult,
	}
}

// UserMongoRepository stores users in a MongoDB collection.
type UserMongoRepository struct {
	coll *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) *UserMongoRepository {
	return &UserMongoRepository{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique index on username.
func (r *UserMongoRepository) EnsureIndexes(ctx context.Context) error {
	name, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	logger.Log.Infow("mongo operation",
		"collection", usersCollection,
		"op", "createIndex",
		"result", name,
		"error", err,
	)

	return err
}

func (r *UserMongoRepository) FindAll(ctx context.Context) ([]models.UserRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		logger.Log.Infow("mongo operation", "collection", usersCollection, "op", "find", "error", err)
		return nil, err
	}

	var docs []userDocument
	err = cursor.All(ctx, &docs)

	logger.Log.Infow("mongo operation",
		"collection", usersCollection,
		"op", "find",
		"result", len(docs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	users := make([]models.UserRecord, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.record())
	}
	return users, nil
}

func (r *UserMongoRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))

	logger.Log.Infow("mongo operation",
		"collection", usersCollection,
		"op", "countDocuments",
		"args", username,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserMongoRepository) Create(ctx context.Context, user models.UserRecord) (models.UserRecord, error) {
	doc := userDocument{
		Username:     user.Username,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Adult:        user.Adult,
	}

	res, err := r.coll.InsertOne(ctx, doc)

	// The hash stays out of the log.
	logger.Log.Infow("mongo operation",
		"collection", usersCollection,
		"op", "insertOne",
		"args", user.Username,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return models.UserRecord{}, models.ErrDuplicateUsername
	}
	if err != nil {
		return models.UserRecord{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.UserRecord{}, errors.New("unexpected inserted id type")
	}
	doc.ID = oid
	return doc.record(), nil
}
