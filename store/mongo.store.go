package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is a document store backed by a mongo database
type Mongo struct {
	DB  *mongo.Database
	now func() time.Time
}

// NewMongo creates a store on the given database
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{DB: db, now: time.Now}
}

// CreateDocument inserts the document and returns the hex encoded object id
func (m *Mongo) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	fields, err := toFields(doc, m.now().UTC())
	if err != nil {
		return "", writeErr(err)
	}

	res, err := m.DB.Collection(collection).InsertOne(ctx, fields)
	if err != nil {
		return "", writeErr(err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id.Hex(), nil
	}
	return "", writeErr(errors.New("unexpected inserted id type"))
}

// GetDocuments decodes the matching documents into out
func (m *Mongo) GetDocuments(ctx context.Context, collection string, query Query, out interface{}) error {
	if _, err := sliceOf(out); err != nil {
		return err
	}

	filter := bson.M{}
	for key, value := range query.Filter {
		filter[key] = value
	}

	opts := options.Find()
	if query.Newest {
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	}
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	cursor, err := m.DB.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

// UpdateDocument sets the given fields on the document with the given object id
func (m *Mongo) UpdateDocument(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{"updated_at": m.now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	res, err := m.DB.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return writeErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// ListCollections returns the collection names of the database
func (m *Mongo) ListCollections(ctx context.Context) ([]string, error) {
	return m.DB.ListCollectionNames(ctx, bson.D{})
}

// Ping checks the connection with the mongo deployment
func (m *Mongo) Ping(ctx context.Context) error {
	return m.DB.Client().Ping(ctx, nil)
}
