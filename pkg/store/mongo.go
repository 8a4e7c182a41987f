package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/permlens/permlens/pkg/observability"
)

// Mongo collection layout.
const (
	defaultDatabase  = "permlens"
	graphsCollection = "graphs"
)

// MongoStore persists graphs in a MongoDB collection, one document per
// graph keyed by its UUID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB deployment at uri and verifies
// the connection with a ping. An empty database name uses "permlens".
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(graphsCollection),
	}, nil
}

// Get retrieves a graph by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*StoredGraph, error) {
	start := time.Now()

	var g StoredGraph
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	observability.Store().OnStoreGet(ctx, id, err == nil, time.Since(start))
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Put stores a graph, replacing any existing document with the same ID.
func (s *MongoStore) Put(ctx context.Context, g *StoredGraph) error {
	start := time.Now()

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": g.ID}, g, options.Replace().SetUpsert(true))
	if err == nil {
		observability.Store().OnStorePut(ctx, g.ID, len(g.Graph.Nodes), time.Since(start))
	}
	return err
}

// Delete removes a graph.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	start := time.Now()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	observability.Store().OnStoreDelete(ctx, id, time.Since(start))
	return nil
}

// List returns the IDs of all stored graphs.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cur.Err()
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ GraphStore = (*MongoStore)(nil)
