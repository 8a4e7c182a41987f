// Package store persists uploaded permission graphs for the API server.
//
// This package defines the storage interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for production deployments
//
// Stored graphs are keyed by server-generated UUIDs; clients upload a
// graph once and then request diagrams of it by ID with varying layout
// and render options.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/permlens/permlens/pkg/graph"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a graph does not exist.
	ErrNotFound = errors.New("graph not found")
)

// StoredGraph is a persisted permission graph with its identity and
// bookkeeping fields.
type StoredGraph struct {
	ID        string      `json:"id" bson:"_id"`
	Name      string      `json:"name,omitempty" bson:"name,omitempty"`
	Graph     graph.Graph `json:"graph" bson:"graph"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// GraphStore is the interface for graph storage backends.
type GraphStore interface {
	// Get retrieves a graph by ID. Returns [ErrNotFound] if absent.
	Get(ctx context.Context, id string) (*StoredGraph, error)

	// Put stores a graph, overwriting any existing graph with the same ID.
	Put(ctx context.Context, g *StoredGraph) error

	// Delete removes a graph. Returns [ErrNotFound] if absent.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored graphs.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewStoredGraph wraps a graph in a record with a fresh UUID and
// timestamps.
func NewStoredGraph(name string, g graph.Graph) *StoredGraph {
	now := time.Now().UTC()
	return &StoredGraph{
		ID:        uuid.NewString(),
		Name:      name,
		Graph:     g,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
