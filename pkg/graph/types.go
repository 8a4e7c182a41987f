package graph

import "errors"

var (
	// ErrInvalidNodeID is returned by [Validate] when a node has an empty ID.
	// All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Validate] when two nodes share an ID.
	// Node IDs must be unique across the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrInvalidNodeType is returned by [Validate] for an unrecognized node type.
	ErrInvalidNodeType = errors.New("invalid node type")

	// ErrInvalidAccess is returned by [Validate] for an unrecognized access value.
	ErrInvalidAccess = errors.New("invalid access value")
)

// NodeType classifies a node in the permission model.
type NodeType string

// Node types.
const (
	TypePermissionSet   NodeType = "permissionSet"
	TypePermissionGroup NodeType = "permissionGroup"
	TypeControl         NodeType = "control"
	TypeOther           NodeType = "other"
)

// ValidNodeType reports whether t is a recognized node type.
// The empty string is valid and normalized to [TypeOther] by [Validate].
func ValidNodeType(t NodeType) bool {
	switch t {
	case TypePermissionSet, TypePermissionGroup, TypeControl, TypeOther, "":
		return true
	}
	return false
}

// Access is the kind of access an edge grants.
type Access string

// Access values.
const (
	AccessAllow Access = "ALLOW"
	AccessDeny  Access = "DENY"
)

// ValidAccess reports whether a is a recognized access value.
// The empty string is valid and normalized to [AccessAllow] by [Validate].
func ValidAccess(a Access) bool {
	switch a {
	case AccessAllow, AccessDeny, "":
		return true
	}
	return false
}

// Node is a vertex in the permission graph.
//
// Position is assigned by the layout adapter and is absent (zero) until a
// layout pass has run; see pkg/layout. Drag operations overwrite positions
// in place through the scene's position store, never through this type.
type Node struct {
	ID      string   `json:"id" bson:"id"`
	Name    string   `json:"name,omitempty" bson:"name,omitempty"` // display name (defaults to ID)
	Type    NodeType `json:"type,omitempty" bson:"type,omitempty"`
	Group   int      `json:"group,omitempty" bson:"group,omitempty"` // visual category
	Enabled *bool    `json:"enabled,omitempty" bson:"enabled,omitempty"`
}

// DisplayName returns the name if set, otherwise the ID.
func (n Node) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// IsEnabled reports whether the node is enabled. Nodes without an explicit
// flag count as enabled.
func (n Node) IsEnabled() bool { return n.Enabled == nil || *n.Enabled }

// Edge is a directed access edge between two nodes.
type Edge struct {
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
	Access Access `json:"access,omitempty" bson:"access,omitempty"`
}

// Touches reports whether the edge has id as either endpoint.
func (e Edge) Touches(id string) bool { return e.Source == id || e.Target == id }

// Graph is the canonical serialization format for permission graphs.
// Used for JSON files, API responses, storage, and caching.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// IsEmpty reports whether the graph has neither nodes nor edges.
// An empty graph is a content-empty state, not an error: renderers emit a
// placeholder instead of failing.
func (g Graph) IsEmpty() bool { return len(g.Nodes) == 0 && len(g.Edges) == 0 }
