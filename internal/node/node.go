// Package node defines the core domain types for traceability nodes.
package node

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// ID identifies a node within one dataset version.
type ID string

// String returns the raw identifier.
func (id ID) String() string { return string(id) }

// Node is one traceability item (requirement, spec, test, person, ...).
type Node struct {
	ID   ID     `json:"id,omitempty"`
	Type string `json:"type,omitempty"` // raw kind as found in the dataset

	Links     []ID `json:"links,omitempty"`      // forward links, graph edges
	LinksBack []ID `json:"links_back,omitempty"` // informational only

	Title  string   `json:"title,omitempty"`
	Status string   `json:"status,omitempty"`
	URL    string   `json:"url,omitempty"`
	Tags   []string `json:"tags,omitempty"`

	// Extra holds every attribute outside the fixed schema.
	Extra map[string]any `json:"-"`
}

// Kind resolves the node's raw type. A missing type resolves to KindUnknown.
func (n *Node) Kind() Kind {
	return ParseKind(n.Type)
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	out := n
	out.Links = slices.Clone(n.Links)
	out.LinksBack = slices.Clone(n.LinksBack)
	out.Tags = slices.Clone(n.Tags)
	if n.Extra != nil {
		out.Extra = make(map[string]any, len(n.Extra))
		for k, v := range n.Extra {
			out.Extra[k] = cloneValue(v)
		}
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// fixed schema keys as they appear in dataset documents
var schemaKeys = map[string]bool{
	"id": true, "type": true, "links": true, "links_back": true,
	"title": true, "status": true, "url": true, "tags": true,
}

// UnmarshalJSON decodes a node, collecting unknown keys into Extra.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := fromMap(raw)
	if err != nil {
		return err
	}
	*n = decoded
	return nil
}

// UnmarshalYAML decodes a node from a YAML mapping, collecting unknown keys into Extra.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	decoded, err := fromMap(raw)
	if err != nil {
		return err
	}
	*n = decoded
	return nil
}

// MarshalJSON encodes the fixed fields with Extra flattened alongside them.
func (n Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(n.Extra)+8)
	maps.Copy(out, n.Extra)

	type plain Node
	fixed, err := json.Marshal(plain(n))
	if err != nil {
		return nil, err
	}
	var fixedMap map[string]any
	if err := json.Unmarshal(fixed, &fixedMap); err != nil {
		return nil, err
	}
	maps.Copy(out, fixedMap)
	return json.Marshal(out)
}

func fromMap(raw map[string]any) (Node, error) {
	var n Node
	var err error

	id, err := optString(raw, "id")
	if err != nil {
		return Node{}, err
	}
	n.ID = ID(id)
	if n.Type, err = optString(raw, "type"); err != nil {
		return Node{}, err
	}
	if n.Title, err = optString(raw, "title"); err != nil {
		return Node{}, err
	}
	if n.Status, err = optString(raw, "status"); err != nil {
		return Node{}, err
	}
	if n.URL, err = optString(raw, "url"); err != nil {
		return Node{}, err
	}
	if n.Tags, err = optStrings(raw, "tags"); err != nil {
		return Node{}, err
	}

	links, err := optStrings(raw, "links")
	if err != nil {
		return Node{}, err
	}
	for _, l := range links {
		n.Links = append(n.Links, ID(l))
	}
	back, err := optStrings(raw, "links_back")
	if err != nil {
		return Node{}, err
	}
	for _, l := range back {
		n.LinksBack = append(n.LinksBack, ID(l))
	}

	for k, v := range raw {
		if schemaKeys[k] {
			continue
		}
		if n.Extra == nil {
			n.Extra = make(map[string]any)
		}
		n.Extra[k] = v
	}
	return n, nil
}

func optString(raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, v)
	}
	return s, nil
}

func optStrings(raw map[string]any, key string) ([]string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q: expected array, got %T", key, v)
	}
	out := make([]string, 0, len(list))
	for i, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("field %q[%d]: expected string, got %T", key, i, e)
		}
		out = append(out, s)
	}
	return out, nil
}
