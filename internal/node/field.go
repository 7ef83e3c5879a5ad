package node

import (
	"reflect"
	"strings"
)

// HasField reports whether the named field carries a value.
//
// Fixed schema fields are consulted first, then Extra. Strings count only when
// non-blank and collections only when non-empty, on both paths. Booleans and
// numbers in Extra are always present, whatever their value.
func (n *Node) HasField(name string) bool {
	switch name {
	case "id":
		return notBlank(string(n.ID))
	case "type", "kind":
		return notBlank(n.Type)
	case "title":
		return notBlank(n.Title)
	case "status":
		return notBlank(n.Status)
	case "url":
		return notBlank(n.URL)
	case "tags":
		return len(n.Tags) > 0
	case "links":
		return len(n.Links) > 0
	case "links_back":
		return len(n.LinksBack) > 0
	}
	v, ok := n.Extra[name]
	if !ok {
		return false
	}
	return valuePresent(v)
}

// Field returns the raw value of a field and whether it is present per HasField.
func (n *Node) Field(name string) (any, bool) {
	if !n.HasField(name) {
		return nil, false
	}
	switch name {
	case "id":
		return string(n.ID), true
	case "type", "kind":
		return n.Type, true
	case "title":
		return n.Title, true
	case "status":
		return n.Status, true
	case "url":
		return n.URL, true
	case "tags":
		return n.Tags, true
	case "links":
		return n.Links, true
	case "links_back":
		return n.LinksBack, true
	}
	return n.Extra[name], true
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func valuePresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return notBlank(t)
	case bool:
		return true
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	// Numbers and anything decoded into a concrete type.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
