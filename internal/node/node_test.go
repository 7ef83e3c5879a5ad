package node

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"person", KindPerson},
		{"team", KindTeam},
		{"req", KindReq},
		{"swreq", KindSwreq},
		{"testsuite", KindTestsuite},
		{"PERSON", KindPerson},
		{"TeAm", KindTeam},
		{" test ", KindTest},
		{"invalid", KindUnknown},
		{"", KindUnknown},
		{"   ", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseKind(tt.raw); got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestKind_UnmarshalJSON(t *testing.T) {
	var kinds []Kind
	if err := json.Unmarshal([]byte(`["Req", "spec", "bogus"]`), &kinds); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []Kind{KindReq, KindSpec, KindUnknown}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %q, want %q", i, kinds[i], want[i])
		}
	}
}

func TestNode_MissingTypeIsUnknown(t *testing.T) {
	n := Node{ID: "X"}
	if got := n.Kind(); got != KindUnknown {
		t.Errorf("Kind() = %q, want unknown", got)
	}
}

func TestNode_UnmarshalJSON(t *testing.T) {
	data := `{
		"id": "test-id",
		"type": "note",
		"links": ["link1", "link2"],
		"links_back": ["back1"],
		"title": "Test Title",
		"status": "active",
		"tags": ["tag1", "tag2"],
		"custom_field": "custom_value"
	}`

	var n Node
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if n.ID != "test-id" {
		t.Errorf("ID = %q", n.ID)
	}
	if n.Type != "note" || n.Kind() != KindUnknown {
		t.Errorf("Type = %q, Kind() = %q", n.Type, n.Kind())
	}
	if len(n.Links) != 2 || n.Links[0] != "link1" || n.Links[1] != "link2" {
		t.Errorf("Links = %v", n.Links)
	}
	if len(n.LinksBack) != 1 || n.LinksBack[0] != "back1" {
		t.Errorf("LinksBack = %v", n.LinksBack)
	}
	if n.Title != "Test Title" || n.Status != "active" {
		t.Errorf("Title = %q, Status = %q", n.Title, n.Status)
	}
	if len(n.Tags) != 2 {
		t.Errorf("Tags = %v", n.Tags)
	}
	if n.Extra["custom_field"] != "custom_value" {
		t.Errorf("Extra[custom_field] = %v", n.Extra["custom_field"])
	}
	if _, ok := n.Extra["title"]; ok {
		t.Error("schema field leaked into Extra")
	}
}

func TestNode_UnmarshalJSON_WrongType(t *testing.T) {
	var n Node
	if err := json.Unmarshal([]byte(`{"links": "SPEC_1"}`), &n); err == nil {
		t.Error("expected error for non-array links")
	}
}

func TestNode_UnmarshalYAML(t *testing.T) {
	data := `
id: REQ_1
type: req
links: [SPEC_1]
owner: alice
priority: 3
`
	var n Node
	if err := yaml.Unmarshal([]byte(data), &n); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if n.ID != "REQ_1" || n.Kind() != KindReq {
		t.Errorf("got id=%q kind=%q", n.ID, n.Kind())
	}
	if len(n.Links) != 1 || n.Links[0] != "SPEC_1" {
		t.Errorf("Links = %v", n.Links)
	}
	if n.Extra["owner"] != "alice" {
		t.Errorf("Extra[owner] = %v", n.Extra["owner"])
	}
	if !n.HasField("priority") {
		t.Error("HasField(priority) = false")
	}
}

func TestNode_MarshalJSON_FlattensExtra(t *testing.T) {
	n := Node{ID: "A", Type: "impl", Extra: map[string]any{"owner": "bob"}}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back Node
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.ID != "A" || back.Type != "impl" || back.Extra["owner"] != "bob" {
		t.Errorf("round trip lost data: %+v", back)
	}
}

func TestNode_Clone(t *testing.T) {
	orig := Node{
		ID:    "A",
		Links: []ID{"B"},
		Tags:  []string{"x"},
		Extra: map[string]any{"list": []any{"a"}},
	}
	c := orig.Clone()
	c.Links[0] = "Z"
	c.Tags[0] = "y"
	c.Extra["list"].([]any)[0] = "b"
	c.Extra["new"] = 1

	if orig.Links[0] != "B" || orig.Tags[0] != "x" {
		t.Error("Clone() shares slices with the original")
	}
	if orig.Extra["list"].([]any)[0] != "a" {
		t.Error("Clone() shares nested extra values")
	}
	if _, ok := orig.Extra["new"]; ok {
		t.Error("Clone() shares the extra map")
	}
}

func TestNode_HasField(t *testing.T) {
	n := Node{
		ID:     "IMPL_1",
		Type:   "impl",
		Title:  "   ",
		Status: "open",
		Links:  []ID{"REQ_1"},
		Extra: map[string]any{
			"null_value":  nil,
			"blank":       "  ",
			"text":        "x",
			"empty_list":  []any{},
			"list":        []any{1},
			"empty_obj":   map[string]any{},
			"obj":         map[string]any{"k": "v"},
			"false_value": false,
			"zero":        float64(0),
			"int_zero":    0,
		},
	}

	tests := []struct {
		field string
		want  bool
	}{
		{"id", true},
		{"kind", true},
		{"type", true},
		{"title", false},
		{"status", true},
		{"url", false},
		{"tags", false},
		{"links", true},
		{"links_back", false},
		{"null_value", false},
		{"blank", false},
		{"text", true},
		{"empty_list", false},
		{"list", true},
		{"empty_obj", false},
		{"obj", true},
		{"false_value", true},
		{"zero", true},
		{"int_zero", true},
		{"missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := n.HasField(tt.field); got != tt.want {
				t.Errorf("HasField(%q) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestNode_Field(t *testing.T) {
	n := Node{URL: "https://example.com", Extra: map[string]any{"owner": "alice"}}

	if v, ok := n.Field("url"); !ok || v != "https://example.com" {
		t.Errorf("Field(url) = %v, %v", v, ok)
	}
	if v, ok := n.Field("owner"); !ok || v != "alice" {
		t.Errorf("Field(owner) = %v, %v", v, ok)
	}
	if _, ok := n.Field("status"); ok {
		t.Error("Field(status) reported present for empty status")
	}
}
