package issue

import "strings"

// Code classifies an issue. The set is closed; rule-supplied codes that are not
// recognized map to Unknown.
type Code int

const (
	Unknown Code = iota
	ImplNoLinks
	ReqMissingDirectTest
	ImplMissingURL
	ImplLacksStatus
	PendingImpl
	MergeByAuthor
	BrokenLink
	DanglingNode
	DuplicateLink
	SelfLoop
	MissingAuthor
	MissingTeam
	DandlingNode
	FieldPresent
	HasOutgoing
	ReachKind
)

var codeNames = map[Code]string{
	Unknown:              "unknown",
	ImplNoLinks:          "impl_no_links",
	ReqMissingDirectTest: "req_missing_direct_test",
	ImplMissingURL:       "impl_missing_url",
	ImplLacksStatus:      "impl_lacks_status",
	PendingImpl:          "pending_impl",
	MergeByAuthor:        "merge_by_author",
	BrokenLink:           "broken_link",
	DanglingNode:         "dangling_node",
	DuplicateLink:        "duplicate_link",
	SelfLoop:             "self_loop",
	MissingAuthor:        "missing_author",
	MissingTeam:          "missing_team",
	DandlingNode:         "dandling_node",
	FieldPresent:         "field_present",
	HasOutgoing:          "has_outgoing",
	ReachKind:            "reach_kind",
}

// ruleCodeAliases maps policy-facing code spellings onto the taxonomy.
var ruleCodeAliases = map[string]Code{
	"IMPL_MUST_LINK_SOMETHING":          ImplNoLinks,
	"REQ_MUST_HAVE_DIRECT_TEST":         ReqMissingDirectTest,
	"REQ_MUST_BE_TESTABLE_TRANSITIVELY": ReqMissingDirectTest,
	"IMPL_URL_REQUIRED":                 ImplMissingURL,
	"IMPL_STATUS_REQUIRED":              ImplLacksStatus,
	"PR_NOT_MERGED_BY_AUTHOR":           MergeByAuthor,
}

var codesByName = func() map[string]Code {
	m := make(map[string]Code, len(codeNames)+len(ruleCodeAliases))
	for c, name := range codeNames {
		m[strings.ToUpper(name)] = c
	}
	for alias, c := range ruleCodeAliases {
		m[alias] = c
	}
	return m
}()

// CodeFromRule resolves a code string supplied by a policy rule. Matching is
// case-insensitive; unrecognized codes resolve to Unknown.
func CodeFromRule(raw string) Code {
	if c, ok := codesByName[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return c
	}
	return Unknown
}

// String returns the snake_case code name.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[Unknown]
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using CodeFromRule.
func (c *Code) UnmarshalText(text []byte) error {
	*c = CodeFromRule(string(text))
	return nil
}
