package node

import "strings"

// Kind is the resolved type of a traceability node.
type Kind string

const (
	KindPerson    Kind = "person"
	KindTeam      Kind = "team"
	KindArch      Kind = "arch"
	KindSwarch    Kind = "swarch"
	KindReq       Kind = "req"
	KindSwreq     Kind = "swreq"
	KindSpec      Kind = "spec"
	KindTest      Kind = "test"
	KindTestsuite Kind = "testsuite"
	KindTestrun   Kind = "testrun"
	KindImpl      Kind = "impl"
	KindNeed      Kind = "need"
	KindRelease   Kind = "release"
	KindUnknown   Kind = "unknown"
)

// AllKinds lists every kind in declaration order, unknown last.
var AllKinds = []Kind{
	KindPerson, KindTeam, KindArch, KindSwarch, KindReq, KindSwreq, KindSpec,
	KindTest, KindTestsuite, KindTestrun, KindImpl, KindNeed, KindRelease, KindUnknown,
}

var knownKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(AllKinds))
	for _, k := range AllKinds {
		m[string(k)] = k
	}
	return m
}()

// ParseKind resolves a raw kind string. Matching is case-insensitive and ignores
// surrounding whitespace; anything unrecognized, including "", is KindUnknown.
func ParseKind(raw string) Kind {
	if k, ok := knownKinds[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return k
	}
	return KindUnknown
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k == "" {
		return string(KindUnknown)
	}
	return string(k)
}

// UnmarshalText lets kinds decode from JSON and YAML with the same leniency as ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
