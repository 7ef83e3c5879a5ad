// Package dataset models a multi-version traceability dataset and selects the
// node table of one version.
package dataset

import (
	"maps"
	"slices"

	"github.com/tracelint/tracelint/internal/node"
)

// Dataset holds every published version of a traceability dataset.
type Dataset struct {
	CurrentVersion string             `json:"current_version,omitempty" yaml:"current_version,omitempty"`
	Versions       map[string]Version `json:"versions" yaml:"versions"`
}

// Version is the node table of one dataset version.
type Version struct {
	Needs map[node.ID]node.Node `json:"needs" yaml:"needs"`
}

// Resolve returns the version name that Access would select.
// An empty version means the dataset's current version.
func (d *Dataset) Resolve(version string) (string, error) {
	if version == "" {
		if d.CurrentVersion == "" {
			return "", ErrNoCurrentVersion
		}
		version = d.CurrentVersion
	}
	if _, ok := d.Versions[version]; !ok {
		return "", &VersionError{Version: version, Available: d.VersionNames()}
	}
	return version, nil
}

// Access returns the node table of the requested version together with the
// resolved version name. An empty version selects CurrentVersion.
// The returned map is the dataset's own; graph construction copies it.
func (d *Dataset) Access(version string) (map[node.ID]node.Node, string, error) {
	resolved, err := d.Resolve(version)
	if err != nil {
		return nil, "", err
	}
	needs := d.Versions[resolved].Needs
	if needs == nil {
		needs = map[node.ID]node.Node{}
	}
	return needs, resolved, nil
}

// VersionNames returns the dataset's version names in ascending order.
func (d *Dataset) VersionNames() []string {
	return slices.Sorted(maps.Keys(d.Versions))
}
