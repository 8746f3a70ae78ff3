package snapshotloader

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"object_explorer/internal/domain/entity"
)

// Snapshot is the offline data set served by the static source.
type Snapshot struct {
	Objects []Entry `json:"objects" yaml:"objects"`
}

// Entry is one object of a snapshot.
//
// Owner is either a plain address string or a map with an AddressOwner or
// ObjectOwner key. Status defaults to Exists.
type Entry struct {
	ID      string      `json:"id" yaml:"id"`
	ObjType string      `json:"objType" yaml:"objType"`
	Version json.Number `json:"version,omitempty" yaml:"version,omitempty"`
	Owner   any         `json:"owner,omitempty" yaml:"owner,omitempty"`
	Status  string      `json:"status,omitempty" yaml:"status,omitempty"`
	Data    EntryData   `json:"data" yaml:"data"`
}

// EntryData holds the decoded contents of an entry. Modules is only set on packages.
type EntryData struct {
	Contents map[string]any    `json:"contents,omitempty" yaml:"contents,omitempty"`
	Modules  map[string]string `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// OwnerID returns the normalized id of the entry's owner, or "" for shared
// and immutable objects.
func (e Entry) OwnerID() string {
	switch o := e.Owner.(type) {
	case string:
		return normalizeID(o)
	case map[string]any:
		for _, key := range []string{"AddressOwner", "ObjectOwner"} {
			if s, ok := o[key].(string); ok {
				return normalizeID(s)
			}
		}
	}
	return ""
}

func (e Entry) status() entity.ObjectStatus {
	if e.Status == "" {
		return entity.StatusExists
	}
	return entity.ObjectStatus(e.Status)
}

func (e Entry) reference() entity.Reference {
	return entity.Reference{
		ObjectID: e.ID,
		Version:  e.Version.String(),
		Type:     e.ObjType,
	}
}

func (e Entry) record() entity.ObjectRecord {
	rec := entity.ObjectRecord{
		ID:      e.ID,
		Status:  e.status(),
		Type:    e.ObjType,
		Version: e.Version.String(),
		Fields:  e.Data.Contents,
	}
	if e.Data.Modules != nil {
		rec.Modules = e.Data.Modules
	}
	return rec
}

// UnmarshalYAML decodes contents with integer scalars kept as json.Number, the
// same shape the JSON path produces, so large balances never pass through a float.
func (d *EntryData) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Contents yaml.Node         `yaml:"contents"`
		Modules  map[string]string `yaml:"modules"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	d.Modules = raw.Modules
	d.Contents = nil
	if raw.Contents.Kind == 0 {
		return nil
	}

	v, err := yamlValue(&raw.Contents)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	contents, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("line %d: data contents must be a mapping", raw.Contents.Line)
	}
	d.Contents = contents
	return nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			val, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, val)
		}
		return items, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!int" {
			return json.Number(n.Value), nil
		}
		var val any
		if err := n.Decode(&val); err != nil {
			return nil, err
		}
		return val, nil
	}
	return nil, nil
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
