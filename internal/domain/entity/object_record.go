package entity

// ObjectStatus is the existence status reported when resolving an object id.
type ObjectStatus string

const (
	StatusExists    ObjectStatus = "Exists"
	StatusNotExists ObjectStatus = "NotExists"
	StatusDeleted   ObjectStatus = "Deleted"
)

// Reference is a raw pointer to an owned object as returned by an ownership listing.
type Reference struct {
	ObjectID string `json:"objectId" yaml:"objectId"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	Digest   string `json:"digest,omitempty" yaml:"digest,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ObjectRecord is a source-independent resolution result for a single object id.
// Fields holds the decoded move object content; Modules is set for packages only.
type ObjectRecord struct {
	ID      string
	Status  ObjectStatus
	Type    string
	Version string
	Fields  map[string]any
	Modules map[string]string
}

// Exists reports whether the object was found on the source.
func (o ObjectRecord) Exists() bool {
	return o.Status == StatusExists
}

// IsPackage reports whether the record describes a published package.
func (o ObjectRecord) IsPackage() bool {
	return o.Modules != nil
}
