package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed marks a listing or batch-resolution failure at the fetch boundary.
	ErrFetchFailed = errors.New("failed to find owned objects")
	// ErrStaleResult is returned when a completed fetch was superseded and its result dropped.
	ErrStaleResult = errors.New("fetch result superseded by a newer request")

	ErrUnknownNetwork = errors.New("unknown network")
	ErrPanelNotFound  = errors.New("panel not found")
	ErrNotAPackage    = errors.New("object is not a package")
	ErrObjectNotFound = errors.New("object not found")
)

// FetchStage names the step of the fetch pipeline that failed.
type FetchStage string

const (
	StageList    FetchStage = "list"
	StageResolve FetchStage = "resolve"
)

// FetchError describes a failed read against an object source. OwnerID is
// the owner or object id the read was made for.
type FetchError struct {
	Stage   FetchStage
	OwnerID string
	Network string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s on %s: %v", e.Stage, e.OwnerID, e.Network, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailed, e.Err}
}
