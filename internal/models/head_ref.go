package models

import "fmt"

// DetachedHeadName is reported for both projections when HEAD is not on a branch
const DetachedHeadName = "(no branch)"

// HeadRef contains the two readable projections of the current HEAD reference
type HeadRef struct {
	// FriendlyName is the short, human-facing name (e.g., "main", "feature/x")
	FriendlyName string
	// CanonicalName is the fully qualified ref (e.g., "refs/heads/feature/x")
	CanonicalName string
}

// NewHeadRef creates a new HeadRef
func NewHeadRef(friendlyName, canonicalName string) HeadRef {
	return HeadRef{
		FriendlyName:  friendlyName,
		CanonicalName: canonicalName,
	}
}

// DetachedHeadRef is the HeadRef reported for a detached HEAD
func DetachedHeadRef() HeadRef {
	return NewHeadRef(DetachedHeadName, DetachedHeadName)
}

// Detached reports whether HEAD points at a commit rather than a branch
func (h HeadRef) Detached() bool {
	return h.CanonicalName == DetachedHeadName
}

// Source returns the projection selected by the source type
func (h HeadRef) Source(t SourceType) (string, error) {
	switch t {
	case HeadFriendlyName:
		return h.FriendlyName, nil
	case HeadCanonicalName:
		return h.CanonicalName, nil
	default:
		return "", fmt.Errorf("%w %d", ErrUnknownSourceType, int(t))
	}
}
