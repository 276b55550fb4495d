// ABOUTME: Persistence contract for document versions, active tags and tag events
// ABOUTME: Engines depend on these interfaces; sqlstore provides the SQL implementation

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/nainya/docstore/pkg/document"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a primary key or unique constraint was violated.
	ErrConflict = errors.New("record already exists")
)

// VersionFilter selects document versions. Zero fields do not constrain.
type VersionFilter struct {
	DocumentUUID string
	Namespace    string
	Type         string
	Types        []string  // Matches any of these types
	Tag          string    // Only versions an active tag of this name points at
	SessionID    string
	Since        time.Time // created_at > Since
	LatestOnly   bool      // Only the highest version per document among matches
}

// VersionPosition is the sort key of a version in list order
// (created_at DESC, document_uuid DESC, version DESC).
type VersionPosition struct {
	CreatedAt    time.Time
	DocumentUUID string
	Version      int
}

// VersionQuery is one page request over document versions.
type VersionQuery struct {
	Filter      VersionFilter
	After       *VersionPosition // Resume strictly after this position
	Limit       int
	IncludeBody bool
}

// VersionPage is a page of versions in list order.
type VersionPage struct {
	Versions []document.Version
	HasMore  bool
}

// TagQuery lists active tags ordered by tag name.
type TagQuery struct {
	DocumentUUID    string
	DocumentVersion int    // 0 means any version
	After           string // Resume strictly after this tag name
	Limit           int
}

// TagPage is a page of active tags.
type TagPage struct {
	Tags    []document.ActiveTag
	HasMore bool
}

// EventPosition is the sort key of a tag event (created_at DESC, seq DESC).
type EventPosition struct {
	CreatedAt time.Time
	Seq       int64
}

// TagEventQuery lists tag events newest first.
type TagEventQuery struct {
	DocumentUUID string
	Tag          string
	After        *EventPosition
	Limit        int
}

// TagEventPage is a page of tag events.
type TagEventPage struct {
	Events  []document.TagEvent
	HasMore bool
}

// Tx is the set of operations available inside a write transaction.
type Tx interface {
	// LatestVersion returns the highest version number and its created_at, or 0 when none exist.
	LatestVersion(ctx context.Context, documentUUID string) (int, time.Time, error)
	// InsertVersion stores a version. ErrConflict if (uuid, version) exists.
	InsertVersion(ctx context.Context, v document.Version) error
	VersionExists(ctx context.Context, documentUUID string, version int) (bool, error)
	// DeleteVersions removes one version, or all of them when version is 0.
	DeleteVersions(ctx context.Context, documentUUID string, version int) (int, error)

	// ActiveTagsFor returns the tags pointing at the document, or at one version when version > 0.
	ActiveTagsFor(ctx context.Context, documentUUID string, version int) ([]document.ActiveTag, error)
	GetActiveTag(ctx context.Context, documentUUID, tag string) (document.ActiveTag, error)
	UpsertActiveTag(ctx context.Context, t document.ActiveTag) error
	DeleteActiveTag(ctx context.Context, documentUUID, tag string) error

	// LatestTagEventTime returns the created_at of the document's newest tag event,
	// or the zero time when it has none.
	LatestTagEventTime(ctx context.Context, documentUUID string) (time.Time, error)
	// InsertTagEvent appends an event and returns its store-assigned sequence.
	InsertTagEvent(ctx context.Context, e document.TagEvent) (int64, error)
}

// EventTime returns now, or the document's newest tag event time when the clock is behind it,
// so a document's audit trail never runs backwards.
func EventTime(ctx context.Context, tx Tx, documentUUID string, now time.Time) (time.Time, error) {
	last, err := tx.LatestTagEventTime(ctx, documentUUID)
	if err != nil {
		return time.Time{}, err
	}
	if now.Before(last) {
		return last, nil
	}
	return now, nil
}

// Store persists versions, active tags and tag events.
type Store interface {
	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	GetVersion(ctx context.Context, documentUUID string, version int, includeBody bool) (document.Version, error)
	GetLatestVersion(ctx context.Context, documentUUID string, includeBody bool) (document.Version, error)
	GetActiveTag(ctx context.Context, documentUUID, tag string) (document.ActiveTag, error)

	QueryVersions(ctx context.Context, q VersionQuery) (VersionPage, error)
	CountVersions(ctx context.Context, f VersionFilter) (int, error)
	ListActiveTags(ctx context.Context, q TagQuery) (TagPage, error)
	ListTagEvents(ctx context.Context, q TagEventQuery) (TagEventPage, error)

	Ping(ctx context.Context) error
	Close() error
}

// Observer receives timing for every store operation.
type Observer interface {
	ObserveQuery(op string, d time.Duration, err error)
}

// NopObserver discards observations.
type NopObserver struct{}

// ObserveQuery implements Observer.
func (NopObserver) ObserveQuery(string, time.Duration, error) {}
