// ABOUTME: Document data model for the versioned document store
// ABOUTME: Defines versions, active tag pointers and the tag audit trail

package document

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Version is one immutable snapshot of a logical document.
type Version struct {
	DocumentUUID  string          // Stable identity across versions
	Version       int             // 1, 2, 3, ... per DocumentUUID
	Type          string          // Document kind (e.g. "graph", "note")
	Name          string          // Display name; may change between versions
	Namespace     string          // Logical partition
	Body          json.RawMessage // Opaque JSON value as written, nil when omitted from a read
	Metadata      json.RawMessage // Opaque JSON object as written
	Tags          []string        // Tag names supplied by the writer at creation time
	CreatedAt     time.Time
	CreatedBy     string
	CreatedByType string // Actor kind: "user", "system", ...
	SessionID     string
}

// ActiveTag points a named tag of a document at one of its versions.
type ActiveTag struct {
	DocumentUUID    string
	DocumentVersion int
	Tag             string
	UpdatedAt       time.Time
	UpdatedBy       string
	UpdatedByType   string
	SessionID       string
}

// TagOperation is the kind of mutation recorded by a TagEvent.
type TagOperation string

const (
	OperationApply  TagOperation = "apply"
	OperationRemove TagOperation = "remove"
)

// TagEvent is an append-only audit record of a tag mutation.
type TagEvent struct {
	TagEventUUID    string
	Seq             int64 // Store-assigned insertion sequence
	DocumentUUID    string
	DocumentVersion int
	Tag             string
	Operation       TagOperation
	CreatedAt       time.Time
	CreatedBy       string
	CreatedByType   string
	SessionID       string
}

// Actor identifies who performed a write.
type Actor struct {
	ID        string
	Type      string
	SessionID string
}

// NewTagEvent builds an event with a fresh identifier.
func NewTagEvent(documentUUID string, version int, tag string, op TagOperation, actor Actor, at time.Time) TagEvent {
	return TagEvent{
		TagEventUUID:    uuid.NewString(),
		DocumentUUID:    documentUUID,
		DocumentVersion: version,
		Tag:             tag,
		Operation:       op,
		CreatedAt:       at,
		CreatedBy:       actor.ID,
		CreatedByType:   actor.Type,
		SessionID:       actor.SessionID,
	}
}

// NormalizeTags trims tag names, drops blanks and removes duplicates, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
