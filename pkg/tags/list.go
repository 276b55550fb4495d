package tags

import (
	"context"
	"strconv"
	"strings"

	"github.com/nainya/docstore/pkg/cursor"
	"github.com/nainya/docstore/pkg/document"
	apperrors "github.com/nainya/docstore/pkg/errors"
	"github.com/nainya/docstore/pkg/storage"
)

// ListActiveTagsInput selects the active tags of one document.
type ListActiveTagsInput struct {
	DocumentUUID    string
	DocumentVersion int // 0 lists tags on any version
	PageToken       string
	PageSize        int
}

// ActiveTagPage is a page of active tags ordered by tag name.
type ActiveTagPage struct {
	Tags          []document.ActiveTag
	NextPageToken string
}

// ListActiveTags returns the current tag pointers of a document ordered by tag name.
func (e *Engine) ListActiveTags(ctx context.Context, in ListActiveTagsInput) (ActiveTagPage, error) {
	uuid := strings.TrimSpace(in.DocumentUUID)
	if uuid == "" {
		return ActiveTagPage{}, apperrors.InvalidArgument("document_uuid is required")
	}
	if in.DocumentVersion < 0 {
		return ActiveTagPage{}, apperrors.InvalidArgument("document_version must be positive")
	}

	fp := cursor.Fingerprint("active_tags", uuid, strconv.Itoa(in.DocumentVersion))
	c, err := cursor.Resume(in.PageToken, fp)
	if err != nil {
		return ActiveTagPage{}, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid pagination_token", err)
	}

	q := storage.TagQuery{
		DocumentUUID:    uuid,
		DocumentVersion: in.DocumentVersion,
		Limit:           cursor.ClampPageSize(in.PageSize, e.pages),
	}
	if c != nil {
		q.After = c.Key
	}

	result, err := e.store.ListActiveTags(ctx, q)
	if err != nil {
		return ActiveTagPage{}, storeErr("list active tags", err)
	}

	page := ActiveTagPage{Tags: result.Tags}
	if result.HasMore && len(result.Tags) > 0 {
		last := result.Tags[len(result.Tags)-1]
		page.NextPageToken, err = cursor.Encode(cursor.Cursor{Key: last.Tag, Fingerprint: fp})
		if err != nil {
			return ActiveTagPage{}, storeErr("encode pagination token", err)
		}
	}
	return page, nil
}

// ListTagEventsInput selects the audit trail of one document, optionally for one tag.
type ListTagEventsInput struct {
	DocumentUUID string
	Tag          string
	PageToken    string
	PageSize     int
}

// TagEventPage is a page of tag events, newest first.
type TagEventPage struct {
	Events        []document.TagEvent
	NextPageToken string
}

// ListTagEvents returns the tag audit trail of a document, newest first.
func (e *Engine) ListTagEvents(ctx context.Context, in ListTagEventsInput) (TagEventPage, error) {
	uuid := strings.TrimSpace(in.DocumentUUID)
	tag := strings.TrimSpace(in.Tag)
	if uuid == "" {
		return TagEventPage{}, apperrors.InvalidArgument("document_uuid is required")
	}

	fp := cursor.Fingerprint("tag_events", uuid, tag)
	c, err := cursor.Resume(in.PageToken, fp)
	if err != nil {
		return TagEventPage{}, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid pagination_token", err)
	}

	q := storage.TagEventQuery{
		DocumentUUID: uuid,
		Tag:          tag,
		Limit:        cursor.ClampPageSize(in.PageSize, e.pages),
	}
	if c != nil {
		q.After = &storage.EventPosition{CreatedAt: c.At(), Seq: c.Seq}
	}

	result, err := e.store.ListTagEvents(ctx, q)
	if err != nil {
		return TagEventPage{}, storeErr("list tag events", err)
	}

	page := TagEventPage{Events: result.Events}
	if result.HasMore && len(result.Events) > 0 {
		last := result.Events[len(result.Events)-1]
		page.NextPageToken, err = cursor.Encode(cursor.Cursor{
			Time:        last.CreatedAt.UnixNano(),
			Seq:         last.Seq,
			Fingerprint: fp,
		})
		if err != nil {
			return TagEventPage{}, storeErr("encode pagination token", err)
		}
	}
	return page, nil
}
