package ledger

import (
	"context"
	"strconv"
	"strings"

	"github.com/nainya/docstore/pkg/cursor"
	"github.com/nainya/docstore/pkg/document"
	apperrors "github.com/nainya/docstore/pkg/errors"
	"github.com/nainya/docstore/pkg/storage"
)

// ListInput filters a document listing. Empty filters do not constrain.
type ListInput struct {
	Namespace   string
	Type        string
	Tag         string
	SessionID   string
	LatestOnly  bool
	PageToken   string
	PageSize    int
	IncludeBody bool
}

// ListVersionsInput selects the version history of one document.
type ListVersionsInput struct {
	DocumentUUID string
	PageToken    string
	PageSize     int
	IncludeBody  bool
}

// Page is one page of versions, newest first.
type Page struct {
	Versions      []document.Version
	NextPageToken string
	TotalCount    int
}

// List returns versions matching the filters, newest first.
func (l *Ledger) List(ctx context.Context, in ListInput) (Page, error) {
	filter := storage.VersionFilter{
		Namespace:  strings.TrimSpace(in.Namespace),
		Type:       strings.TrimSpace(in.Type),
		Tag:        strings.TrimSpace(in.Tag),
		SessionID:  strings.TrimSpace(in.SessionID),
		LatestOnly: in.LatestOnly,
	}
	fp := cursor.Fingerprint("documents", filter.Namespace, filter.Type, filter.Tag, filter.SessionID,
		strconv.FormatBool(filter.LatestOnly))
	return l.page(ctx, filter, fp, in.PageToken, in.PageSize, in.IncludeBody)
}

// ListVersions returns every version of one document, newest first.
func (l *Ledger) ListVersions(ctx context.Context, in ListVersionsInput) (Page, error) {
	uuid := strings.TrimSpace(in.DocumentUUID)
	if uuid == "" {
		return Page{}, apperrors.InvalidArgument("document_uuid is required")
	}
	filter := storage.VersionFilter{DocumentUUID: uuid}
	return l.page(ctx, filter, cursor.Fingerprint("versions", uuid), in.PageToken, in.PageSize, in.IncludeBody)
}

func (l *Ledger) page(ctx context.Context, filter storage.VersionFilter, fp, token string, size int, includeBody bool) (Page, error) {
	c, err := cursor.Resume(token, fp)
	if err != nil {
		return Page{}, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid pagination_token", err)
	}

	q := storage.VersionQuery{
		Filter:      filter,
		Limit:       cursor.ClampPageSize(size, l.pages),
		IncludeBody: includeBody,
	}
	if c != nil {
		q.After = &storage.VersionPosition{CreatedAt: c.At(), DocumentUUID: c.Key, Version: int(c.Seq)}
	}

	result, err := l.store.QueryVersions(ctx, q)
	if err != nil {
		return Page{}, storeErr("list documents", err)
	}
	total, err := l.store.CountVersions(ctx, filter)
	if err != nil {
		return Page{}, storeErr("count documents", err)
	}

	page := Page{Versions: result.Versions, TotalCount: total}
	if result.HasMore && len(result.Versions) > 0 {
		last := result.Versions[len(result.Versions)-1]
		page.NextPageToken, err = cursor.Encode(cursor.Cursor{
			Time:        last.CreatedAt.UnixNano(),
			Key:         last.DocumentUUID,
			Seq:         int64(last.Version),
			Fingerprint: fp,
		})
		if err != nil {
			return Page{}, storeErr("encode pagination token", err)
		}
	}
	return page, nil
}

// RecentInput selects the latest versions of documents for a read-only view.
type RecentInput struct {
	Filter      storage.VersionFilter
	Limit       int
	IncludeBody bool
}

// Recent returns up to Limit latest-per-document versions matching the filter, newest first,
// and the number of documents that matched before the limit was applied.
func (l *Ledger) Recent(ctx context.Context, in RecentInput) ([]document.Version, int, error) {
	filter := in.Filter
	filter.LatestOnly = true

	result, err := l.store.QueryVersions(ctx, storage.VersionQuery{
		Filter:      filter,
		Limit:       cursor.ClampPageSize(in.Limit, l.pages),
		IncludeBody: in.IncludeBody,
	})
	if err != nil {
		return nil, 0, storeErr("query recent documents", err)
	}
	total, err := l.store.CountVersions(ctx, filter)
	if err != nil {
		return nil, 0, storeErr("count recent documents", err)
	}
	return result.Versions, total, nil
}
