// ABOUTME: Version ledger: append-only document versions keyed by document uuid
// ABOUTME: Assigns gapless version numbers and serves point, latest and list reads

package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/nainya/docstore/pkg/cursor"
	"github.com/nainya/docstore/pkg/document"
	apperrors "github.com/nainya/docstore/pkg/errors"
	"github.com/nainya/docstore/pkg/keylock"
	"github.com/nainya/docstore/pkg/storage"
)

const (
	DefaultPageSize         = 50
	MaxPageSize             = 500
	DefaultBatchConcurrency = 4
)

// Ledger manages document versions.
type Ledger struct {
	store            storage.Store
	locks            *keylock.Locker
	now              func() time.Time
	pages            cursor.PageSizeConfig
	batchConcurrency int
	tracer           trace.Tracer
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithPageSizes sets the default and maximum list page sizes.
func WithPageSizes(def, max int) Option {
	return func(l *Ledger) {
		if def > 0 {
			l.pages.Default = def
		}
		if max > 0 {
			l.pages.Max = max
		}
	}
}

// WithBatchConcurrency bounds how many documents PutBatch writes at once.
func WithBatchConcurrency(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.batchConcurrency = n
		}
	}
}

// New creates a ledger over store. Writers sharing locks are serialized per document uuid.
func New(store storage.Store, locks *keylock.Locker, opts ...Option) *Ledger {
	if locks == nil {
		locks = keylock.New()
	}
	l := &Ledger{
		store:            store,
		locks:            locks,
		now:              time.Now,
		pages:            cursor.PageSizeConfig{Default: DefaultPageSize, Max: MaxPageSize},
		batchConcurrency: DefaultBatchConcurrency,
		tracer:           otel.Tracer("github.com/nainya/docstore/pkg/ledger"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Receipt reports the outcome of one Put.
type Receipt struct {
	DocumentUUID string
	Version      int
	Success      bool
	ErrorMessage string
}

// Put appends a new version of v.DocumentUUID. v.Version and v.CreatedAt are assigned by the ledger.
func (l *Ledger) Put(ctx context.Context, v document.Version) (receipt Receipt, err error) {
	v.DocumentUUID = strings.TrimSpace(v.DocumentUUID)
	receipt.DocumentUUID = v.DocumentUUID

	ctx, span := l.tracer.Start(ctx, "ledger.Put", trace.WithAttributes(attribute.String("document.uuid", v.DocumentUUID)))
	defer func() {
		if err != nil {
			receipt.Success = false
			receipt.ErrorMessage = err.Error()
		}
		endSpan(span, err)
	}()

	if err := validateVersion(v); err != nil {
		return receipt, err
	}
	v.Tags = document.NormalizeTags(v.Tags)

	unlock, err := l.locks.Lock(ctx, v.DocumentUUID)
	if err != nil {
		return receipt, err
	}
	defer unlock()

	err = l.store.WithTx(ctx, func(tx storage.Tx) error {
		latest, latestAt, err := tx.LatestVersion(ctx, v.DocumentUUID)
		if err != nil {
			return err
		}
		v.Version = latest + 1
		v.CreatedAt = l.now().UTC()
		if v.CreatedAt.Before(latestAt) {
			v.CreatedAt = latestAt
		}
		return tx.InsertVersion(ctx, v)
	})
	if errors.Is(err, storage.ErrConflict) {
		return receipt, apperrors.Wrap(apperrors.CodeConflict, "version already claimed by a concurrent writer", err).
			WithMetadata("document_uuid", v.DocumentUUID, "version", fmt.Sprint(v.Version))
	}
	if err != nil {
		return receipt, storeErr("put document", err)
	}

	span.SetAttributes(attribute.Int("document.version", v.Version))
	receipt.Version = v.Version
	receipt.Success = true
	return receipt, nil
}

func validateVersion(v document.Version) error {
	switch {
	case v.DocumentUUID == "":
		return apperrors.InvalidArgument("document_uuid is required")
	case strings.TrimSpace(v.Type) == "":
		return apperrors.InvalidArgument("type is required")
	case strings.TrimSpace(v.Namespace) == "":
		return apperrors.InvalidArgument("namespace is required")
	}
	return nil
}

// PutBatch applies Put to each document independently. Receipts are returned in input order.
// Versions of the same document are written in input order; distinct documents run concurrently.
// Once ctx is done the remaining documents are not attempted and their receipts carry the context error.
func (l *Ledger) PutBatch(ctx context.Context, docs []document.Version) []Receipt {
	receipts := make([]Receipt, len(docs))

	var order []string
	groups := make(map[string][]int)
	for i, d := range docs {
		key := strings.TrimSpace(d.DocumentUUID)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var g errgroup.Group
	g.SetLimit(l.batchConcurrency)
	for _, key := range order {
		indexes := groups[key]
		g.Go(func() error {
			for _, i := range indexes {
				if err := ctx.Err(); err != nil {
					receipts[i] = Receipt{
						DocumentUUID: strings.TrimSpace(docs[i].DocumentUUID),
						ErrorMessage: "not attempted: " + err.Error(),
					}
					continue
				}
				receipts[i], _ = l.Put(ctx, docs[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return receipts
}

// GetInput selects one version. Version wins over Tag; neither means latest.
type GetInput struct {
	DocumentUUID string
	Version      int
	Tag          string
	IncludeBody  bool
}

// Get resolves and returns one version of a document.
func (l *Ledger) Get(ctx context.Context, in GetInput) (document.Version, error) {
	uuid := strings.TrimSpace(in.DocumentUUID)
	tag := strings.TrimSpace(in.Tag)
	if uuid == "" {
		return document.Version{}, apperrors.InvalidArgument("document_uuid is required")
	}
	if in.Version < 0 {
		return document.Version{}, apperrors.InvalidArgument("version must be positive")
	}

	switch {
	case in.Version > 0:
		v, err := l.store.GetVersion(ctx, uuid, in.Version, in.IncludeBody)
		if errors.Is(err, storage.ErrNotFound) {
			return document.Version{}, apperrors.NotFound("document %s version %d not found", uuid, in.Version)
		}
		if err != nil {
			return document.Version{}, storeErr("get document", err)
		}
		return v, nil

	case tag != "":
		active, err := l.store.GetActiveTag(ctx, uuid, tag)
		if errors.Is(err, storage.ErrNotFound) {
			return document.Version{}, apperrors.NotFound("tag %q not found for document %s", tag, uuid)
		}
		if err != nil {
			return document.Version{}, storeErr("resolve tag", err)
		}
		v, err := l.store.GetVersion(ctx, uuid, active.DocumentVersion, in.IncludeBody)
		if errors.Is(err, storage.ErrNotFound) {
			return document.Version{}, apperrors.Newf(apperrors.CodeInternal,
				"active tag %q of document %s points at missing version %d", tag, uuid, active.DocumentVersion)
		}
		if err != nil {
			return document.Version{}, storeErr("get document", err)
		}
		return v, nil

	default:
		v, err := l.store.GetLatestVersion(ctx, uuid, in.IncludeBody)
		if errors.Is(err, storage.ErrNotFound) {
			return document.Version{}, apperrors.NotFound("document %s not found", uuid)
		}
		if err != nil {
			return document.Version{}, storeErr("get document", err)
		}
		return v, nil
	}
}

// DeleteInput selects what to delete. Version 0 deletes every version.
type DeleteInput struct {
	DocumentUUID string
	Version      int
	Actor        document.Actor
}

// DeleteResult reports the outcome of a Delete.
type DeleteResult struct {
	Success         bool
	Message         string
	VersionsDeleted int
	TagsRemoved     int
}

// Delete removes one or all versions of a document. Active tags pointing at removed
// versions are dropped and a "remove" event is recorded for each; tag events are kept.
func (l *Ledger) Delete(ctx context.Context, in DeleteInput) (res DeleteResult, err error) {
	uuid := strings.TrimSpace(in.DocumentUUID)

	ctx, span := l.tracer.Start(ctx, "ledger.Delete", trace.WithAttributes(
		attribute.String("document.uuid", uuid),
		attribute.Int("document.version", in.Version),
	))
	defer func() {
		if err != nil {
			res.Success = false
			res.Message = err.Error()
		}
		endSpan(span, err)
	}()

	if uuid == "" {
		return res, apperrors.InvalidArgument("document_uuid is required")
	}
	if in.Version < 0 {
		return res, apperrors.InvalidArgument("version must be positive")
	}

	unlock, err := l.locks.Lock(ctx, uuid)
	if err != nil {
		return res, err
	}
	defer unlock()

	now := l.now().UTC()
	err = l.store.WithTx(ctx, func(tx storage.Tx) error {
		tags, err := tx.ActiveTagsFor(ctx, uuid, in.Version)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if now, err = storage.EventTime(ctx, tx, uuid, now); err != nil {
				return err
			}
		}
		for _, tag := range tags {
			if err := tx.DeleteActiveTag(ctx, uuid, tag.Tag); err != nil {
				return err
			}
			ev := document.NewTagEvent(uuid, tag.DocumentVersion, tag.Tag, document.OperationRemove, in.Actor, now)
			if _, err := tx.InsertTagEvent(ctx, ev); err != nil {
				return err
			}
		}

		n, err := tx.DeleteVersions(ctx, uuid, in.Version)
		if err != nil {
			return err
		}
		if n == 0 {
			if in.Version > 0 {
				return apperrors.NotFound("document %s version %d not found", uuid, in.Version)
			}
			return apperrors.NotFound("document %s not found", uuid)
		}
		res.VersionsDeleted = n
		res.TagsRemoved = len(tags)
		return nil
	})
	if err != nil {
		return DeleteResult{}, storeErr("delete document", err)
	}

	res.Success = true
	res.Message = fmt.Sprintf("deleted %d version(s) of %s", res.VersionsDeleted, uuid)
	return res, nil
}

// storeErr passes domain and context errors through and wraps everything else as internal.
func storeErr(op string, err error) error {
	var de *apperrors.Error
	if errors.As(err, &de) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return apperrors.Wrap(apperrors.CodeInternal, op, err)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
