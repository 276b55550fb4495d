// ABOUTME: Tag state engine: one active tag pointer per (document, tag) plus an append-only event log
// ABOUTME: Pointer updates and their audit events are written in the same transaction

package tags

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

	"github.com/nainya/docstore/pkg/cursor"
	"github.com/nainya/docstore/pkg/document"
	apperrors "github.com/nainya/docstore/pkg/errors"
	"github.com/nainya/docstore/pkg/keylock"
	"github.com/nainya/docstore/pkg/storage"
)

// Engine applies, removes and lists tags.
type Engine struct {
	store  storage.Store
	locks  *keylock.Locker
	now    func() time.Time
	pages  cursor.PageSizeConfig
	tracer trace.Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for updated_at and event timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithPageSizes sets the default and maximum list page sizes.
func WithPageSizes(def, max int) Option {
	return func(e *Engine) {
		if def > 0 {
			e.pages.Default = def
		}
		if max > 0 {
			e.pages.Max = max
		}
	}
}

// New creates a tag engine. Pass the ledger's locker so tag writes and deletes of
// the same document never interleave.
func New(store storage.Store, locks *keylock.Locker, opts ...Option) *Engine {
	if locks == nil {
		locks = keylock.New()
	}
	e := &Engine{
		store:  store,
		locks:  locks,
		now:    time.Now,
		pages:  cursor.PageSizeConfig{Default: 50, Max: 500},
		tracer: otel.Tracer("github.com/nainya/docstore/pkg/tags"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TagInput points Tag of DocumentUUID at Version.
type TagInput struct {
	DocumentUUID string
	Version      int
	Tag          string
	Actor        document.Actor
}

// UntagInput removes Tag from DocumentUUID.
type UntagInput struct {
	DocumentUUID string
	Tag          string
	Actor        document.Actor
}

// Result reports a tag mutation.
type Result struct {
	Success bool
	Message string
	Event   document.TagEvent
}

// Tag upserts the active tag and appends an "apply" event atomically.
func (e *Engine) Tag(ctx context.Context, in TagInput) (res Result, err error) {
	uuid := strings.TrimSpace(in.DocumentUUID)
	tag := strings.TrimSpace(in.Tag)

	ctx, span := e.tracer.Start(ctx, "tags.Tag", trace.WithAttributes(
		attribute.String("document.uuid", uuid),
		attribute.Int("document.version", in.Version),
		attribute.String("tag", tag),
	))
	defer func() {
		if err != nil {
			res = Result{Message: err.Error()}
		}
		endSpan(span, err)
	}()

	switch {
	case uuid == "":
		return res, apperrors.InvalidArgument("document_uuid is required")
	case tag == "":
		return res, apperrors.InvalidArgument("tag is required")
	case in.Version <= 0:
		return res, apperrors.InvalidArgument("version must be positive")
	}

	unlock, err := e.locks.Lock(ctx, uuid)
	if err != nil {
		return res, err
	}
	defer unlock()

	now := e.now().UTC()
	event := document.NewTagEvent(uuid, in.Version, tag, document.OperationApply, in.Actor, now)
	err = e.store.WithTx(ctx, func(tx storage.Tx) error {
		exists, err := tx.VersionExists(ctx, uuid, in.Version)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("document %s version %d not found", uuid, in.Version)
		}
		if now, err = storage.EventTime(ctx, tx, uuid, now); err != nil {
			return err
		}
		event.CreatedAt = now
		if err := tx.UpsertActiveTag(ctx, document.ActiveTag{
			DocumentUUID:    uuid,
			DocumentVersion: in.Version,
			Tag:             tag,
			UpdatedAt:       now,
			UpdatedBy:       in.Actor.ID,
			UpdatedByType:   in.Actor.Type,
			SessionID:       in.Actor.SessionID,
		}); err != nil {
			return err
		}
		event.Seq, err = tx.InsertTagEvent(ctx, event)
		return err
	})
	if err != nil {
		return res, storeErr("tag document", err)
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("tag %q now points at version %d", tag, in.Version),
		Event:   event,
	}, nil
}

// Untag removes the active tag and appends a "remove" event atomically.
func (e *Engine) Untag(ctx context.Context, in UntagInput) (res Result, err error) {
	uuid := strings.TrimSpace(in.DocumentUUID)
	tag := strings.TrimSpace(in.Tag)

	ctx, span := e.tracer.Start(ctx, "tags.Untag", trace.WithAttributes(
		attribute.String("document.uuid", uuid),
		attribute.String("tag", tag),
	))
	defer func() {
		if err != nil {
			res = Result{Message: err.Error()}
		}
		endSpan(span, err)
	}()

	switch {
	case uuid == "":
		return res, apperrors.InvalidArgument("document_uuid is required")
	case tag == "":
		return res, apperrors.InvalidArgument("tag is required")
	}

	unlock, err := e.locks.Lock(ctx, uuid)
	if err != nil {
		return res, err
	}
	defer unlock()

	var event document.TagEvent
	err = e.store.WithTx(ctx, func(tx storage.Tx) error {
		active, err := tx.GetActiveTag(ctx, uuid, tag)
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFound("tag %q not found for document %s", tag, uuid)
		}
		if err != nil {
			return err
		}
		if err := tx.DeleteActiveTag(ctx, uuid, tag); err != nil {
			return err
		}
		now, err := storage.EventTime(ctx, tx, uuid, e.now().UTC())
		if err != nil {
			return err
		}
		event = document.NewTagEvent(uuid, active.DocumentVersion, tag, document.OperationRemove, in.Actor, now)
		event.Seq, err = tx.InsertTagEvent(ctx, event)
		return err
	})
	if err != nil {
		return res, storeErr("untag document", err)
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("tag %q removed", tag),
		Event:   event,
	}, nil
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
