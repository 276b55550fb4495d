package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nainya/docstore/pkg/document"
	"github.com/nainya/docstore/pkg/storage"
)

const activeTagColumns = "document_uuid, tag, document_version, updated_at, updated_by, updated_by_type, session_id"

const tagEventColumns = "seq, tag_event_uuid, document_uuid, document_version, tag, operation, created_at, created_by, created_by_type, session_id"

func scanActiveTag(row rowScanner) (document.ActiveTag, error) {
	var (
		t         document.ActiveTag
		updatedAt int64
	)
	if err := row.Scan(
		&t.DocumentUUID,
		&t.Tag,
		&t.DocumentVersion,
		&updatedAt,
		&t.UpdatedBy,
		&t.UpdatedByType,
		&t.SessionID,
	); err != nil {
		return document.ActiveTag{}, err
	}
	t.UpdatedAt = fromNanos(updatedAt)
	return t, nil
}

func scanTagEvent(row rowScanner) (document.TagEvent, error) {
	var (
		e         document.TagEvent
		operation string
		createdAt int64
	)
	if err := row.Scan(
		&e.Seq,
		&e.TagEventUUID,
		&e.DocumentUUID,
		&e.DocumentVersion,
		&e.Tag,
		&operation,
		&createdAt,
		&e.CreatedBy,
		&e.CreatedByType,
		&e.SessionID,
	); err != nil {
		return document.TagEvent{}, err
	}
	e.Operation = document.TagOperation(operation)
	e.CreatedAt = fromNanos(createdAt)
	return e, nil
}

func getActiveTag(ctx context.Context, q queryer, d dialect, documentUUID, tag string) (document.ActiveTag, error) {
	t, err := scanActiveTag(q.QueryRowContext(ctx, d.rebind(
		"SELECT "+activeTagColumns+" FROM active_tags WHERE document_uuid = ? AND tag = ?",
	), documentUUID, tag))
	if errors.Is(err, sql.ErrNoRows) {
		return document.ActiveTag{}, storage.ErrNotFound
	}
	if err != nil {
		return document.ActiveTag{}, fmt.Errorf("get active tag: %w", err)
	}
	return t, nil
}

// GetActiveTag returns the active tag row for (documentUUID, tag).
func (s *Store) GetActiveTag(ctx context.Context, documentUUID, tag string) (t document.ActiveTag, err error) {
	defer s.track("get_active_tag", &err)()
	return getActiveTag(ctx, s.db, s.dialect, documentUUID, tag)
}

// ListActiveTags returns active tags of a document ordered by tag name.
func (s *Store) ListActiveTags(ctx context.Context, q storage.TagQuery) (page storage.TagPage, err error) {
	defer s.track("list_active_tags", &err)()

	query := "SELECT " + activeTagColumns + " FROM active_tags WHERE document_uuid = ?"
	args := []any{q.DocumentUUID}
	if q.DocumentVersion > 0 {
		query += " AND document_version = ?"
		args = append(args, q.DocumentVersion)
	}
	if q.After != "" {
		query += " AND tag > ?"
		args = append(args, q.After)
	}
	query += " ORDER BY tag ASC"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit+1)
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return storage.TagPage{}, fmt.Errorf("list active tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		t, err := scanActiveTag(rows)
		if err != nil {
			return storage.TagPage{}, fmt.Errorf("scan active tag: %w", err)
		}
		page.Tags = append(page.Tags, t)
	}
	if err := rows.Err(); err != nil {
		return storage.TagPage{}, fmt.Errorf("iterate active tags: %w", err)
	}

	if q.Limit > 0 && len(page.Tags) > q.Limit {
		page.Tags = page.Tags[:q.Limit]
		page.HasMore = true
	}
	return page, nil
}

// ListTagEvents returns the audit trail of a document, newest first.
func (s *Store) ListTagEvents(ctx context.Context, q storage.TagEventQuery) (page storage.TagEventPage, err error) {
	defer s.track("list_tag_events", &err)()

	query := "SELECT " + tagEventColumns + " FROM tag_events WHERE document_uuid = ?"
	args := []any{q.DocumentUUID}
	if q.Tag != "" {
		query += " AND tag = ?"
		args = append(args, q.Tag)
	}
	if q.After != nil {
		at := toNanos(q.After.CreatedAt)
		query += " AND (created_at < ? OR (created_at = ? AND seq < ?))"
		args = append(args, at, at, q.After.Seq)
	}
	query += " ORDER BY created_at DESC, seq DESC"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit+1)
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return storage.TagEventPage{}, fmt.Errorf("list tag events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanTagEvent(rows)
		if err != nil {
			return storage.TagEventPage{}, fmt.Errorf("scan tag event: %w", err)
		}
		page.Events = append(page.Events, e)
	}
	if err := rows.Err(); err != nil {
		return storage.TagEventPage{}, fmt.Errorf("iterate tag events: %w", err)
	}

	if q.Limit > 0 && len(page.Events) > q.Limit {
		page.Events = page.Events[:q.Limit]
		page.HasMore = true
	}
	return page, nil
}

// ActiveTagsFor returns the active tags of a document, optionally only those pointing at version.
func (t *txStore) ActiveTagsFor(ctx context.Context, documentUUID string, version int) ([]document.ActiveTag, error) {
	query := "SELECT " + activeTagColumns + " FROM active_tags WHERE document_uuid = ?"
	args := []any{documentUUID}
	if version > 0 {
		query += " AND document_version = ?"
		args = append(args, version)
	}
	query += " ORDER BY tag ASC"

	rows, err := t.q.QueryContext(ctx, t.dialect.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("active tags for document: %w", err)
	}
	defer rows.Close()

	var out []document.ActiveTag
	for rows.Next() {
		tag, err := scanActiveTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan active tag: %w", err)
		}
		out = append(out, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active tags: %w", err)
	}
	return out, nil
}

// GetActiveTag returns the active tag row for (documentUUID, tag) inside the transaction.
func (t *txStore) GetActiveTag(ctx context.Context, documentUUID, tag string) (document.ActiveTag, error) {
	return getActiveTag(ctx, t.q, t.dialect, documentUUID, tag)
}

// UpsertActiveTag points (document_uuid, tag) at a version, replacing any previous pointer.
func (t *txStore) UpsertActiveTag(ctx context.Context, tag document.ActiveTag) error {
	_, err := t.q.ExecContext(ctx, t.dialect.rebind(
		`INSERT INTO active_tags (`+activeTagColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (document_uuid, tag) DO UPDATE SET
		   document_version = excluded.document_version,
		   updated_at = excluded.updated_at,
		   updated_by = excluded.updated_by,
		   updated_by_type = excluded.updated_by_type,
		   session_id = excluded.session_id`),
		tag.DocumentUUID,
		tag.Tag,
		tag.DocumentVersion,
		toNanos(tag.UpdatedAt),
		tag.UpdatedBy,
		tag.UpdatedByType,
		tag.SessionID,
	)
	if err != nil {
		return fmt.Errorf("upsert active tag: %w", err)
	}
	return nil
}

// DeleteActiveTag removes the pointer for (documentUUID, tag).
func (t *txStore) DeleteActiveTag(ctx context.Context, documentUUID, tag string) error {
	res, err := t.q.ExecContext(ctx, t.dialect.rebind(
		"DELETE FROM active_tags WHERE document_uuid = ? AND tag = ?",
	), documentUUID, tag)
	if err != nil {
		return fmt.Errorf("delete active tag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete active tag: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// LatestTagEventTime returns the created_at of the document's newest tag event.
func (t *txStore) LatestTagEventTime(ctx context.Context, documentUUID string) (time.Time, error) {
	var createdAt sql.NullInt64
	err := t.q.QueryRowContext(ctx, t.dialect.rebind(
		"SELECT MAX(created_at) FROM tag_events WHERE document_uuid = ?",
	), documentUUID).Scan(&createdAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("latest tag event: %w", err)
	}
	if !createdAt.Valid {
		return time.Time{}, nil
	}
	return fromNanos(createdAt.Int64), nil
}

// InsertTagEvent appends an event to the audit trail and returns its sequence number.
func (t *txStore) InsertTagEvent(ctx context.Context, e document.TagEvent) (int64, error) {
	var seq int64
	err := t.q.QueryRowContext(ctx, t.dialect.rebind(
		`INSERT INTO tag_events (
		   tag_event_uuid,
		   document_uuid,
		   document_version,
		   tag,
		   operation,
		   created_at,
		   created_by,
		   created_by_type,
		   session_id
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING seq`),
		e.TagEventUUID,
		e.DocumentUUID,
		e.DocumentVersion,
		e.Tag,
		string(e.Operation),
		toNanos(e.CreatedAt),
		e.CreatedBy,
		e.CreatedByType,
		e.SessionID,
	).Scan(&seq)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrConflict
		}
		return 0, fmt.Errorf("insert tag event: %w", err)
	}
	return seq, nil
}
