package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nainya/docstore/pkg/document"
	"github.com/nainya/docstore/pkg/storage"
)

const versionOrder = "dv.created_at DESC, dv.document_uuid DESC, dv.version DESC"

func versionColumns(alias string, includeBody bool) string {
	body := "CAST(NULL AS TEXT)"
	if includeBody {
		body = alias + ".body_json"
	}
	cols := []string{
		alias + ".document_uuid",
		alias + ".version",
		alias + ".type",
		alias + ".name",
		alias + ".namespace",
		body,
		alias + ".metadata_json",
		alias + ".tags_json",
		alias + ".created_at",
		alias + ".created_by",
		alias + ".created_by_type",
		alias + ".session_id",
	}
	return strings.Join(cols, ", ")
}

func scanVersion(row rowScanner) (document.Version, error) {
	var (
		v         document.Version
		body      sql.NullString
		metadata  sql.NullString
		tagsJSON  string
		createdAt int64
	)
	if err := row.Scan(
		&v.DocumentUUID,
		&v.Version,
		&v.Type,
		&v.Name,
		&v.Namespace,
		&body,
		&metadata,
		&tagsJSON,
		&createdAt,
		&v.CreatedBy,
		&v.CreatedByType,
		&v.SessionID,
	); err != nil {
		return document.Version{}, err
	}
	v.CreatedAt = fromNanos(createdAt)

	if body.Valid {
		v.Body = json.RawMessage(body.String)
	}
	if metadata.Valid {
		v.Metadata = json.RawMessage(metadata.String)
	}
	if tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &v.Tags); err != nil {
			return document.Version{}, fmt.Errorf("decode tags: %w", err)
		}
		if len(v.Tags) == 0 {
			v.Tags = nil
		}
	}
	return v, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// versionConditions renders f (without LatestOnly) as predicates on the given table alias.
func versionConditions(alias string, f storage.VersionFilter) ([]string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.DocumentUUID != "" {
		conds = append(conds, alias+".document_uuid = ?")
		args = append(args, f.DocumentUUID)
	}
	if f.Namespace != "" {
		conds = append(conds, alias+".namespace = ?")
		args = append(args, f.Namespace)
	}
	if f.Type != "" {
		conds = append(conds, alias+".type = ?")
		args = append(args, f.Type)
	}
	if len(f.Types) > 0 {
		marks := make([]string, len(f.Types))
		for i, t := range f.Types {
			marks[i] = "?"
			args = append(args, t)
		}
		conds = append(conds, alias+".type IN ("+strings.Join(marks, ", ")+")")
	}
	if f.SessionID != "" {
		conds = append(conds, alias+".session_id = ?")
		args = append(args, f.SessionID)
	}
	if !f.Since.IsZero() {
		conds = append(conds, alias+".created_at > ?")
		args = append(args, toNanos(f.Since))
	}
	if f.Tag != "" {
		tagAlias := "t_" + alias
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM active_tags %[1]s WHERE %[1]s.document_uuid = %[2]s.document_uuid AND %[1]s.document_version = %[2]s.version AND %[1]s.tag = ?)",
			tagAlias, alias))
		args = append(args, f.Tag)
	}
	return conds, args
}

// filterClause renders the full WHERE predicate list for dv, including latest-only collapsing.
func filterClause(f storage.VersionFilter) ([]string, []any) {
	conds, args := versionConditions("dv", f)
	if f.LatestOnly {
		inner, innerArgs := versionConditions("lv", f)
		sub := "SELECT MAX(lv.version) FROM document_versions lv WHERE lv.document_uuid = dv.document_uuid"
		if len(inner) > 0 {
			sub += " AND " + strings.Join(inner, " AND ")
		}
		conds = append(conds, "dv.version = ("+sub+")")
		args = append(args, innerArgs...)
	}
	return conds, args
}

func where(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// GetVersion returns one version of a document.
func (s *Store) GetVersion(ctx context.Context, documentUUID string, version int, includeBody bool) (v document.Version, err error) {
	defer s.track("get_version", &err)()
	query := "SELECT " + versionColumns("dv", includeBody) +
		" FROM document_versions dv WHERE dv.document_uuid = ? AND dv.version = ?"
	v, err = scanVersion(s.db.QueryRowContext(ctx, s.dialect.rebind(query), documentUUID, version))
	if errors.Is(err, sql.ErrNoRows) {
		return document.Version{}, storage.ErrNotFound
	}
	if err != nil {
		return document.Version{}, fmt.Errorf("get version: %w", err)
	}
	return v, nil
}

// GetLatestVersion returns the highest version of a document.
func (s *Store) GetLatestVersion(ctx context.Context, documentUUID string, includeBody bool) (v document.Version, err error) {
	defer s.track("get_latest_version", &err)()
	query := "SELECT " + versionColumns("dv", includeBody) +
		" FROM document_versions dv WHERE dv.document_uuid = ? ORDER BY dv.version DESC LIMIT 1"
	v, err = scanVersion(s.db.QueryRowContext(ctx, s.dialect.rebind(query), documentUUID))
	if errors.Is(err, sql.ErrNoRows) {
		return document.Version{}, storage.ErrNotFound
	}
	if err != nil {
		return document.Version{}, fmt.Errorf("get latest version: %w", err)
	}
	return v, nil
}

// QueryVersions returns one page of versions in (created_at, document_uuid, version) descending order.
func (s *Store) QueryVersions(ctx context.Context, q storage.VersionQuery) (page storage.VersionPage, err error) {
	defer s.track("query_versions", &err)()

	conds, args := filterClause(q.Filter)
	if q.After != nil {
		at := toNanos(q.After.CreatedAt)
		conds = append(conds, "(dv.created_at < ? OR (dv.created_at = ? AND (dv.document_uuid < ? OR (dv.document_uuid = ? AND dv.version < ?))))")
		args = append(args, at, at, q.After.DocumentUUID, q.After.DocumentUUID, q.After.Version)
	}

	query := "SELECT " + versionColumns("dv", q.IncludeBody) + " FROM document_versions dv" +
		where(conds) + " ORDER BY " + versionOrder
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit+1)
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return storage.VersionPage{}, fmt.Errorf("query versions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return storage.VersionPage{}, fmt.Errorf("scan version: %w", err)
		}
		page.Versions = append(page.Versions, v)
	}
	if err := rows.Err(); err != nil {
		return storage.VersionPage{}, fmt.Errorf("iterate versions: %w", err)
	}

	if q.Limit > 0 && len(page.Versions) > q.Limit {
		page.Versions = page.Versions[:q.Limit]
		page.HasMore = true
	}
	return page, nil
}

// CountVersions counts versions matching f across all pages.
func (s *Store) CountVersions(ctx context.Context, f storage.VersionFilter) (n int, err error) {
	defer s.track("count_versions", &err)()
	conds, args := filterClause(f)
	query := "SELECT COUNT(*) FROM document_versions dv" + where(conds)
	if err = s.db.QueryRowContext(ctx, s.dialect.rebind(query), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count versions: %w", err)
	}
	return n, nil
}

// LatestVersion returns the highest version number of a document and its created_at.
func (t *txStore) LatestVersion(ctx context.Context, documentUUID string) (int, time.Time, error) {
	var (
		version   int
		createdAt int64
	)
	err := t.q.QueryRowContext(ctx, t.dialect.rebind(
		"SELECT version, created_at FROM document_versions WHERE document_uuid = ? ORDER BY version DESC LIMIT 1",
	), documentUUID).Scan(&version, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, time.Time{}, nil
	}
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("latest version: %w", err)
	}
	return version, fromNanos(createdAt), nil
}

// InsertVersion stores a new version row.
func (t *txStore) InsertVersion(ctx context.Context, v document.Version) error {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	_, err = t.q.ExecContext(ctx, t.dialect.rebind(
		`INSERT INTO document_versions (
		   document_uuid,
		   version,
		   type,
		   name,
		   namespace,
		   body_json,
		   metadata_json,
		   tags_json,
		   created_at,
		   created_by,
		   created_by_type,
		   session_id
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		v.DocumentUUID,
		v.Version,
		v.Type,
		v.Name,
		v.Namespace,
		nullString(string(v.Body)),
		nullString(string(v.Metadata)),
		string(tagsJSON),
		toNanos(v.CreatedAt),
		v.CreatedBy,
		v.CreatedByType,
		v.SessionID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("insert version: %w", err)
	}
	return nil
}

// VersionExists reports whether (documentUUID, version) is stored.
func (t *txStore) VersionExists(ctx context.Context, documentUUID string, version int) (bool, error) {
	var found int
	err := t.q.QueryRowContext(ctx, t.dialect.rebind(
		"SELECT 1 FROM document_versions WHERE document_uuid = ? AND version = ?",
	), documentUUID, version).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check version: %w", err)
	}
	return true, nil
}

// DeleteVersions removes one version, or every version when version is 0.
func (t *txStore) DeleteVersions(ctx context.Context, documentUUID string, version int) (int, error) {
	query := "DELETE FROM document_versions WHERE document_uuid = ?"
	args := []any{documentUUID}
	if version > 0 {
		query += " AND version = ?"
		args = append(args, version)
	}
	res, err := t.q.ExecContext(ctx, t.dialect.rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("delete versions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete versions: %w", err)
	}
	return int(n), nil
}
