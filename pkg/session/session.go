// ABOUTME: Session context aggregator: read-only view of the documents written in a session
// ABOUTME: Returns the latest version of each matching document, newest first

package session

import (
	"context"
	"strings"
	"time"

	"github.com/nainya/docstore/pkg/document"
	apperrors "github.com/nainya/docstore/pkg/errors"
	"github.com/nainya/docstore/pkg/ledger"
	"github.com/nainya/docstore/pkg/storage"
)

// Query selects a session's documents.
type Query struct {
	SessionID     string
	DocumentTypes []string  // Empty means any type
	Since         time.Time // Zero means unbounded; otherwise created_at must be strictly later
	Limit         int
	IncludeBody   bool
}

// Context is the assembled view of a session.
type Context struct {
	Documents  []document.Version
	TotalCount int
}

// Aggregator composes ledger reads across a session.
type Aggregator struct {
	ledger *ledger.Ledger
}

// New creates an aggregator over l.
func New(l *ledger.Ledger) *Aggregator {
	return &Aggregator{ledger: l}
}

// GetSessionContext returns up to q.Limit documents of the session, newest first.
func (a *Aggregator) GetSessionContext(ctx context.Context, q Query) (Context, error) {
	sessionID := strings.TrimSpace(q.SessionID)
	if sessionID == "" {
		return Context{}, apperrors.InvalidArgument("session_id is required")
	}
	if q.Limit < 0 {
		return Context{}, apperrors.InvalidArgument("limit must not be negative")
	}

	var types []string
	for _, t := range q.DocumentTypes {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	docs, total, err := a.ledger.Recent(ctx, ledger.RecentInput{
		Filter: storage.VersionFilter{
			SessionID: sessionID,
			Types:     types,
			Since:     q.Since,
		},
		Limit:       q.Limit,
		IncludeBody: q.IncludeBody,
	})
	if err != nil {
		return Context{}, err
	}
	return Context{Documents: docs, TotalCount: total}, nil
}
