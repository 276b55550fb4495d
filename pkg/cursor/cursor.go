// Package cursor provides opaque pagination token encoding/decoding.
//
// A cursor records the sort key of the last item on a page. List queries
// resume strictly after that key, so chaining tokens until the token comes
// back empty visits every matching item exactly once.
package cursor

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidToken is returned for malformed tokens and tokens minted by a different query.
var ErrInvalidToken = errors.New("invalid pagination token")

// Cursor is the internal state behind a pagination token.
type Cursor struct {
	// Time is the created_at of the last item, in unix nanoseconds.
	Time int64 `json:"t,omitempty"`
	// Key is a string tie-break (document uuid, tag name).
	Key string `json:"k,omitempty"`
	// Seq is a numeric tie-break (version, event sequence).
	Seq int64 `json:"s,omitempty"`
	// Fingerprint ties the token to the query that produced it.
	Fingerprint string `json:"f,omitempty"`
}

// At returns Time as a UTC timestamp.
func (c Cursor) At() time.Time {
	return time.Unix(0, c.Time).UTC()
}

// Encode encodes a cursor to an opaque base64 string.
func Encode(c Cursor) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode decodes an opaque base64 string to a cursor.
func Decode(token string) (Cursor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Cursor{}, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: decode base64: %v", ErrInvalidToken, err)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: unmarshal cursor: %v", ErrInvalidToken, err)
	}
	return c, nil
}

// Resume decodes token for the query identified by fingerprint.
// An empty token means "first page" and yields a nil cursor.
func Resume(token, fingerprint string) (*Cursor, error) {
	if strings.TrimSpace(token) == "" {
		return nil, nil
	}
	c, err := Decode(token)
	if err != nil {
		return nil, err
	}
	if c.Fingerprint != fingerprint {
		return nil, fmt.Errorf("%w: token was issued for a different query", ErrInvalidToken)
	}
	return &c, nil
}

// Fingerprint hashes the parameters that define a query.
func Fingerprint(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}
