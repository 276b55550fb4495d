package document

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ParseBody checks that raw is a single JSON value and returns the caller's text
// unchanged. Blank input yields nil.
func ParseBody(raw string) (json.RawMessage, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if err := protojson.Unmarshal([]byte(raw), &structpb.Value{}); err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}
	return json.RawMessage(raw), nil
}

// ParseMetadata checks that raw is a JSON object and returns the caller's text
// unchanged. Blank input yields nil.
func ParseMetadata(raw string) (json.RawMessage, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if err := protojson.Unmarshal([]byte(raw), &structpb.Struct{}); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	return json.RawMessage(raw), nil
}
