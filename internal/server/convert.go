package server

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/nainya/docstore/pkg/document"
	apperrors "github.com/nainya/docstore/pkg/errors"
	pb "github.com/nainya/docstore/proto"
)

// versionFromProto converts a wire document into a ledger write. Version and
// created_at are assigned by the ledger and ignored here.
func versionFromProto(d *pb.Document) (document.Version, error) {
	if d == nil {
		return document.Version{}, apperrors.InvalidArgument("document is required")
	}
	body, err := document.ParseBody(d.BodyJson)
	if err != nil {
		return document.Version{}, apperrors.InvalidArgument("body_json is not valid JSON: %v", err)
	}
	md, err := document.ParseMetadata(d.MetadataJson)
	if err != nil {
		return document.Version{}, apperrors.InvalidArgument("metadata_json is not a JSON object: %v", err)
	}
	return document.Version{
		DocumentUUID:  d.DocumentUuid,
		Type:          d.Type,
		Name:          d.Name,
		Namespace:     d.Namespace,
		Body:          body,
		Metadata:      md,
		Tags:          d.Tags,
		CreatedBy:     d.CreatedBy,
		CreatedByType: d.CreatedByType,
		SessionID:     d.SessionId,
	}, nil
}

func versionToProto(v document.Version) *pb.Document {
	return &pb.Document{
		DocumentUuid:  v.DocumentUUID,
		Version:       int32(v.Version),
		Type:          v.Type,
		Name:          v.Name,
		Namespace:     v.Namespace,
		BodyJson:      string(v.Body),
		MetadataJson:  string(v.Metadata),
		Tags:          v.Tags,
		CreatedAt:     timestampOrNil(v.CreatedAt),
		CreatedBy:     v.CreatedBy,
		CreatedByType: v.CreatedByType,
		SessionId:     v.SessionID,
	}
}

func versionsToProto(vs []document.Version) []*pb.Document {
	out := make([]*pb.Document, 0, len(vs))
	for _, v := range vs {
		out = append(out, versionToProto(v))
	}
	return out
}

func activeTagToProto(t document.ActiveTag) *pb.ActiveTag {
	return &pb.ActiveTag{
		DocumentUuid:    t.DocumentUUID,
		DocumentVersion: int32(t.DocumentVersion),
		Tag:             t.Tag,
		UpdatedAt:       timestampOrNil(t.UpdatedAt),
		UpdatedBy:       t.UpdatedBy,
		UpdatedByType:   t.UpdatedByType,
		SessionId:       t.SessionID,
	}
}

func tagEventToProto(e document.TagEvent) *pb.TagEvent {
	return &pb.TagEvent{
		TagEventUuid:    e.TagEventUUID,
		DocumentUuid:    e.DocumentUUID,
		DocumentVersion: int32(e.DocumentVersion),
		Tag:             e.Tag,
		Operation:       string(e.Operation),
		CreatedAt:       timestampOrNil(e.CreatedAt),
		CreatedBy:       e.CreatedBy,
		CreatedByType:   e.CreatedByType,
		SessionId:       e.SessionID,
	}
}

func timestampOrNil(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timeOrZero(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
