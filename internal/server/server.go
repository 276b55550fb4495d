// Package server implements the gRPC document store service
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nainya/docstore/internal/logger"
	"github.com/nainya/docstore/internal/metrics"
	"github.com/nainya/docstore/pkg/document"
	apperrors "github.com/nainya/docstore/pkg/errors"
	"github.com/nainya/docstore/pkg/ledger"
	"github.com/nainya/docstore/pkg/session"
	"github.com/nainya/docstore/pkg/storage"
	"github.com/nainya/docstore/pkg/tags"
	pb "github.com/nainya/docstore/proto"
)

// Version is reported by HealthCheck.
const Version = "1.0.0"

// Options holds the engines the server exposes.
type Options struct {
	Store    storage.Store
	Ledger   *ledger.Ledger
	Tags     *tags.Engine
	Sessions *session.Aggregator
	Metrics  *metrics.Metrics // nil registers against a private registry
	Logger   *logger.Logger   // nil discards logs
}

// Server implements the DocumentStoreServiceServer interface
type Server struct {
	pb.UnimplementedDocumentStoreServiceServer

	store    storage.Store
	ledger   *ledger.Ledger
	tags     *tags.Engine
	sessions *session.Aggregator
	metrics  *metrics.Metrics
	log      *logger.Logger

	startTime time.Time
}

// NewServer creates a gRPC service over the given engines.
func NewServer(opts Options) *Server {
	m := opts.Metrics
	if m == nil {
		m = metrics.NewMetrics(prometheus.NewRegistry())
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		store:     opts.Store,
		ledger:    opts.Ledger,
		tags:      opts.Tags,
		sessions:  opts.Sessions,
		metrics:   m,
		log:       log,
		startTime: time.Now(),
	}
}

// rejected reports whether err is a business failure that receipt-style
// responses carry in success/message instead of a status error.
func rejected(err error) bool {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidArgument, apperrors.CodeNotFound, apperrors.CodeConflict:
		return true
	}
	return false
}

func (s *Server) logRejection(method string, err error) {
	s.log.GrpcLogger(method).Warn().
		Str("code", string(apperrors.CodeOf(err))).
		Err(err).
		Msg("request rejected")
}

func receiptToProto(r ledger.Receipt) *pb.DocumentReceipt {
	return &pb.DocumentReceipt{
		DocumentUuid: r.DocumentUUID,
		Version:      int32(r.Version),
		Success:      r.Success,
		ErrorMessage: r.ErrorMessage,
	}
}

// ========== Versions ==========

func (s *Server) PutDocument(ctx context.Context, req *pb.PutDocumentRequest) (*pb.PutDocumentResponse, error) {
	v, err := versionFromProto(req.GetDocument())
	var receipt ledger.Receipt
	if err == nil {
		receipt, err = s.ledger.Put(ctx, v)
	} else {
		receipt = ledger.Receipt{ErrorMessage: err.Error()}
		if d := req.GetDocument(); d != nil {
			receipt.DocumentUUID = d.DocumentUuid
		}
	}
	if err != nil {
		if !rejected(err) {
			return nil, apperrors.ToStatus(err)
		}
		s.logRejection("PutDocument", err)
		return &pb.PutDocumentResponse{
			Success: false,
			Message: err.Error(),
			Receipt: receiptToProto(receipt),
		}, nil
	}

	s.metrics.VersionsWrittenTotal.Inc()
	return &pb.PutDocumentResponse{
		Success: true,
		Message: fmt.Sprintf("stored %s version %d", receipt.DocumentUUID, receipt.Version),
		Receipt: receiptToProto(receipt),
	}, nil
}

func (s *Server) PutDocuments(ctx context.Context, req *pb.PutDocumentsRequest) (*pb.PutDocumentsResponse, error) {
	docs := req.GetDocuments()
	if len(docs) == 0 {
		return &pb.PutDocumentsResponse{Success: false, Message: "documents are required"}, nil
	}

	receipts := make([]ledger.Receipt, len(docs))
	valid := make([]document.Version, 0, len(docs))
	slots := make([]int, 0, len(docs))
	for i, d := range docs {
		v, err := versionFromProto(d)
		if err != nil {
			receipts[i] = ledger.Receipt{ErrorMessage: err.Error()}
			if d != nil {
				receipts[i].DocumentUUID = d.DocumentUuid
			}
			continue
		}
		valid = append(valid, v)
		slots = append(slots, i)
	}

	// Committed items must reach the caller even when ctx ends mid-batch.
	for j, r := range s.ledger.PutBatch(ctx, valid) {
		receipts[slots[j]] = r
	}

	out := make([]*pb.DocumentReceipt, len(receipts))
	succeeded := 0
	for i, r := range receipts {
		if r.Success {
			succeeded++
		}
		out[i] = receiptToProto(r)
	}
	s.metrics.RecordBatch(succeeded, len(receipts)-succeeded)

	return &pb.PutDocumentsResponse{
		Success:  succeeded == len(receipts),
		Message:  fmt.Sprintf("stored %d of %d documents", succeeded, len(receipts)),
		Receipts: out,
	}, nil
}

func (s *Server) GetDocument(ctx context.Context, req *pb.GetDocumentRequest) (*pb.GetDocumentResponse, error) {
	v, err := s.ledger.Get(ctx, ledger.GetInput{
		DocumentUUID: req.GetDocumentUuid(),
		Version:      int(req.Version),
		Tag:          req.Tag,
		IncludeBody:  req.IncludeBody,
	})
	if err != nil {
		return nil, apperrors.ToStatus(err)
	}
	return &pb.GetDocumentResponse{Success: true, Document: versionToProto(v)}, nil
}

func (s *Server) ListDocuments(ctx context.Context, req *pb.ListDocumentsRequest) (*pb.ListDocumentsResponse, error) {
	page, err := s.ledger.List(ctx, ledger.ListInput{
		Namespace:   req.Namespace,
		Type:        req.Type,
		Tag:         req.Tag,
		SessionID:   req.SessionId,
		LatestOnly:  req.LatestVersionsOnly,
		PageToken:   req.PaginationToken,
		PageSize:    int(req.PageSize),
		IncludeBody: req.IncludeBody,
	})
	if err != nil {
		return nil, apperrors.ToStatus(err)
	}
	docs := versionsToProto(page.Versions)
	return &pb.ListDocumentsResponse{
		Documents:           docs,
		NextPaginationToken: page.NextPageToken,
		TotalCount:          int32(page.TotalCount),
	}, nil
}

func (s *Server) ListDocumentVersions(ctx context.Context, req *pb.ListDocumentVersionsRequest) (*pb.ListDocumentVersionsResponse, error) {
	page, err := s.ledger.ListVersions(ctx, ledger.ListVersionsInput{
		DocumentUUID: req.GetDocumentUuid(),
		PageToken:    req.PaginationToken,
		PageSize:     int(req.PageSize),
		IncludeBody:  req.IncludeBody,
	})
	if err != nil {
		return nil, apperrors.ToStatus(err)
	}
	docs := versionsToProto(page.Versions)
	return &pb.ListDocumentVersionsResponse{
		Documents:           docs,
		NextPaginationToken: page.NextPageToken,
		TotalCount:          int32(page.TotalCount),
	}, nil
}

func (s *Server) DeleteDocument(ctx context.Context, req *pb.DeleteDocumentRequest) (*pb.DeleteDocumentResponse, error) {
	res, err := s.ledger.Delete(ctx, ledger.DeleteInput{
		DocumentUUID: req.GetDocumentUuid(),
		Version:      int(req.Version),
		Actor: document.Actor{
			ID:        req.DeletedBy,
			Type:      req.DeletedByType,
			SessionID: req.SessionId,
		},
	})
	if err != nil {
		if !rejected(err) {
			return nil, apperrors.ToStatus(err)
		}
		s.logRejection("DeleteDocument", err)
		return &pb.DeleteDocumentResponse{Success: false, Message: err.Error()}, nil
	}

	s.metrics.VersionsDeletedTotal.Add(float64(res.VersionsDeleted))
	for i := 0; i < res.TagsRemoved; i++ {
		s.metrics.RecordTagEvent(string(document.OperationRemove))
	}
	return &pb.DeleteDocumentResponse{
		Success:         true,
		Message:         res.Message,
		VersionsDeleted: int32(res.VersionsDeleted),
	}, nil
}

// ========== Tags ==========

func (s *Server) TagDocument(ctx context.Context, req *pb.TagDocumentRequest) (*pb.TagDocumentResponse, error) {
	res, err := s.tags.Tag(ctx, tags.TagInput{
		DocumentUUID: req.GetDocumentUuid(),
		Version:      int(req.Version),
		Tag:          req.Tag,
		Actor: document.Actor{
			ID:        req.TaggedBy,
			Type:      req.TaggedByType,
			SessionID: req.SessionId,
		},
	})
	if err != nil {
		if !rejected(err) {
			return nil, apperrors.ToStatus(err)
		}
		s.logRejection("TagDocument", err)
		return &pb.TagDocumentResponse{Success: false, Message: err.Error()}, nil
	}

	s.metrics.RecordTagEvent(string(res.Event.Operation))
	return &pb.TagDocumentResponse{
		Success:      true,
		Message:      res.Message,
		TagEventUuid: res.Event.TagEventUUID,
	}, nil
}

func (s *Server) UntagDocument(ctx context.Context, req *pb.UntagDocumentRequest) (*pb.UntagDocumentResponse, error) {
	res, err := s.tags.Untag(ctx, tags.UntagInput{
		DocumentUUID: req.GetDocumentUuid(),
		Tag:          req.Tag,
		Actor: document.Actor{
			ID:        req.UntaggedBy,
			Type:      req.UntaggedByType,
			SessionID: req.SessionId,
		},
	})
	if err != nil {
		if !rejected(err) {
			return nil, apperrors.ToStatus(err)
		}
		s.logRejection("UntagDocument", err)
		return &pb.UntagDocumentResponse{Success: false, Message: err.Error()}, nil
	}

	s.metrics.RecordTagEvent(string(res.Event.Operation))
	return &pb.UntagDocumentResponse{
		Success:      true,
		Message:      res.Message,
		TagEventUuid: res.Event.TagEventUUID,
	}, nil
}

func (s *Server) ListActiveTags(ctx context.Context, req *pb.ListActiveTagsRequest) (*pb.ListActiveTagsResponse, error) {
	page, err := s.tags.ListActiveTags(ctx, tags.ListActiveTagsInput{
		DocumentUUID:    req.GetDocumentUuid(),
		DocumentVersion: int(req.DocumentVersion),
		PageToken:       req.PaginationToken,
		PageSize:        int(req.PageSize),
	})
	if err != nil {
		return nil, apperrors.ToStatus(err)
	}
	out := make([]*pb.ActiveTag, 0, len(page.Tags))
	for _, t := range page.Tags {
		out = append(out, activeTagToProto(t))
	}
	return &pb.ListActiveTagsResponse{
		ActiveTags:          out,
		NextPaginationToken: page.NextPageToken,
	}, nil
}

func (s *Server) ListTagEvents(ctx context.Context, req *pb.ListTagEventsRequest) (*pb.ListTagEventsResponse, error) {
	page, err := s.tags.ListTagEvents(ctx, tags.ListTagEventsInput{
		DocumentUUID: req.GetDocumentUuid(),
		Tag:          req.Tag,
		PageToken:    req.PaginationToken,
		PageSize:     int(req.PageSize),
	})
	if err != nil {
		return nil, apperrors.ToStatus(err)
	}
	out := make([]*pb.TagEvent, 0, len(page.Events))
	for _, e := range page.Events {
		out = append(out, tagEventToProto(e))
	}
	return &pb.ListTagEventsResponse{
		TagEvents:           out,
		NextPaginationToken: page.NextPageToken,
	}, nil
}

// ========== Sessions ==========

func (s *Server) GetSessionContext(ctx context.Context, req *pb.GetSessionContextRequest) (*pb.GetSessionContextResponse, error) {
	res, err := s.sessions.GetSessionContext(ctx, session.Query{
		SessionID:     req.SessionId,
		DocumentTypes: req.DocumentTypes,
		Since:         timeOrZero(req.Since),
		Limit:         int(req.Limit),
		IncludeBody:   req.IncludeBody,
	})
	if err != nil {
		return nil, apperrors.ToStatus(err)
	}
	docs := versionsToProto(res.Documents)
	return &pb.GetSessionContextResponse{
		Success:    true,
		Message:    fmt.Sprintf("%d of %d session documents", len(docs), res.TotalCount),
		Documents:  docs,
		TotalCount: int32(res.TotalCount),
	}, nil
}

// ========== Health ==========

func (s *Server) HealthCheck(ctx context.Context, _ *pb.HealthCheckRequest) (*pb.HealthCheckResponse, error) {
	resp := &pb.HealthCheckResponse{
		Healthy:       true,
		Version:       Version,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		Message:       "ok",
	}
	if err := s.store.Ping(ctx); err != nil {
		resp.Healthy = false
		resp.Message = fmt.Sprintf("store unavailable: %v", err)
	}
	return resp, nil
}
