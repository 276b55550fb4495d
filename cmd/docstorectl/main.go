// docstorectl is a command-line client for the docstore gRPC server
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/nainya/docstore/proto"
)

// Config holds client connection settings.
type Config struct {
	Addr    string        `env:"DOCSTORE_ADDR"    envDefault:"localhost:9097"`
	Timeout time.Duration `env:"DOCSTORE_TIMEOUT" envDefault:"10s"`
}

var outputFormat = protojson.MarshalOptions{
	Multiline:       true,
	Indent:          "  ",
	UseProtoNames:   true,
	EmitUnpopulated: true,
}

// errRejected marks a receipt-style response with success=false.
var errRejected = errors.New("request rejected")

type command struct {
	usage string
	run   func(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error)
}

var commands = map[string]command{
	"put":      {"store a new version of a document", cmdPut},
	"get":      {"fetch a version by number, tag or latest", cmdGet},
	"list":     {"list document versions across documents", cmdList},
	"versions": {"list the versions of one document", cmdVersions},
	"delete":   {"delete one or every version of a document", cmdDelete},
	"tag":      {"point a tag at a version", cmdTag},
	"untag":    {"remove an active tag", cmdUntag},
	"tags":     {"list active tags of a document", cmdTags},
	"events":   {"list the tag audit trail of a document", cmdEvents},
	"session":  {"list the latest documents of a session", cmdSession},
	"health":   {"report server health", cmdHealth},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "docstorectl: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("docstorectl", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "docstore server address")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-call timeout")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.New("missing command")
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fs.Usage()
		return fmt.Errorf("unknown command %q", rest[0])
	}

	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.Addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	resp, err := cmd.run(ctx, pb.NewDocumentStoreServiceClient(conn), rest[1:])
	if err != nil {
		return err
	}

	data, err := outputFormat.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if rejected(resp) {
		return errRejected
	}
	return nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "usage: docstorectl [-addr host:port] [-timeout d] <command> [flags]\n\ncommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-9s %s\n", name, commands[name].usage)
	}
	fmt.Fprintf(w, "\nflags:\n")
	fs.PrintDefaults()
}

// rejected reports whether resp is a receipt-style response with success=false.
func rejected(resp proto.Message) bool {
	switch r := resp.(type) {
	case interface{ GetHealthy() bool }:
		return !r.GetHealthy()
	case interface{ GetSuccess() bool }:
		return !r.GetSuccess()
	}
	return false
}

func subcommand(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

type actorFlags struct {
	by, byType, session string
}

func (a *actorFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&a.by, "by", os.Getenv("USER"), "actor id")
	fs.StringVar(&a.byType, "by-type", "user", "actor type")
	fs.StringVar(&a.session, "session", "", "session id")
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func cmdPut(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("put")
	var actor actorFlags
	actor.register(fs)
	doc := &pb.Document{}
	var tagList, bodyFile string
	fs.StringVar(&doc.DocumentUuid, "uuid", "", "document uuid (required)")
	fs.StringVar(&doc.Type, "type", "", "document type (required)")
	fs.StringVar(&doc.Namespace, "namespace", "", "namespace (required)")
	fs.StringVar(&doc.Name, "name", "", "display name")
	fs.StringVar(&doc.BodyJson, "body", "", "body as a JSON value")
	fs.StringVar(&bodyFile, "body-file", "", "read the body JSON from a file")
	fs.StringVar(&doc.MetadataJson, "metadata", "", "metadata as a JSON object")
	fs.StringVar(&tagList, "tags", "", "comma separated tag names")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if bodyFile != "" {
		data, err := os.ReadFile(bodyFile)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		doc.BodyJson = string(data)
	}
	doc.Tags = splitList(tagList)
	doc.CreatedBy, doc.CreatedByType, doc.SessionId = actor.by, actor.byType, actor.session

	resp, err := c.PutDocument(ctx, &pb.PutDocumentRequest{Document: doc})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func cmdGet(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("get")
	req := &pb.GetDocumentRequest{}
	var version int
	fs.StringVar(&req.DocumentUuid, "uuid", "", "document uuid (required)")
	fs.IntVar(&version, "version", 0, "version number (0 resolves by tag or latest)")
	fs.StringVar(&req.Tag, "tag", "", "resolve the version through this tag")
	fs.BoolVar(&req.IncludeBody, "body", true, "include the body")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.Version = int32(version)
	return c.GetDocument(ctx, req)
}

func cmdList(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("list")
	req := &pb.ListDocumentsRequest{}
	var pageSize int
	fs.StringVar(&req.Namespace, "namespace", "", "namespace filter")
	fs.StringVar(&req.Type, "type", "", "type filter")
	fs.StringVar(&req.Tag, "tag", "", "only versions this tag points at")
	fs.StringVar(&req.SessionId, "session", "", "session filter")
	fs.BoolVar(&req.LatestVersionsOnly, "latest", false, "only the latest version per document")
	fs.IntVar(&pageSize, "page-size", 0, "page size (0 uses the server default)")
	fs.StringVar(&req.PaginationToken, "token", "", "pagination token from a previous page")
	fs.BoolVar(&req.IncludeBody, "body", false, "include bodies")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.PageSize = int32(pageSize)
	return c.ListDocuments(ctx, req)
}

func cmdVersions(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("versions")
	req := &pb.ListDocumentVersionsRequest{}
	var pageSize int
	fs.StringVar(&req.DocumentUuid, "uuid", "", "document uuid (required)")
	fs.IntVar(&pageSize, "page-size", 0, "page size (0 uses the server default)")
	fs.StringVar(&req.PaginationToken, "token", "", "pagination token from a previous page")
	fs.BoolVar(&req.IncludeBody, "body", false, "include bodies")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.PageSize = int32(pageSize)
	return c.ListDocumentVersions(ctx, req)
}

func cmdDelete(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("delete")
	var actor actorFlags
	actor.register(fs)
	req := &pb.DeleteDocumentRequest{}
	var version int
	fs.StringVar(&req.DocumentUuid, "uuid", "", "document uuid (required)")
	fs.IntVar(&version, "version", 0, "version to delete (0 deletes every version)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.Version = int32(version)
	req.DeletedBy, req.DeletedByType, req.SessionId = actor.by, actor.byType, actor.session

	resp, err := c.DeleteDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func cmdTag(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("tag")
	var actor actorFlags
	actor.register(fs)
	req := &pb.TagDocumentRequest{}
	var version int
	fs.StringVar(&req.DocumentUuid, "uuid", "", "document uuid (required)")
	fs.IntVar(&version, "version", 0, "version to point at (required)")
	fs.StringVar(&req.Tag, "tag", "", "tag name (required)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.Version = int32(version)
	req.TaggedBy, req.TaggedByType, req.SessionId = actor.by, actor.byType, actor.session

	resp, err := c.TagDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func cmdUntag(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("untag")
	var actor actorFlags
	actor.register(fs)
	req := &pb.UntagDocumentRequest{}
	fs.StringVar(&req.DocumentUuid, "uuid", "", "document uuid (required)")
	fs.StringVar(&req.Tag, "tag", "", "tag name (required)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.UntaggedBy, req.UntaggedByType, req.SessionId = actor.by, actor.byType, actor.session

	resp, err := c.UntagDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func cmdTags(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("tags")
	req := &pb.ListActiveTagsRequest{}
	var version, pageSize int
	fs.StringVar(&req.DocumentUuid, "uuid", "", "document uuid (required)")
	fs.IntVar(&version, "version", 0, "only tags on this version (0 any)")
	fs.IntVar(&pageSize, "page-size", 0, "page size (0 uses the server default)")
	fs.StringVar(&req.PaginationToken, "token", "", "pagination token from a previous page")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.DocumentVersion, req.PageSize = int32(version), int32(pageSize)
	return c.ListActiveTags(ctx, req)
}

func cmdEvents(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("events")
	req := &pb.ListTagEventsRequest{}
	var pageSize int
	fs.StringVar(&req.DocumentUuid, "uuid", "", "document uuid (required)")
	fs.StringVar(&req.Tag, "tag", "", "only events of this tag")
	fs.IntVar(&pageSize, "page-size", 0, "page size (0 uses the server default)")
	fs.StringVar(&req.PaginationToken, "token", "", "pagination token from a previous page")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.PageSize = int32(pageSize)
	return c.ListTagEvents(ctx, req)
}

func cmdSession(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	fs := subcommand("session")
	req := &pb.GetSessionContextRequest{}
	var types, since string
	var limit int
	fs.StringVar(&req.SessionId, "session", "", "session id (required)")
	fs.StringVar(&types, "types", "", "comma separated document types")
	fs.StringVar(&since, "since", "", "only documents created after this RFC3339 time")
	fs.IntVar(&limit, "limit", 0, "maximum documents (0 uses the server default)")
	fs.BoolVar(&req.IncludeBody, "body", false, "include bodies")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if since != "" {
		t, err := time.Parse(time.RFC3339Nano, since)
		if err != nil {
			return nil, fmt.Errorf("parse -since: %w", err)
		}
		req.Since = timestamppb.New(t)
	}
	req.DocumentTypes = splitList(types)
	req.Limit = int32(limit)
	return c.GetSessionContext(ctx, req)
}

func cmdHealth(ctx context.Context, c pb.DocumentStoreServiceClient, args []string) (proto.Message, error) {
	if len(args) > 0 {
		return nil, errors.New("health takes no arguments")
	}
	resp, err := c.HealthCheck(ctx, &pb.HealthCheckRequest{})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
