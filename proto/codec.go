// Package proto holds the document store messages and gRPC service generated from
// document_store.proto, and a protojson codec for clients that prefer JSON.
package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	gproto "google.golang.org/protobuf/proto"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "unhinged.document_store.DocumentStoreService"

// CodecName is the content-subtype served by Codec ("application/grpc+json").
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

var (
	jsonMarshal   = protojson.MarshalOptions{UseProtoNames: true}
	jsonUnmarshal = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// Codec marshals the document store messages as protojson with snake_case field names.
// The default protobuf codec stays in place for every other content-subtype.
type Codec struct{}

// Marshal implements encoding.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(gproto.Message)
	if !ok {
		return nil, fmt.Errorf("marshal %T: not a proto.Message", v)
	}
	data, err := jsonMarshal.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal implements encoding.Codec.
func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(gproto.Message)
	if !ok {
		return fmt.Errorf("unmarshal %T: not a proto.Message", v)
	}
	if len(data) == 0 {
		gproto.Reset(m)
		return nil
	}
	if err := jsonUnmarshal.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return nil
}

// Name implements encoding.Codec.
func (Codec) Name() string {
	return CodecName
}
