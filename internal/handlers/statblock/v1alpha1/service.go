// Package v1alpha1 serves the statblock import API over gRPC. Messages travel
// as google.protobuf.Struct so no generated stubs are needed; the typed
// request and response shapes below define their fields.
package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "statblock.api.v1alpha1.StatblockService"

// Method names
const (
	MethodImportStatblock = "ImportStatblock"
	MethodGetCreature     = "GetCreature"
	MethodListCreatures   = "ListCreatures"
	MethodDeleteCreature  = "DeleteCreature"
)

// ImportStatblockRequest carries pasted statblock text
type ImportStatblockRequest struct {
	Text          string `json:"text"`
	RollHitPoints bool   `json:"roll_hit_points,omitempty"`
	DryRun        bool   `json:"dry_run,omitempty"`
}

// ImportStatblockResponse carries the parsed record
type ImportStatblockResponse struct {
	Record       *creature.Record `json:"record"`
	Unclassified []string         `json:"unclassified,omitempty"`
	Stored       bool             `json:"stored"`
}

// GetCreatureRequest names a stored record
type GetCreatureRequest struct {
	ID string `json:"id"`
}

// GetCreatureResponse carries a stored record
type GetCreatureResponse struct {
	Record *creature.Record `json:"record"`
}

// ListCreaturesRequest pages through stored records
type ListCreaturesRequest struct {
	PageSize int `json:"page_size,omitempty"`
	Offset   int `json:"offset,omitempty"`
}

// ListCreaturesResponse is one page of records, newest first. NextOffset is
// zero on the last page.
type ListCreaturesResponse struct {
	Records    []*creature.Record `json:"records"`
	TotalSize  int                `json:"total_size"`
	NextOffset int                `json:"next_offset,omitempty"`
}

// DeleteCreatureRequest names a stored record
type DeleteCreatureRequest struct {
	ID string `json:"id"`
}

// DeleteCreatureResponse is empty
type DeleteCreatureResponse struct{}

// StatblockServiceServer is the server API for StatblockService
type StatblockServiceServer interface {
	ImportStatblock(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCreature(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCreatures(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCreature(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(StatblockServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(StatblockServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*structpb.Struct))
		})
	}
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// StatblockServiceDesc describes StatblockService for grpc.Server registration
var StatblockServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatblockServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodImportStatblock,
			Handler:    unaryHandler(MethodImportStatblock, StatblockServiceServer.ImportStatblock),
		},
		{
			MethodName: MethodGetCreature,
			Handler:    unaryHandler(MethodGetCreature, StatblockServiceServer.GetCreature),
		},
		{
			MethodName: MethodListCreatures,
			Handler:    unaryHandler(MethodListCreatures, StatblockServiceServer.ListCreatures),
		},
		{
			MethodName: MethodDeleteCreature,
			Handler:    unaryHandler(MethodDeleteCreature, StatblockServiceServer.DeleteCreature),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterStatblockServiceServer registers srv with s
func RegisterStatblockServiceServer(s grpc.ServiceRegistrar, srv StatblockServiceServer) {
	s.RegisterService(&StatblockServiceDesc, srv)
}

// toStruct encodes v through its JSON form
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	return out, nil
}

// fromStruct decodes s into v through its JSON form
func fromStruct(s *structpb.Struct, v any) error {
	if s == nil {
		return nil
	}
	data, err := protojson.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "failed to decode message")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}
