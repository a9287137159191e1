package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	"github.com/KirkDiggler/rpg-statblock/internal/orchestrators/importer"
)

// HandlerConfig holds dependencies for the statblock handler
type HandlerConfig struct {
	Service importer.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.Service == nil {
		return errors.InvalidArgument("importer service is required")
	}
	return nil
}

// Handler implements StatblockServiceServer
type Handler struct {
	service importer.Service
}

var _ StatblockServiceServer = (*Handler)(nil)

// NewHandler creates a new statblock handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.Service,
	}, nil
}

// ImportStatblock parses pasted text and stores the record
func (h *Handler) ImportStatblock(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ImportStatblockRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Text == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("text is required"))
	}

	out, err := h.service.Import(ctx, &importer.ImportInput{
		Text:          req.Text,
		RollHitPoints: req.RollHitPoints,
		DryRun:        req.DryRun,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ImportStatblockResponse{
		Record:       out.Record,
		Unclassified: out.Unclassified,
		Stored:       out.Stored,
	})
}

// GetCreature returns a stored record
func (h *Handler) GetCreature(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req GetCreatureRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.service.GetCreature(ctx, &importer.GetCreatureInput{ID: req.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GetCreatureResponse{Record: out.Record})
}

// ListCreatures returns a page of stored records
func (h *Handler) ListCreatures(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ListCreaturesRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ListCreatures(ctx, &importer.ListCreaturesInput{
		PageSize: req.PageSize,
		Offset:   req.Offset,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ListCreaturesResponse{
		Records:    out.Records,
		TotalSize:  out.TotalSize,
		NextOffset: out.NextOffset,
	})
}

// DeleteCreature removes a stored record
func (h *Handler) DeleteCreature(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req DeleteCreatureRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	if _, err := h.service.DeleteCreature(ctx, &importer.DeleteCreatureInput{ID: req.ID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&DeleteCreatureResponse{})
}

func respond(v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
