package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

// Client calls a remote StatblockService. Returned errors carry the
// server's error codes.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over an established connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any, opts ...grpc.CallOption) error {
	in, err := toStruct(req)
	if err != nil {
		return err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return errors.FromGRPCError(err)
	}
	return fromStruct(out, resp)
}

// ImportStatblock imports pasted statblock text
func (c *Client) ImportStatblock(ctx context.Context, req *ImportStatblockRequest, opts ...grpc.CallOption) (*ImportStatblockResponse, error) {
	resp := &ImportStatblockResponse{}
	if err := c.invoke(ctx, MethodImportStatblock, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetCreature fetches a stored record
func (c *Client) GetCreature(ctx context.Context, req *GetCreatureRequest, opts ...grpc.CallOption) (*GetCreatureResponse, error) {
	resp := &GetCreatureResponse{}
	if err := c.invoke(ctx, MethodGetCreature, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListCreatures fetches a page of stored records
func (c *Client) ListCreatures(ctx context.Context, req *ListCreaturesRequest, opts ...grpc.CallOption) (*ListCreaturesResponse, error) {
	resp := &ListCreaturesResponse{}
	if err := c.invoke(ctx, MethodListCreatures, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteCreature removes a stored record
func (c *Client) DeleteCreature(ctx context.Context, req *DeleteCreatureRequest, opts ...grpc.CallOption) (*DeleteCreatureResponse, error) {
	resp := &DeleteCreatureResponse{}
	if err := c.invoke(ctx, MethodDeleteCreature, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}
