package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/delta"
	"github.com/signadot/delta/debug"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const (
	methodVersion           = "delta/version"
	methodCompose           = "delta/compose"
	methodTransform         = "delta/transform"
	methodTransformPosition = "delta/transformPosition"
	methodDiff              = "delta/diff"
	methodInvert            = "delta/invert"
	methodTextEdits         = "delta/textEdits"
)

type Server struct {
	conn jsonrpc2.Conn
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type ComposeParams struct {
	A delta.Delta `json:"a"`
	B delta.Delta `json:"b"`
}

type TransformParams struct {
	A        delta.Delta `json:"a"`
	B        delta.Delta `json:"b"`
	Priority bool        `json:"priority"`
}

type TransformPositionParams struct {
	A        delta.Delta `json:"a"`
	Index    int         `json:"index"`
	Priority bool        `json:"priority"`
}

type DiffParams struct {
	A          delta.Delta `json:"a"`
	B          delta.Delta `json:"b"`
	Cursor     *int        `json:"cursor,omitempty"`
	Attributes bool        `json:"attributes,omitempty"`
}

type InvertParams struct {
	Change delta.Delta `json:"change"`
	Base   delta.Delta `json:"base"`
}

type TextEditsParams struct {
	Doc    delta.Delta `json:"doc"`
	Change delta.Delta `json:"change"`
}

// Handle dispatches a request by method name. Every path replies exactly
// once.
func (s *Server) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.RPC() {
		debug.Logf("rpc %s %s", req.Method(), string(req.Params()))
	}
	switch req.Method() {
	case methodVersion:
		return reply(ctx, &ServerInfo{Name: serverName, Version: version}, nil)
	case methodCompose:
		var p ComposeParams
		if err := decodeParams(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, delta.Compose(p.A, p.B), nil)
	case methodTransform:
		var p TransformParams
		if err := decodeParams(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, delta.Transform(p.A, p.B, p.Priority), nil)
	case methodTransformPosition:
		var p TransformPositionParams
		if err := decodeParams(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		if p.Index < 0 {
			return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InvalidParams, fmt.Sprintf("negative index %d", p.Index)))
		}
		return reply(ctx, delta.TransformPosition(p.A, p.Index, p.Priority), nil)
	case methodDiff:
		var p DiffParams
		if err := decodeParams(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		opts := []delta.DiffOption{delta.DiffAttributes(p.Attributes)}
		if p.Cursor != nil {
			opts = append(opts, delta.DiffCursor(*p.Cursor))
		}
		res, err := delta.Diff(p.A, p.B, opts...)
		if err != nil {
			return reply(ctx, nil, replyErr(err))
		}
		return reply(ctx, res, nil)
	case methodInvert:
		var p InvertParams
		if err := decodeParams(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		if !p.Base.IsDocument() {
			return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InvalidParams, "base: "+delta.ErrNotADocument.Error()))
		}
		if n, baseLen := p.Change.BaseLength(), p.Base.Length(); n > baseLen {
			err := fmt.Errorf("%w: change covers %d past base length %d", delta.ErrBadOp, n, baseLen)
			return reply(ctx, nil, replyErr(err))
		}
		return reply(ctx, delta.Invert(p.Change, p.Base), nil)
	case methodTextEdits:
		var p TextEditsParams
		if err := decodeParams(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		edits, err := TextEdits(p.Doc, p.Change)
		if err != nil {
			return reply(ctx, nil, replyErr(err))
		}
		if edits == nil {
			edits = []protocol.TextEdit{}
		}
		return reply(ctx, edits, nil)
	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func decodeParams(req jsonrpc2.Request, v any) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
	}
	return nil
}

func replyErr(err error) error {
	if errors.Is(err, delta.ErrNotADocument) || errors.Is(err, delta.ErrBadOp) {
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
	}
	return jsonrpc2.NewError(jsonrpc2.InternalError, err.Error())
}
