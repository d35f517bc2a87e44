package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sourcegraph/jsonrpc2"
	"src.hostline.sh/pkg/hostedit"
	"src.hostline.sh/pkg/linebuf"
	"src.hostline.sh/pkg/shell"
	"src.hostline.sh/pkg/store/storedefs"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
	errNoStore = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInternalError, Message: "no clip history"}
)

type server struct {
	rt *shell.Runtime
}

func newServer(rt *shell.Runtime) *server {
	return &server{rt}
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"hostline/invoke":       s.invoke,
		"hostline/bindings":     s.bindings,
		"hostline/wordSpan":     s.wordSpan,
		"hostline/setPasteCRLF": s.setPasteCRLF,
		"hostline/clips":        s.clips,
		"hostline/delClip":      s.delClip,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Line is the state of a line being edited. Offsets are in bytes.
type Line struct {
	Text   string `json:"text"`
	Cursor int    `json:"cursor"`
}

// InvokeParams are the parameters of hostline/invoke. Action is either the
// name of an action or its numeric ID.
type InvokeParams struct {
	Action json.RawMessage `json:"action"`
	Line
}

// InvokeResult is the result of hostline/invoke.
type InvokeResult struct {
	Line
	// One of "", "redraw" and "done".
	Signal string `json:"signal"`
	// Text the action wrote to the terminal.
	Output string `json:"output"`
}

// Handler implementations. These are all called synchronously.

func (s *server) invoke(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params InvokeParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	id, err := parseAction(params.Action)
	if err != nil {
		return nil, invalidParams(err)
	}

	buf := linebuf.New(params.Text, params.Cursor)
	var output strings.Builder
	var result hostedit.Result
	err = s.rt.Backend.OnInput(id, &result, hostedit.Context{Buffer: buf, Terminal: &output})
	if err != nil {
		return nil, invalidParams(err)
	}
	logger.Printf("invoked %v, signal %q", id, result.Signal())
	return InvokeResult{
		Line:   Line{buf.Text(), buf.Cursor()},
		Signal: result.Signal().String(),
		Output: output.String(),
	}, nil
}

func parseAction(raw json.RawMessage) (hostedit.ActionID, error) {
	var name string
	if json.Unmarshal(raw, &name) == nil {
		return hostedit.ParseActionID(name)
	}
	var n uint8
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return hostedit.ActionID(n), nil
}

// Binding is an element of the result of hostline/bindings.
type Binding struct {
	Chord  string `json:"chord"`
	Action string `json:"action"`
}

func (s *server) bindings(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	var bindings []Binding
	for _, b := range hostedit.Bindings() {
		bindings = append(bindings, Binding{b.Chord, b.Action.String()})
	}
	return bindings, nil
}

// WordSpan is the result of hostline/wordSpan.
type WordSpan struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

func (s *server) wordSpan(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params Line
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	span := hostedit.WordBounds(params.Text, params.Cursor)
	return WordSpan{span.Left, span.Right}, nil
}

// PasteCRLFParams are the parameters and the result of hostline/setPasteCRLF.
type PasteCRLFParams struct {
	Policy string `json:"policy"`
}

func (s *server) setPasteCRLF(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params PasteCRLFParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	policy, err := hostedit.ParsePasteCRLF(params.Policy)
	if err != nil {
		return nil, invalidParams(err)
	}
	s.rt.Settings.SetPasteCRLF(policy)
	return PasteCRLFParams{policy.String()}, nil
}

// ClipsParams are the parameters of hostline/clips. Clips with sequence
// numbers in [From, Upto) are returned; Upto of 0 means no upper bound.
type ClipsParams struct {
	From int `json:"from"`
	Upto int `json:"upto"`
}

// Clip is an element of the result of hostline/clips.
type Clip struct {
	Seq  int    `json:"seq"`
	Text string `json:"text"`
}

func (s *server) clips(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params ClipsParams
	if len(rawParams) > 0 && json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	if s.rt.Store == nil {
		return nil, errNoStore
	}
	if params.From < 0 {
		params.From = 0
	}
	upto := params.Upto
	if upto == 0 {
		next, err := s.rt.Store.NextClipSeq()
		if err != nil {
			return nil, err
		}
		upto = next
	}
	clips, err := s.rt.Store.Clips(params.From, upto)
	if err != nil {
		return nil, err
	}
	result := make([]Clip, len(clips))
	for i, c := range clips {
		result[i] = Clip{c.Seq, c.Text}
	}
	return result, nil
}

// DelClipParams are the parameters of hostline/delClip.
type DelClipParams struct {
	Seq int `json:"seq"`
}

func (s *server) delClip(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params DelClipParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	if s.rt.Store == nil {
		return nil, errNoStore
	}
	if _, err := s.rt.Store.Clip(params.Seq); err != nil {
		if errors.Is(err, storedefs.ErrNoClip) {
			return nil, invalidParams(err)
		}
		return nil, err
	}
	return nil, s.rt.Store.DelClip(params.Seq)
}

func invalidParams(err error) error {
	return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "invalid params: " + err.Error()}
}
