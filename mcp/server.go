// Package mcp implements a Model Context Protocol (MCP) server that exposes
// pdftree generation and inspection as tools for AI assistants.
//
// The server speaks JSON-RPC 2.0 over newline-delimited stdio and
// implements the tools and resources parts of MCP (2024-11-05).
//
// # Usage with an MCP client
//
//	{
//	  "mcpServers": {
//	    "pdftree": {
//	      "command": "pdftree-mcp"
//	    }
//	  }
//	}
package mcp

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// ServerName is reported in the initialize handshake.
const ServerName = "pdftree-mcp"

// ProtocolVersion is the MCP revision the server implements.
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// Server is an MCP server that handles JSON-RPC 2.0 messages.
type Server struct {
	tools     map[string]Tool
	resources map[string]Resource
	input     io.Reader
	output    io.Writer
	logger    *log.Logger
	version   string
	mu        sync.Mutex
}

// Tool is an MCP tool the client can call.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Handler     ToolHandler    `json:"-"`
}

// ToolHandler executes a tool with the decoded arguments.
type ToolHandler func(args map[string]any) (ToolResult, error)

// ToolResult is the result of a tool call.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is a piece of content in a tool result.
type ContentBlock struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"` // base64
}

func textResult(text string) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}

// Resource is an MCP resource addressed by URI.
type Resource struct {
	URI         string          `json:"uri"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	MIMEType    string          `json:"mimeType,omitempty"`
	Handler     ResourceHandler `json:"-"`
}

// ResourceHandler reads a resource. uri is the full requested URI,
// including its query.
type ResourceHandler func(uri string) ([]ResourceContent, error)

// ResourceContent is the content of a read resource.
type ResourceContent struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}

type request struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

// notification reports whether the sender expects no reply.
func (r request) notification() bool { return r.ID == nil }

type response struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id"`
	Result  any              `json:"result,omitempty"`
	Error   *rpcError        `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *rpcError) Error() string { return fmt.Sprintf("%s (%d): %v", e.Message, e.Code, e.Data) }

func invalidParams(msg string, data any) *rpcError {
	return &rpcError{Code: codeInvalidParams, Message: msg, Data: data}
}

// method answers one request. A returned *rpcError is sent as is; any other
// error becomes an internal error.
type method func(s *Server, params json.RawMessage) (any, error)

var methods = map[string]method{
	"initialize":     (*Server).initialize,
	"ping":           func(*Server, json.RawMessage) (any, error) { return struct{}{}, nil },
	"tools/list":     (*Server).listTools,
	"tools/call":     (*Server).callTool,
	"resources/list": (*Server).listResources,
	"resources/read": (*Server).readResource,
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) ServerOption {
	return func(s *Server) {
		s.input = in
		s.output = out
	}
}

// WithLogger sets the logger for request tracing. Logs must not go to the
// output stream, which carries protocol messages only.
func WithLogger(l *log.Logger) ServerOption {
	return func(s *Server) {
		s.logger = l
	}
}

// WithVersion sets the version reported in serverInfo.
func WithVersion(v string) ServerOption {
	return func(s *Server) {
		s.version = v
	}
}

// NewServer returns a server reading stdin and writing stdout, with no
// tools or resources registered.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		tools:     make(map[string]Tool),
		resources: make(map[string]Resource),
		input:     os.Stdin,
		output:    os.Stdout,
		version:   "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// AddTool registers t, replacing a tool of the same name.
func (s *Server) AddTool(t Tool) {
	s.tools[t.Name] = t
}

// AddResource registers r, replacing a resource with the same URI.
func (s *Server) AddResource(r Resource) {
	s.resources[r.URI] = r
}

// Run processes messages until the input ends. Notifications are never
// answered.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.input)
	// Trees with many elements make for long lines.
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("unparseable message", "err", err)
			s.reply(nil, nil, &rpcError{Code: codeParseError, Message: "Parse error", Data: err.Error()})
			continue
		}
		s.serve(req)
	}
	return scanner.Err()
}

func (s *Server) serve(req request) {
	m, ok := methods[req.Method]
	if req.notification() {
		s.logger.Debug("notification", "method", req.Method, "known", ok)
		return
	}
	s.logger.Debug("request", "method", req.Method)
	if !ok {
		s.reply(req.ID, nil, &rpcError{Code: codeMethodNotFound, Message: "Method not found", Data: req.Method})
		return
	}
	result, err := m(s, req.Params)
	s.reply(req.ID, result, err)
}

func (s *Server) initialize(json.RawMessage) (any, error) {
	return map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    ServerName,
			"version": s.version,
		},
	}, nil
}

func (s *Server) listTools(json.RawMessage) (any, error) {
	tools := make([]Tool, 0, len(s.tools))
	for _, name := range slices.Sorted(maps.Keys(s.tools)) {
		tools = append(tools, s.tools[name])
	}
	return map[string]any{"tools": tools}, nil
}

// callTool runs a tool. Handler failures are results with IsError set, so
// the client can show them; only protocol problems are JSON-RPC errors.
func (s *Server) callTool(raw json.RawMessage) (any, error) {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams("Invalid params", err.Error())
	}
	tool, ok := s.tools[params.Name]
	if !ok {
		return nil, invalidParams("Unknown tool", params.Name)
	}
	if params.Arguments == nil {
		params.Arguments = map[string]any{}
	}
	result, err := tool.Handler(params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "err", err)
		result = ToolResult{Content: []ContentBlock{{Type: "text", Text: "Error: " + err.Error()}}, IsError: true}
	}
	return result, nil
}

func (s *Server) listResources(json.RawMessage) (any, error) {
	resources := make([]Resource, 0, len(s.resources))
	for _, uri := range slices.Sorted(maps.Keys(s.resources)) {
		resources = append(resources, s.resources[uri])
	}
	return map[string]any{"resources": resources}, nil
}

func (s *Server) readResource(raw json.RawMessage) (any, error) {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams("Invalid params", err.Error())
	}
	r, ok := s.resources[baseURI(params.URI)]
	if !ok {
		return nil, invalidParams("Unknown resource", params.URI)
	}
	contents, err := r.Handler(params.URI)
	if err != nil {
		return nil, &rpcError{Code: codeInternalError, Message: "Resource error", Data: err.Error()}
	}
	return map[string]any{"contents": contents}, nil
}

// reply writes one response line. Writes are serialized so handlers may
// reply from several goroutines.
func (s *Server) reply(id *json.RawMessage, result any, err error) {
	resp := response{JSONRPC: "2.0", ID: id, Result: result}
	if err != nil {
		var rerr *rpcError
		if !errors.As(err, &rerr) {
			rerr = &rpcError{Code: codeInternalError, Message: "Internal error", Data: err.Error()}
		}
		resp.Result, resp.Error = nil, rerr
	}
	data, merr := json.Marshal(resp)
	if merr != nil {
		s.logger.Error("encoding response", "err", merr)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, werr := s.output.Write(append(data, '\n')); werr != nil {
		s.logger.Error("writing response", "err", werr)
	}
}
