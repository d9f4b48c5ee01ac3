package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"path"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eytandecker/fdmscene/internal/fdm"
	"github.com/eytandecker/fdmscene/internal/importer"
	"github.com/eytandecker/fdmscene/internal/naming"
	"github.com/eytandecker/fdmscene/internal/scene"
	"github.com/eytandecker/fdmscene/internal/state"
	"github.com/eytandecker/fdmscene/internal/units"
	"github.com/eytandecker/fdmscene/pkg/types"
)

// SceneStore is the subset of state.Manager used by the MCP server.
type SceneStore interface {
	Import(fsys fs.FS, name string, s importer.Settings) (*types.ImportSummary, error)
	Snapshot() scene.Snapshot
	Reset()
}

// Options configures a Server.
type Options struct {
	Name     string
	Version  string
	Files    fs.FS
	Defaults importer.Settings
}

// Server wraps the MCP SDK server and exposes the scene as tools.
type Server struct {
	sdk      *mcpsdk.Server
	store    SceneStore
	files    fs.FS
	defaults importer.Settings
}

// NewServer creates a Server and registers the import_fdm, get_scene and
// clear_scene tools. Import paths are resolved inside opts.Files.
func NewServer(store SceneStore, opts Options) *Server {
	if opts.Name == "" {
		opts.Name = "fdmscene"
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	s := &Server{
		sdk: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    opts.Name,
			Version: opts.Version,
		}, nil),
		store:    store,
		files:    opts.Files,
		defaults: opts.Defaults,
	}

	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "import_fdm",
		Description: "Imports a JSBSim flight dynamics model XML file and places its reference points as markers in the scene.",
	}, s.handleImport)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "get_scene",
		Description: "Returns the scene's groups and markers with their world positions, as json (default) or yaml.",
	}, s.handleGetScene)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "clear_scene",
		Description: "Removes every imported group and marker from the scene.",
	}, s.handleClearScene)
	return s
}

// Run starts the MCP server over stdio and blocks until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.sdk.Run(ctx, &mcpsdk.StdioTransport{})
}

// Connect connects the server to an existing transport (used in tests).
func (s *Server) Connect(ctx context.Context, t mcpsdk.Transport) (*mcpsdk.ServerSession, error) {
	return s.sdk.Connect(ctx, t, nil)
}

// importInput holds arguments for the import_fdm tool. Unset options keep
// the server defaults.
type importInput struct {
	Path                     string   `json:"path"`
	PlotScale                *float64 `json:"plot_scale,omitempty"`
	PlotNames                *bool    `json:"plot_names,omitempty"`
	PlotAxes                 *bool    `json:"plot_axes,omitempty"`
	ThrustersAutoParent      *bool    `json:"thrs_auto_parent,omitempty"`
	IncludeMetrics           *bool    `json:"include_metrics,omitempty"`
	IncludeMassBalance       *bool    `json:"include_mass_balance,omitempty"`
	IncludeGroundReactions   *bool    `json:"include_ground_reactions,omitempty"`
	IncludeExternalReactions *bool    `json:"include_external_reactions,omitempty"`
	IncludePropulsion        *bool    `json:"include_propulsion,omitempty"`
	ValidateSchema           *bool    `json:"validate_schema,omitempty"`
}

func (in importInput) settings(base importer.Settings) importer.Settings {
	s := base
	if in.PlotScale != nil {
		s.PlotScale = *in.PlotScale
	}
	for _, o := range []struct {
		src *bool
		dst *bool
	}{
		{in.PlotNames, &s.PlotNames},
		{in.PlotAxes, &s.PlotAxes},
		{in.ThrustersAutoParent, &s.ThrustersAutoParent},
		{in.IncludeMetrics, &s.IncludeMetrics},
		{in.IncludeMassBalance, &s.IncludeMassBalance},
		{in.IncludeGroundReactions, &s.IncludeGroundReactions},
		{in.IncludeExternalReactions, &s.IncludeExternalReactions},
		{in.IncludePropulsion, &s.IncludePropulsion},
		{in.ValidateSchema, &s.ValidateSchema},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	return s
}

type getSceneInput struct {
	Format string `json:"format,omitempty"`
}

type clearSceneInput struct{}

// ImportErrorResponse is returned when an import fails.
type ImportErrorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	Path       string `json:"path,omitempty"`
	Section    string `json:"section,omitempty"`
	Element    string `json:"element,omitempty"`
	Line       int    `json:"line,omitempty"`
	Suggestion string `json:"suggestion"`
	Timestamp  string `json:"timestamp"`
}

func (s *Server) handleImport(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input importInput,
) (*mcpsdk.CallToolResult, any, error) {
	name := path.Clean(input.Path)
	sum, err := s.store.Import(s.files, name, input.settings(s.defaults))
	if err != nil {
		return s.errorResult(err), nil, nil
	}
	return jsonResult(sum)
}

func (s *Server) handleGetScene(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input getSceneInput,
) (*mcpsdk.CallToolResult, any, error) {
	snap := s.store.Snapshot()
	var (
		data []byte
		err  error
	)
	switch input.Format {
	case "", "json":
		data, err = snap.JSON()
	case "yaml":
		data, err = snap.YAML()
	default:
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: `unknown format "` + input.Format + `", use json or yaml`}},
			IsError: true,
		}, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil, nil
}

func (s *Server) handleClearScene(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input clearSceneInput,
) (*mcpsdk.CallToolResult, any, error) {
	s.store.Reset()
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: `{"cleared":true}`}},
	}, nil, nil
}

func jsonResult(v any) (*mcpsdk.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil, nil
}

func (s *Server) errorResult(err error) *mcpsdk.CallToolResult {
	resp := ImportErrorResponse{
		Error:     err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	var ie *types.ImportError
	if errors.As(err, &ie) {
		resp.Path = ie.Path
		resp.Section = ie.Section
		resp.Element = ie.Element
		resp.Line = ie.Line
	}

	switch {
	case errors.Is(err, state.ErrNotXML):
		resp.Code = "NOT_XML"
		resp.Suggestion = "Pass the path of a .xml flight dynamics model."
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrInvalid):
		resp.Code = "FILE_NOT_FOUND"
		resp.Suggestion = "Use a path relative to the server's data directory."
	case errors.Is(err, units.ErrUnsupportedUnit):
		resp.Code = "UNSUPPORTED_UNIT"
		resp.Suggestion = "Locations must use IN, FT or M."
	case errors.Is(err, fdm.ErrMalformedLocation):
		resp.Code = "MALFORMED_LOCATION"
		resp.Suggestion = "Every location needs name and unit attributes and numeric x, y, z."
	case errors.Is(err, fdm.ErrMalformedElement):
		resp.Code = "MALFORMED_ELEMENT"
		resp.Suggestion = "Check the element named in the error for a missing child."
	case errors.Is(err, fdm.ErrSchemaInvalid):
		resp.Code = "SCHEMA_INVALID"
		resp.Suggestion = "Fix the document or import with validate_schema=false."
	case errors.Is(err, fdm.ErrParse):
		resp.Code = "PARSE_ERROR"
		resp.Suggestion = "The file is not well-formed XML."
	case errors.Is(err, naming.ErrNamespaceExhausted):
		resp.Code = "NAMESPACE_EXHAUSTED"
		resp.Suggestion = "Clear the scene or rename the file."
	default:
		resp.Code = "UNKNOWN_ERROR"
		resp.Suggestion = "Check application logs for details."
	}

	data, _ := json.Marshal(resp)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
		IsError: true,
	}
}
