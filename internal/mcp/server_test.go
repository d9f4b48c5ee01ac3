package mcp_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eytandecker/fdmscene/internal/importer"
	internalmcp "github.com/eytandecker/fdmscene/internal/mcp"
	"github.com/eytandecker/fdmscene/internal/state"
	"github.com/eytandecker/fdmscene/internal/units"
)

const sampleFDM = `<fdm_config>
	<metrics>
		<location name="AERORP" unit="IN"><x>43.2</x><y>0</y><z>59.4</z></location>
	</metrics>
	<propulsion>
		<engine file="eng_io320">
			<location name="ENGINE" unit="IN"><x>-19.7</x><y>0</y><z>26.6</z></location>
			<thruster file="prop_75in2f">
				<location name="PROP" unit="IN"><x>-37.7</x><y>0</y><z>26.6</z></location>
			</thruster>
		</engine>
	</propulsion>
</fdm_config>`

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"aircraft/c172.xml": {Data: []byte(sampleFDM)},
		"aircraft/bad.xml": {Data: []byte(`<fdm_config><metrics>
<location name="A" unit="CM"><x>1</x><y>0</y><z>0</z></location>
</metrics></fdm_config>`)},
		"aircraft/c172.txt": {Data: []byte(sampleFDM)},
	}
}

// session connects a fresh server via in-memory transports.
func session(t *testing.T) (*mcpsdk.ClientSession, *state.Manager) {
	t.Helper()
	ctx := context.Background()

	mgr := state.NewManager(units.DefaultSystem(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := internalmcp.NewServer(mgr, internalmcp.Options{
		Files:    testFiles(),
		Defaults: importer.DefaultSettings(),
	})
	st, ct := mcpsdk.NewInMemoryTransports()

	_, err := srv.Connect(ctx, st)
	require.NoError(t, err)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "1.0"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })
	return cs, mgr
}

func callTool(t *testing.T, cs *mcpsdk.ClientSession, name string, args map[string]any) *mcpsdk.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	return res
}

func textJSON(t *testing.T, res *mcpsdk.CallToolResult) map[string]any {
	t.Helper()
	require.Len(t, res.Content, 1)
	text := res.Content[0].(*mcpsdk.TextContent).Text
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &m))
	return m
}

func TestImportFDMSuccess(t *testing.T) {
	cs, mgr := session(t)
	res := callTool(t, cs, "import_fdm", map[string]any{"path": "aircraft/c172.xml"})

	require.False(t, res.IsError)
	m := textJSON(t, res)
	assert.Equal(t, "[c172 (0)]", m["session_id"])
	assert.Equal(t, "JSBSim - [c172 (0)]", m["root_group"])
	assert.Equal(t, float64(3), m["markers"])
	assert.Contains(t, m, "elapsed_ms")

	assert.Len(t, mgr.History(), 1)
}

func TestImportFDMOverrides(t *testing.T) {
	cs, _ := session(t)
	res := callTool(t, cs, "import_fdm", map[string]any{
		"path":               "./aircraft/c172.xml",
		"include_propulsion": false,
	})

	require.False(t, res.IsError)
	m := textJSON(t, res)
	assert.Equal(t, float64(1), m["markers"])
	assert.Equal(t, float64(5), m["groups"])
}

func TestImportFDMErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code string
	}{
		{"unsupported unit", "aircraft/bad.xml", "UNSUPPORTED_UNIT"},
		{"missing file", "aircraft/f16.xml", "FILE_NOT_FOUND"},
		{"not xml", "aircraft/c172.txt", "NOT_XML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, _ := session(t)
			res := callTool(t, cs, "import_fdm", map[string]any{"path": tt.path})

			require.True(t, res.IsError)
			m := textJSON(t, res)
			assert.Equal(t, tt.code, m["code"])
			assert.Equal(t, tt.path, m["path"])
			assert.NotEmpty(t, m["error"])
			assert.NotEmpty(t, m["suggestion"])
		})
	}
}

func TestImportFDMErrorCarriesElement(t *testing.T) {
	cs, _ := session(t)
	res := callTool(t, cs, "import_fdm", map[string]any{"path": "aircraft/bad.xml"})

	require.True(t, res.IsError)
	m := textJSON(t, res)
	assert.Equal(t, "metrics", m["section"])
	assert.Equal(t, "location", m["element"])
	assert.Equal(t, float64(2), m["line"])
}

func TestGetScene(t *testing.T) {
	cs, _ := session(t)
	callTool(t, cs, "import_fdm", map[string]any{"path": "aircraft/c172.xml"})

	res := callTool(t, cs, "get_scene", nil)
	require.False(t, res.IsError)
	m := textJSON(t, res)
	groups := m["groups"].([]any)
	require.Len(t, groups, 1)
	assert.Equal(t, "JSBSim - [c172 (0)]", groups[0].(map[string]any)["name"])

	res = callTool(t, cs, "get_scene", map[string]any{"format": "yaml"})
	require.False(t, res.IsError)
	text := res.Content[0].(*mcpsdk.TextContent).Text
	assert.Contains(t, text, "THRUSTER - prop_75in2f - [c172 (0)]")
	assert.Contains(t, text, "shape: CONE")

	res = callTool(t, cs, "get_scene", map[string]any{"format": "xml"})
	assert.True(t, res.IsError)
}

func TestClearScene(t *testing.T) {
	cs, mgr := session(t)
	callTool(t, cs, "import_fdm", map[string]any{"path": "aircraft/c172.xml"})

	res := callTool(t, cs, "clear_scene", nil)
	require.False(t, res.IsError)
	assert.Empty(t, mgr.Snapshot().Groups)
	assert.Empty(t, mgr.History())
}
