package mcptools

import (
	"context"
	"testing"

	"github.com/enziog/webTools/internal/db"
	"github.com/enziog/webTools/internal/i18n"
	"github.com/enziog/webTools/internal/probe"
	"github.com/mark3labs/mcp-go/mcp"
)

// newCallToolRequest builds a tool call request with arguments.
func newCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected text content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return text.Text
}

func TestServeRequiresConfiguredServer(t *testing.T) {
	tests := []struct {
		name   string
		server *Server
	}{
		{name: "nil server", server: nil},
		{name: "missing mcp server", server: &Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.server.Serve(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewConfiguresServer(t *testing.T) {
	s := New(db.NewRecordStore(&db.MemoryKV{}), nil, "test")
	if s == nil || s.mcpServer == nil {
		t.Fatal("expected configured server")
	}
}

func TestWavelengthHandler(t *testing.T) {
	handler := wavelengthHandler(i18n.Default())

	result, err := handler(context.Background(), newCallToolRequest("wavelength_pitch", map[string]any{
		"frequency": 5,
		"velocity":  3230,
	}))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result == nil || result.IsError {
		t.Fatal("expected success result")
	}

	want, _ := probe.ComputeProbe(5, 3230)
	structured, ok := result.StructuredContent.(WavelengthResult)
	if !ok {
		t.Fatalf("expected WavelengthResult, got %T", result.StructuredContent)
	}
	if structured.Lambda != want.Lambda || structured.Pitch != want.Pitch {
		t.Fatalf("unexpected output: %+v", structured)
	}
	if got := resultText(t, result); got != i18n.Default().ProbeSummary(want.Lambda, want.Pitch) {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestWavelengthHandlerZeroInput(t *testing.T) {
	handler := wavelengthHandler(i18n.Default())

	result, err := handler(context.Background(), newCallToolRequest("wavelength_pitch", map[string]any{
		"frequency": 0,
		"velocity":  3230,
	}))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); got != i18n.Default().ZeroWarning() {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestWavelengthHandlerOutOfRange(t *testing.T) {
	handler := wavelengthHandler(i18n.Default())

	result, err := handler(context.Background(), newCallToolRequest("wavelength_pitch", map[string]any{
		"frequency": 1e-320,
		"velocity":  3230,
	}))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); got != i18n.Default().RangeWarning() {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestWavelengthHandlerRejectsBadArguments(t *testing.T) {
	handler := wavelengthHandler(i18n.Default())

	result, err := handler(context.Background(), newCallToolRequest("wavelength_pitch", map[string]any{
		"frequency": "five",
		"velocity":  3230,
	}))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result")
	}
}

func TestRefractionHandler(t *testing.T) {
	handler := refractionHandler(i18n.Default())

	result, err := handler(context.Background(), newCallToolRequest("refraction_angle", map[string]any{
		"incidence_min":      10,
		"incidence_max":      45.5,
		"velocity_incidence": 2330,
		"velocity_medium":    3230,
	}))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result == nil || result.IsError {
		t.Fatal("expected success result")
	}

	structured, ok := result.StructuredContent.(RefractionResult)
	if !ok {
		t.Fatalf("expected RefractionResult, got %T", result.StructuredContent)
	}
	if structured.RefractionMin != 10 || structured.RefractionMax != 45.5 {
		t.Fatalf("unexpected output: %+v", structured)
	}
	want := "折射角范围为10度～45.5度\n按入射声速2330m/s折射声速3230m/s计算"
	if structured.Summary != want {
		t.Fatalf("expected summary %q, got %q", want, structured.Summary)
	}
}

func TestListRecordsHandler(t *testing.T) {
	rs := db.NewRecordStore(&db.MemoryKV{})
	rs.Save(db.Database{Probes: []db.Record{{Frequency: 5, Velocity: 3230}, {Frequency: 10}}})
	handler := listRecordsHandler(rs)

	result, err := handler(context.Background(), newCallToolRequest("list_records", nil))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	structured, ok := result.StructuredContent.(RecordsResult)
	if !ok {
		t.Fatalf("expected RecordsResult, got %T", result.StructuredContent)
	}
	if structured.Count != 2 || structured.Records[0].Velocity != 3230 {
		t.Fatalf("unexpected output: %+v", structured)
	}
	if rs.Load().Len() != 2 {
		t.Fatal("listing should not modify records")
	}
}

func TestListRecordsHandlerEmpty(t *testing.T) {
	handler := listRecordsHandler(db.NewRecordStore(&db.MemoryKV{}))

	result, err := handler(context.Background(), newCallToolRequest("list_records", nil))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	structured := result.StructuredContent.(RecordsResult)
	if structured.Count != 0 || structured.Records == nil {
		t.Fatalf("expected an empty, non-nil list: %+v", structured)
	}
}

func TestListRecordsHandlerUnconfigured(t *testing.T) {
	result, _ := listRecordsHandler(nil)(context.Background(), newCallToolRequest("list_records", nil))
	if result == nil || !result.IsError {
		t.Fatal("expected error result")
	}
}
