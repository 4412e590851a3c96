// Package mcptools serves the probe calculators and saved records over MCP.
package mcptools

import (
	"context"
	"errors"
	"fmt"

	"github.com/enziog/webTools/internal/db"
	"github.com/enziog/webTools/internal/i18n"
	"github.com/enziog/webTools/internal/probe"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// serverName identifies this MCP server to clients.
const serverName = "webtools"

// Records is the read-only view of the saved records.
type Records interface {
	Load() db.Database
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *server.MCPServer
}

// WavelengthInput is the wavelength_pitch tool input.
type WavelengthInput struct {
	Frequency float64 `json:"frequency"`
	Velocity  float64 `json:"velocity"`
}

// WavelengthResult is the wavelength_pitch tool output.
type WavelengthResult struct {
	Frequency float64 `json:"frequency"`
	Velocity  float64 `json:"velocity"`
	Lambda    float64 `json:"lambda"`
	Pitch     float64 `json:"pitch"`
	Summary   string  `json:"summary"`
}

// RefractionInput is the refraction_angle tool input.
type RefractionInput struct {
	IncidenceMin      float64 `json:"incidence_min"`
	IncidenceMax      float64 `json:"incidence_max"`
	VelocityIncidence float64 `json:"velocity_incidence"`
	VelocityMedium    float64 `json:"velocity_medium"`
	VelocitySteel     float64 `json:"velocity_steel"`
}

// RefractionResult is the refraction_angle tool output.
type RefractionResult struct {
	RefractionMin float64 `json:"refraction_min"`
	RefractionMax float64 `json:"refraction_max"`
	Summary       string  `json:"summary"`
}

// RecordsResult is the list_records tool output.
type RecordsResult struct {
	Count   int         `json:"count"`
	Records []db.Record `json:"records"`
}

// New creates a configured MCP server. It never writes to records.
func New(records Records, text *i18n.Messages, version string) *Server {
	if text == nil {
		text = i18n.Default()
	}
	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
	)

	mcpServer.AddTool(wavelengthTool(), wavelengthHandler(text))
	mcpServer.AddTool(refractionTool(), refractionHandler(text))
	mcpServer.AddTool(listRecordsTool(), listRecordsHandler(records))

	return &Server{mcpServer: mcpServer}
}

// Serve starts the MCP server on stdio.
func (s *Server) Serve() error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func wavelengthTool() mcp.Tool {
	return mcp.NewTool(
		"wavelength_pitch",
		mcp.WithDescription("Computes the ultrasonic wavelength and minimum array pitch from probe frequency and sound velocity"),
		mcp.WithNumber("frequency",
			mcp.Required(),
			mcp.Description("Probe frequency in MHz"),
		),
		mcp.WithNumber("velocity",
			mcp.Required(),
			mcp.Description("Sound velocity in the material in m/s"),
		),
		mcp.WithOutputSchema[WavelengthResult](),
	)
}

func wavelengthHandler(text *i18n.Messages) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var input WavelengthInput
		if err := request.BindArguments(&input); err != nil {
			return mcp.NewToolResultErrorFromErr("invalid wavelength arguments", err), nil
		}

		res, err := probe.ComputeProbe(input.Frequency, input.Velocity)
		if errors.Is(err, probe.ErrZeroInput) {
			return mcp.NewToolResultError(text.ZeroWarning()), nil
		}
		if errors.Is(err, probe.ErrOutOfRange) {
			return mcp.NewToolResultError(text.RangeWarning()), nil
		}
		if err != nil {
			return mcp.NewToolResultErrorFromErr("wavelength calculation failed", err), nil
		}

		result := WavelengthResult{
			Frequency: input.Frequency,
			Velocity:  input.Velocity,
			Lambda:    res.Lambda,
			Pitch:     res.Pitch,
			Summary:   text.ProbeSummary(res.Lambda, res.Pitch),
		}
		return mcp.NewToolResultStructured(result, result.Summary), nil
	}
}

func refractionTool() mcp.Tool {
	return mcp.NewTool(
		"refraction_angle",
		mcp.WithDescription("Estimates the refraction angle range of a phased-array wedge"),
		mcp.WithNumber("incidence_min",
			mcp.Required(),
			mcp.Description("Smallest incidence angle in degrees"),
		),
		mcp.WithNumber("incidence_max",
			mcp.Required(),
			mcp.Description("Largest incidence angle in degrees"),
		),
		mcp.WithNumber("velocity_incidence",
			mcp.Required(),
			mcp.Description("Sound velocity on the incidence side in m/s"),
		),
		mcp.WithNumber("velocity_medium",
			mcp.Required(),
			mcp.Description("Sound velocity on the refraction side in m/s"),
		),
		mcp.WithNumber("velocity_steel",
			mcp.Description("Sound velocity in steel in m/s"),
			mcp.DefaultNumber(0),
		),
		mcp.WithOutputSchema[RefractionResult](),
	)
}

func refractionHandler(text *i18n.Messages) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var input RefractionInput
		if err := request.BindArguments(&input); err != nil {
			return mcp.NewToolResultErrorFromErr("invalid refraction arguments", err), nil
		}

		b := probe.ComputeRefraction(probe.BeamAngle{
			IncidenceMin:      input.IncidenceMin,
			IncidenceMax:      input.IncidenceMax,
			VelocityIncidence: input.VelocityIncidence,
			VelocityMedium:    input.VelocityMedium,
			VelocitySteel:     input.VelocitySteel,
		})
		result := RefractionResult{
			RefractionMin: b.RefractionMin,
			RefractionMax: b.RefractionMax,
			Summary:       text.RefractionSummary(b),
		}
		return mcp.NewToolResultStructured(result, result.Summary), nil
	}
}

func listRecordsTool() mcp.Tool {
	return mcp.NewTool(
		"list_records",
		mcp.WithDescription("Lists the saved wavelength/pitch records in display order"),
		mcp.WithOutputSchema[RecordsResult](),
	)
}

func listRecordsHandler(records Records) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if records == nil {
			return mcp.NewToolResultError("record store is not configured"), nil
		}
		d := records.Load()
		result := RecordsResult{Count: d.Len(), Records: d.Probes}
		return mcp.NewToolResultStructured(result, fmt.Sprintf("%d records", result.Count)), nil
	}
}
