package mcp

import (
	"context"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/dragzone/internal/config"
)

const (
	ServerName    = "dragzone"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing drag-zone computation as tools.
type Server struct {
	mcpServer *mcpsdk.Server
	logger    *slog.Logger

	mu     sync.RWMutex
	config *config.Config
}

// NewServer creates a new MCP server over the given configuration.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		config: cfg,
		logger: logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server started", "name", ServerName, "version", ServerVersion)
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// UpdateConfig swaps the configuration used by titlebar tools.
func (s *Server) UpdateConfig(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
}

func (s *Server) currentConfig() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "compute_drag_zones",
		Description: "Compute the draggable regions of a custom window title bar. The strip runs from left_indent to window_width and is height pixels tall; each exclusion (a button, icon or other control) is cut out of it. Returns the remaining rectangles sorted by y then x, plus the same rectangles multiplied by scale when scale is given.",
	}, s.handleComputeDragZones)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_titlebars",
		Description: "List the title bar profiles from dragzone's configuration, including their height, left indent and exclusion rectangles.",
	}, s.handleListTitlebars)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "titlebar_zones",
		Description: "Compute drag zones for a configured title bar profile at a given window width. Uses the default profile when name is omitted.",
	}, s.handleTitlebarZones)
}
