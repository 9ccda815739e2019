package mcpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fdalabel-api/internal/openfda"
	"fdalabel-api/internal/pipeline"
	"fdalabel-api/pkg/logger_i"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server exposes the label tools over the Model Context Protocol, the second
// transport next to the REST surface. Both share the same fetcher and
// pipeline service.
type Server struct {
	fetcher  openfda.Fetcher
	pipeline pipeline.Service
	server   *mcp.Server
	logger   *logger_i.Logger
}

func NewServer(fetcher openfda.Fetcher, pipelineService pipeline.Service) *Server {
	impl := &mcp.Implementation{
		Name:    "fdalabel",
		Version: Version,
	}

	s := &Server{
		fetcher:  fetcher,
		pipeline: pipelineService,
		server:   mcp.NewServer(impl, nil),
		logger:   logger_i.NewLogger("MCP Server"),
	}

	s.registerTools()
	return s
}

// Run serves MCP over stdio. Blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("MCP server listening on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr. Blocks until the context
// is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		if err := httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Error("MCP server shutdown error", "error", err)
		}
	}()

	s.logger.Info("MCP server listening on HTTP", "address", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
