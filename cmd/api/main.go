// @title           FDA Drug Label API
// @version         1.0
// @description     Exposes FDA drug-label data to tool callers: label search, section lookup and a retrieval-augmented safety summarizer.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fdalabel-api/internal/config"
	"fdalabel-api/internal/data/cacheStore"
	"fdalabel-api/internal/handlers"
	"fdalabel-api/internal/mcpserver"
	"fdalabel-api/internal/openfda"
	"fdalabel-api/internal/pipeline"
	"fdalabel-api/internal/server"
	"fdalabel-api/pkg/logger_i"
)

var (
	listenAddr string
	mcpMode    string
	mcpAddr    string
)

func main() {

	//optional .env with FDA_API_KEY / REDIS_ADDR / AUTH_TOKEN
	_ = godotenv.Load()

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.StringVar(&mcpMode, "mcp-transport", "http", "MCP transport: stdio, http or off")
	flag.StringVar(&mcpAddr, "mcp-addr", ":3001", "MCP streamable HTTP listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//upstream response cache - redis when reachable, in-memory otherwise
	var cache cacheStore.ResponseCache
	if redisCache := cacheStore.GetRedisCache(serviceContext, config.RedisResponseCache); redisCache != nil {
		cache = redisCache
	} else {
		logger.Warn("Redis is offline, falling back to the in-memory response cache")
		cache = cacheStore.InitInMemoryCache()
	}

	fdaClient := openfda.NewClient(cache)
	pipelineService := pipeline.NewService(fdaClient)

	handlers.InitHandlers(fdaClient, pipelineService)

	//MCP transport next to the REST surface; stdio mode expects logs on
	//stderr, so prefer http when both transports run in one process
	if mcpMode != "off" {
		mcpServer := mcpserver.NewServer(fdaClient, pipelineService)
		go func() {
			var err error
			if mcpMode == "stdio" {
				err = mcpServer.Run(serviceContext)
			} else {
				err = mcpServer.RunHTTP(serviceContext, mcpAddr)
			}
			if err != nil {
				logger.Error("MCP server stopped", "error", err)
			}
		}()
	}

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
