package main

import (
	"fmt"
	"time"

	"github.com/klogio/klog"
	"github.com/klogio/klog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure logger
	logger := klog.NewLogger()
	if err := logger.Init("/var/log/fasthttp", 100000); err != nil {
		fmt.Println("logger running console-only:", err)
	}
	defer logger.Shutdown()

	// Create fasthttp adapter with level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(klog.LevelInfo),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:         "klog-example",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Error("server stopped:", err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}
