package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/grupo-main/mainsite/internal/api/formsapi"
	"github.com/grupo-main/mainsite/internal/api/trackapi"
	"github.com/grupo-main/mainsite/internal/forms"
	"github.com/grupo-main/mainsite/internal/services/shipments"
	"github.com/grupo-main/mainsite/internal/web"
)

type siteAPIOpts struct {
	httpAddr    string
	swaggerPath string

	onListen func(addr string)
}

func runSiteAPI(ctx context.Context, opts siteAPIOpts, svc *shipments.Service, sub forms.Submitter, webSrv *web.Server) error {
	if opts.swaggerPath == "" {
		return fmt.Errorf("swagger path is required")
	}
	if _, err := os.Stat(opts.swaggerPath); os.IsNotExist(err) {
		return fmt.Errorf("swagger file not found: %s", opts.swaggerPath)
	}

	lis, err := net.Listen("tcp", opts.httpAddr)
	if err != nil {
		return err
	}

	if opts.onListen != nil {
		opts.onListen(lis.Addr().String())
	}

	r := chi.NewRouter()

	r.Get("/swagger.json", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, opts.swaggerPath)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger.json"),
	))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	trackapi.New(svc).Routes(r)
	formsapi.New(sub).Routes(r)
	webSrv.Routes(r)

	srv := &http.Server{Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		_ = lis.Close()
	}()

	slog.Info("HTTP server listening", "addr", lis.Addr().String())
	if err := srv.Serve(lis); err != nil && err != http.ErrServerClosed {
		return err
	}
	return ctx.Err()
}
