package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grupo-main/mainsite/config"
	"github.com/grupo-main/mainsite/internal/forms"
	"github.com/grupo-main/mainsite/internal/integrations/directory"
	"github.com/grupo-main/mainsite/internal/integrations/directory/fake"
	"github.com/grupo-main/mainsite/internal/integrations/directory/knackhttp"
	"github.com/grupo-main/mainsite/internal/services/shipments"
	"github.com/grupo-main/mainsite/internal/stages"
	"github.com/grupo-main/mainsite/internal/web"
)

type siteAPIApp struct {
	ctx    context.Context
	cancel context.CancelFunc
	opts   siteAPIOpts
	svc    *shipments.Service
	sub    forms.Submitter
	webSrv *web.Server
}

func mustBootstrapSiteAPI() *siteAPIApp {
	cfgPath := os.Getenv("configPath")
	if cfgPath == "" {
		panic("configPath env var is required")
	}
	swaggerPath := os.Getenv("swaggerPath")
	if swaggerPath == "" {
		swaggerPath = "docs/swagger.json"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	httpAddr := cfg.HTTP.Addr
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	minLen := cfg.Tracking.MinCodeLength
	if minLen <= 0 {
		minLen = shipments.DefaultMinCodeLength
	}
	stageSet := stages.SetByName(cfg.Tracking.StageSet)

	var dir directory.Client
	switch cfg.Directory.Mode {
	case "fake":
		dir = fake.New()
	default:
		dir = knackhttp.New(
			cfg.Directory.BaseURL,
			cfg.Directory.AppID,
			cfg.Directory.APIKey,
			cfg.Directory.ObjectKey,
			time.Duration(cfg.Directory.TimeoutSeconds)*time.Second,
		)
	}

	svc := shipments.New(dir, minLen)

	menusDir := cfg.Site.MenusDir
	if menusDir == "" {
		menusDir = "public/menus"
	}

	webSrv, err := web.New(web.Options{
		BaseURL:       cfg.Site.BaseURL,
		MapsAPIKey:    cfg.Site.MapsAPIKey,
		MenusDir:      menusDir,
		MinCodeLength: minLen,
		StageSet:      stageSet,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to build web server: %v", err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &siteAPIApp{
		ctx:    ctx,
		cancel: cancel,
		opts: siteAPIOpts{
			httpAddr:    httpAddr,
			swaggerPath: swaggerPath,
		},
		svc:    svc,
		sub:    forms.LogSubmitter{},
		webSrv: webSrv,
	}
}

func (a *siteAPIApp) Close() {
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *siteAPIApp) Run() error {
	return runSiteAPI(a.ctx, a.opts, a.svc, a.sub, a.webSrv)
}
