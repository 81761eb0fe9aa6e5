package services

import (
	"fmt"
	"os"
	"strconv"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/lac-hong-legacy/sdr_trainer/middleware"
	"github.com/lac-hong-legacy/sdr_trainer/services/handlers"
	log "github.com/sirupsen/logrus"
)

type HttpService struct {
	appContext.DefaultService

	host string
	port int
	app  *fiber.App
}

const (
	HTTP_SVC = "http_svc"

	DEFAULT_HTTP_HOST = "127.0.0.1"
	DEFAULT_HTTP_PORT = 8000
)

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *appContext.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = DEFAULT_HTTP_PORT
	}

	svc.host = os.Getenv("HTTP_HOST")
	if svc.host == "" {
		svc.host = DEFAULT_HTTP_HOST
	}

	return svc.DefaultService.Configure(ctx)
}

// Start blocks serving the API until Shutdown.
func (svc *HttpService) Start() error {
	svcs := handlers.Services{
		Content:  svc.Service(CONTENT_SVC).(*ContentService),
		Progress: svc.Service(PROGRESS_SVC).(*ProgressService),
		Review:   svc.Service(REVIEW_SVC).(*ReviewService),
		Session:  svc.Service(SESSION_SVC).(*SessionService),
	}

	mw := []fiber.Handler{cors.New()}
	if m, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok && m != nil {
		mw = append(mw, MonitoringMiddleware(m))
	}
	if os.Getenv("LOG_LEVEL") == "TRACE" {
		mw = append(mw, middleware.RequestLogger())
	}

	svc.app = handlers.NewApp(svcs, mw...)

	addr := fmt.Sprintf("%s:%d", svc.host, svc.port)
	log.WithField("addr", addr).Info("HTTP API listening")
	return svc.app.Listen(addr)
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}
