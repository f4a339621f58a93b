package server

import (
	"fmt"

	handlers "github.com/NeonArcade/PlayBill/pkg/handlers/http"
	handlersWS "github.com/NeonArcade/PlayBill/pkg/handlers/websocket"
	"github.com/NeonArcade/PlayBill/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/sirupsen/logrus"

	"github.com/NeonArcade/PlayBill/pkg/config"
)

type (
	AdminServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		SessionFeedHandler  *handlersWS.SessionFeedHandler
		Config              *config.Config
		Logger              *logrus.Logger
	}
	AdminServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
		sessionFeedHandler  *handlersWS.SessionFeedHandler
	}
)

func NewAdminServer(di AdminServerDI) *AdminServer {
	return &AdminServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
		sessionFeedHandler:  di.SessionFeedHandler,
	}
}

func (s *AdminServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf(":%d", s.Config.Server.AdminPort)
	s.Logger.WithField("addr", addr).Info("starting admin server")
	return s.Router.Listen(addr)
}

func (s *AdminServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.PanicRecoverMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	baseRouter := s.Router.Group("")
	s.addRoutes(baseRouter)
	s.addWebsocketRoutes()
}

func (s *AdminServer) addRoutes(router fiber.Router) {
	v1 := router.Group("/api/v1")
	{
		v1.Get("/version", s.handlerTransport.GetVersionHandler.Handle)

		sessions := v1.Group("/sessions")
		{
			sessions.Post("", s.handlerTransport.StartSessionHandler.Handle)
			sessions.Get("", s.handlerTransport.ListSessionsHandler.Handle)
			sessions.Get("/:session_id", s.handlerTransport.GetSessionHandler.Handle)
			sessions.Post("/:session_id/pause", s.handlerTransport.PauseSessionHandler.Handle)
			sessions.Post("/:session_id/resume", s.handlerTransport.ResumeSessionHandler.Handle)
			sessions.Post("/:session_id/add-time", s.handlerTransport.AddTimeHandler.Handle)
			sessions.Post("/:session_id/confirm-payment", s.handlerTransport.ConfirmPaymentHandler.Handle)
			sessions.Post("/:session_id/stop", s.handlerTransport.StopSessionHandler.Handle)
		}

		devices := v1.Group("/devices")
		{
			devices.Post("", s.handlerTransport.CreateDeviceHandler.Handle)
			devices.Get("", s.handlerTransport.ListDevicesHandler.Handle)
			devices.Get("/:device_id", s.handlerTransport.GetDeviceHandler.Handle)
			devices.Get("/:device_id/session", s.handlerTransport.GetDeviceSessionHandler.Handle)
			devices.Put("/:device_id", s.handlerTransport.UpdateDeviceHandler.Handle)
			devices.Delete("/:device_id", s.handlerTransport.DeleteDeviceHandler.Handle)
		}

		packages := v1.Group("/packages")
		{
			packages.Post("", s.handlerTransport.CreatePackageHandler.Handle)
			packages.Get("", s.handlerTransport.ListPackagesHandler.Handle)
			packages.Get("/:package_id", s.handlerTransport.GetPackageHandler.Handle)
			packages.Put("/:package_id", s.handlerTransport.UpdatePackageHandler.Handle)
			packages.Delete("/:package_id", s.handlerTransport.DeletePackageHandler.Handle)
		}
	}
}

func (s *AdminServer) addWebsocketRoutes() {
	ws := s.Router.Group("/ws")
	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/sessions", websocket.New(s.sessionFeedHandler.Handle))
}

func (s *AdminServer) Shutdown() error {
	return s.Router.Shutdown()
}
