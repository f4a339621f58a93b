package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Session
	StartSessionHandler   Handler
	PauseSessionHandler   Handler
	ResumeSessionHandler  Handler
	AddTimeHandler        Handler
	ConfirmPaymentHandler Handler
	StopSessionHandler    Handler
	GetSessionHandler     Handler
	ListSessionsHandler   Handler

	// Device
	CreateDeviceHandler     Handler
	ListDevicesHandler      Handler
	GetDeviceHandler        Handler
	GetDeviceSessionHandler Handler
	UpdateDeviceHandler     Handler
	DeleteDeviceHandler     Handler

	// Package
	CreatePackageHandler Handler
	ListPackagesHandler  Handler
	GetPackageHandler    Handler
	UpdatePackageHandler Handler
	DeletePackageHandler Handler

	// Misc
	GetVersionHandler Handler
}
