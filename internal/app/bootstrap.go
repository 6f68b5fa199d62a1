package app

import (
	"fmt"
	"log"
	"strings"

	"hiretrack/internal/config"
	"hiretrack/internal/delivery/http/middleware"
	"hiretrack/internal/delivery/http/routes"
	"hiretrack/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	f.Use(errMw.Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	routes.Register(f, cfg, container.DB, container.Cache, hub, logger)

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f, Hub: hub}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
