// Package http exposes the quiz repository over a small REST API, for
// tooling and bulk administration alongside the interactive sessions.
package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"trivia/internal/core"
)

type quizRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// NewFiberApp builds the API server over the shared repository.
func NewFiberApp(repo core.Repository) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	app.Use(logger.New(logger.Config{
		Format: "${time} API ${status} ${method} ${path} ${latency}\n",
	}))

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api.Get("/quizzes", func(c *fiber.Ctx) error {
		items, err := repo.List()
		if err != nil {
			return sendError(c, err)
		}
		if items == nil {
			items = []core.Item{}
		}
		return c.JSON(items)
	})

	api.Post("/quizzes", func(c *fiber.Ctx) error {
		var req quizRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
		}
		item, err := repo.Create(req.Question, req.Answer)
		if err != nil {
			return sendError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	api.Get("/quizzes/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid quiz id"})
		}
		item, err := repo.Find(int64(id))
		if err != nil {
			return sendError(c, err)
		}
		return c.JSON(item)
	})

	api.Put("/quizzes/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid quiz id"})
		}
		var req quizRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
		}
		item, err := repo.Update(int64(id), req.Question, req.Answer)
		if err != nil {
			return sendError(c, err)
		}
		return c.JSON(item)
	})

	api.Delete("/quizzes/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid quiz id"})
		}
		if err := repo.Delete(int64(id)); err != nil {
			return sendError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	return app
}

// sendError maps the quiz error taxonomy onto HTTP statuses.
func sendError(c *fiber.Ctx, err error) error {
	var qerr *core.Error
	if errors.As(err, &qerr) {
		switch qerr.Kind {
		case core.KindNotFound:
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: qerr.Message})
		case core.KindValidation:
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: qerr.Message, Fields: qerr.FieldErrors})
		case core.KindMissingParameter, core.KindInvalidParameter:
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: qerr.Message})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal error"})
}
