// Package handlers is the thin HTTP edge: it converts transport
// requests into service calls and business outcomes into status
// codes. No room logic lives here.
package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"batepapo/domain"
	apperrors "batepapo/errors"
	"batepapo/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

var validate = validator.New()

// userHeader names the sender/viewer on message and status routes.
const userHeader = "User"

type ChatHandler struct {
	presence services.IPresenceService
	messages services.IMessageService
	log      *slog.Logger
}

func NewChatHandler(presence services.IPresenceService, messages services.IMessageService, log *slog.Logger) *ChatHandler {
	return &ChatHandler{presence: presence, messages: messages, log: log}
}

func (h *ChatHandler) Register(app *fiber.App) {
	app.Post("/participants", h.JoinHandler)
	app.Get("/participants", h.ListParticipantsHandler)
	app.Post("/messages", h.PostMessageHandler)
	app.Get("/messages", h.GetMessagesHandler) // ?limit=
	app.Post("/status", h.HeartbeatHandler)
}

type joinRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type messageRequest struct {
	To   string `json:"to" validate:"required,min=1"`
	Text string `json:"text" validate:"required,min=1"`
	Type string `json:"type" validate:"required,oneof=message private_message"`
}

type participantResponse struct {
	Name     string    `json:"name"`
	LastSeen time.Time `json:"lastSeen"`
}

type messageResponse struct {
	ID   string    `json:"id"`
	From string    `json:"from"`
	To   string    `json:"to"`
	Text string    `json:"text"`
	Type string    `json:"type"`
	Time string    `json:"time"` // HH:mm:ss, the original wire shape
	At   time.Time `json:"at"`
}

// JoinHandler POST /participants
func (h *ChatHandler) JoinHandler(c *fiber.Ctx) error {
	var req joinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	switch err := h.presence.Join(req.Name); {
	case err == nil:
		return c.SendStatus(fiber.StatusCreated)
	case errors.Is(err, apperrors.ErrNameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "this name is already taken"})
	case errors.Is(err, apperrors.ErrEmptyField):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "name is required"})
	default:
		h.log.Error("Join failed", "name", req.Name, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}

// ListParticipantsHandler GET /participants
func (h *ChatHandler) ListParticipantsHandler(c *fiber.Ctx) error {
	participants, err := h.presence.ListActive()
	if err != nil {
		h.log.Error("Participant listing failed", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(lo.Map(participants, func(p domain.Participant, _ int) participantResponse {
		return participantResponse{Name: p.Name, LastSeen: p.LastSeen}
	}))
}

// PostMessageHandler POST /messages
func (h *ChatHandler) PostMessageHandler(c *fiber.Ctx) error {
	user := c.Get(userHeader)

	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	switch err := h.messages.Send(user, req.To, req.Text, domain.MessageType(req.Type)); {
	case err == nil:
		return c.SendStatus(fiber.StatusCreated)
	case errors.Is(err, apperrors.ErrNotPresent), errors.Is(err, apperrors.ErrEmptyField):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "user is not in the room"})
	case errors.Is(err, apperrors.ErrInvalidMessageType):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "unsupported message type"})
	default:
		h.log.Error("Message send failed", "from", user, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}

// GetMessagesHandler GET /messages?limit=
func (h *ChatHandler) GetMessagesHandler(c *fiber.Ctx) error {
	user := c.Get(userHeader)

	var limit *int
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "limit parameter invalid"})
		}
		limit = lo.ToPtr(n)
	}

	messages, err := h.messages.VisibleTo(user, limit)
	switch {
	case err == nil:
		return c.JSON(toMessageResponses(messages))
	case errors.Is(err, apperrors.ErrNotPresent):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "user is not in the room"})
	case errors.Is(err, apperrors.ErrInvalidLimit):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "limit parameter invalid"})
	default:
		h.log.Error("Message listing failed", "viewer", user, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}

// HeartbeatHandler POST /status
func (h *ChatHandler) HeartbeatHandler(c *fiber.Ctx) error {
	user := c.Get(userHeader)

	switch err := h.presence.Heartbeat(user); {
	case err == nil:
		return c.SendStatus(fiber.StatusOK)
	case errors.Is(err, apperrors.ErrNotPresent):
		return c.SendStatus(fiber.StatusNotFound)
	default:
		h.log.Error("Heartbeat failed", "name", user, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}

func toMessageResponses(messages []domain.Message) []messageResponse {
	return lo.Map(messages, func(m domain.Message, _ int) messageResponse {
		return messageResponse{
			ID:   m.ID.String(),
			From: m.From,
			To:   m.To,
			Text: m.Text,
			Type: string(m.Type),
			Time: m.Clock(),
			At:   m.At,
		}
	})
}
