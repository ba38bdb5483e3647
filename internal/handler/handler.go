package handler

import (
	"strings"
	"sync"
	"time"
	"unicode"

	"studjournal/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// navUnique marks every inline button carrying an encoded navigation token
const navUnique = "nav"

// btnNav is the shared button identity all screens attach their tokens to
var btnNav = tele.Btn{Unique: navUnique}

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	userService     *service.UserService
	pointsService   *service.PointsService
	groupService    *service.GroupService
	scheduleService *service.ScheduleService
	logger          *zap.Logger

	// Pending free-text captures, one per user (last-writer-wins)
	inputTTL   time.Duration
	pending    map[int64]*pendingInput
	pendingMux sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	userService *service.UserService,
	pointsService *service.PointsService,
	groupService *service.GroupService,
	scheduleService *service.ScheduleService,
	inputTTL time.Duration,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		userService:     userService,
		pointsService:   pointsService,
		groupService:    groupService,
		scheduleService: scheduleService,
		logger:          logger,
		inputTTL:        inputTTL,
		pending:         make(map[int64]*pendingInput),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/group", h.handleGroupCommand)

	// Text messages (pending captures)
	h.bot.Handle(tele.OnText, h.handleText)

	// Navigation buttons carry encoded tokens
	h.bot.Handle(&btnNav, h.handleNav)

	// Anything else pressed is answered, never crashed on
	h.bot.Handle(tele.OnCallback, h.handleUnknownCallback)
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if the message is not
// modified, just acknowledge the callback; otherwise acknowledge and return
// the error so the caller can send a new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// render edits the current message on a screen revisit (button press) and
// sends a new one on first contact (command)
func (h *Handler) render(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}
