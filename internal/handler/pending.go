package handler

import (
	"time"

	"studjournal/internal/callback"

	tele "gopkg.in/telebot.v3"
)

// inputField names what a pending capture is waiting for
type inputField int

const (
	fieldGroupName inputField = iota
	fieldCourseName
	fieldDescription
	fieldCaptain
	fieldDeputies
	fieldMembers
)

// pendingInput is a suspended screen transition awaiting one free-text
// reply. Anchor is the bot message to edit when the flow resumes.
type pendingInput struct {
	Field     inputField
	Course    string // ASCII-transliterated, as carried by the token
	Timestamp int64
	BackTo    callback.Token
	Anchor    *tele.Message
	CreatedAt time.Time
}

// setPending suspends the menu for the user. Any previous capture is
// abandoned (last-writer-wins, no stacking).
func (h *Handler) setPending(userID int64, p *pendingInput) {
	p.CreatedAt = time.Now()
	h.pendingMux.Lock()
	defer h.pendingMux.Unlock()
	h.pending[userID] = p
}

// takePending consumes the user's pending capture. Expired captures are
// dropped as if they never existed.
func (h *Handler) takePending(userID int64) *pendingInput {
	h.pendingMux.Lock()
	defer h.pendingMux.Unlock()

	p, ok := h.pending[userID]
	if !ok {
		return nil
	}
	delete(h.pending, userID)

	if h.inputTTL > 0 && time.Since(p.CreatedAt) > h.inputTTL {
		return nil
	}
	return p
}
