package handler

import (
	"studjournal/internal/callback"

	tele "gopkg.in/telebot.v3"
)

const backLabel = "🔙 Назад"

// keyboard accumulates navigation buttons, encoding one token per button.
// The first encoding failure is remembered and surfaced by done().
type keyboard struct {
	markup  *tele.ReplyMarkup
	rows    []tele.Row
	current tele.Row
	perRow  int
	err     error
}

func newKeyboard(perRow int) *keyboard {
	return &keyboard{markup: &tele.ReplyMarkup{}, perRow: perRow}
}

// button appends a navigation button for the token
func (k *keyboard) button(text string, t callback.Token) {
	data, err := callback.Encode(t)
	if err != nil {
		if k.err == nil {
			k.err = err
		}
		return
	}
	k.current = append(k.current, k.markup.Data(text, navUnique, data))
	if len(k.current) >= k.perRow {
		k.flushRow()
	}
}

func (k *keyboard) flushRow() {
	if len(k.current) > 0 {
		k.rows = append(k.rows, k.current)
		k.current = nil
	}
}

// back closes the keyboard with the screen's single back button
func (k *keyboard) back(t callback.Token) {
	k.flushRow()
	k.perRow = 1
	k.button(backLabel, t)
}

func (k *keyboard) done() (*tele.ReplyMarkup, error) {
	if k.err != nil {
		return nil, k.err
	}
	k.flushRow()
	k.markup.Inline(k.rows...)
	return k.markup, nil
}

// backMarkup builds a keyboard holding only a back button
func backMarkup(t callback.Token) (*tele.ReplyMarkup, error) {
	k := newKeyboard(1)
	k.back(t)
	return k.done()
}
