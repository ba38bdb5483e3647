package handler

import (
	"fmt"
	"testing"
	"time"

	"studjournal/internal/callback"
	"studjournal/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// fakeContext stubs the few tele.Context methods screen handlers touch
type fakeContext struct {
	tele.Context
	callback   *tele.Callback
	sent       []string
	responses  []*tele.CallbackResponse
	respondErr error
}

func (f *fakeContext) Callback() *tele.Callback { return f.callback }

func (f *fakeContext) Sender() *tele.User { return &tele.User{ID: 123} }

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		f.sent = append(f.sent, s)
	}
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		resp = []*tele.CallbackResponse{{}}
	}
	f.responses = append(f.responses, resp...)
	return f.respondErr
}

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal token",
			input:    "m:p:123",
			expected: "m:p:123",
		},
		{
			name:     "string with whitespace",
			input:    "  m:p:123  ",
			expected: "m:p:123",
		},
		{
			name:     "string with newline",
			input:    "m:p\n:123",
			expected: "m:p:123",
		},
		{
			name:     "string with unprintable characters",
			input:    "m:p\x00:123\x01",
			expected: "m:p:123",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPending_ConsumedOnce(t *testing.T) {
	h := &Handler{pending: make(map[int64]*pendingInput)}

	h.setPending(123, &pendingInput{Field: fieldGroupName})

	first := h.takePending(123)
	require.NotNil(t, first)
	assert.Equal(t, fieldGroupName, first.Field)

	assert.Nil(t, h.takePending(123))
}

func TestPending_LastWriterWins(t *testing.T) {
	h := &Handler{pending: make(map[int64]*pendingInput)}

	h.setPending(123, &pendingInput{Field: fieldGroupName})
	h.setPending(123, &pendingInput{Field: fieldDescription, Course: "Fizika"})

	p := h.takePending(123)
	require.NotNil(t, p)
	assert.Equal(t, fieldDescription, p.Field)
	assert.Equal(t, "Fizika", p.Course)
}

func TestPending_PerUser(t *testing.T) {
	h := &Handler{pending: make(map[int64]*pendingInput)}

	h.setPending(123, &pendingInput{Field: fieldGroupName})

	assert.Nil(t, h.takePending(456))
	assert.NotNil(t, h.takePending(123))
}

func TestPending_ExpiredDropped(t *testing.T) {
	h := &Handler{pending: make(map[int64]*pendingInput), inputTTL: time.Minute}

	h.pending[123] = &pendingInput{
		Field:     fieldCourseName,
		CreatedAt: time.Now().Add(-2 * time.Minute),
	}

	assert.Nil(t, h.takePending(123))
	// An expired capture is still consumed
	assert.NotContains(t, h.pending, int64(123))
}

func TestPending_ZeroTTLNeverExpires(t *testing.T) {
	h := &Handler{pending: make(map[int64]*pendingInput)}

	h.pending[123] = &pendingInput{
		Field:     fieldCourseName,
		CreatedAt: time.Now().Add(-24 * time.Hour),
	}

	assert.NotNil(t, h.takePending(123))
}

func TestKeyboard_RowLayout(t *testing.T) {
	kb := newKeyboard(2)
	kb.button("1", callback.CourseToken{UserID: 123, Action: callback.CourseInc, Course: "Fizika", Count: 1})
	kb.button("2", callback.CourseToken{UserID: 123, Action: callback.CourseInc, Course: "Fizika", Count: 2})
	kb.button("3", callback.CourseToken{UserID: 123, Action: callback.CourseInc, Course: "Fizika", Count: 3})
	kb.back(callback.PointsToken{Action: callback.PointsAdd, UserID: 123})

	markup, err := kb.done()
	require.NoError(t, err)

	rows := markup.InlineKeyboard
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 2)
	assert.Len(t, rows[1], 1)
	assert.Len(t, rows[2], 1)
	assert.Equal(t, backLabel, rows[2][0].Text)
}

func TestKeyboard_ButtonsCarryDecodableTokens(t *testing.T) {
	token := callback.MenuToken{Action: callback.MenuPoints, UserID: 123}

	kb := newKeyboard(1)
	kb.button("📊 Мои баллы", token)
	markup, err := kb.done()
	require.NoError(t, err)

	require.Len(t, markup.InlineKeyboard, 1)
	decoded, err := callback.Decode(markup.InlineKeyboard[0][0].Data)
	require.NoError(t, err)
	assert.Equal(t, token, decoded)
}

func TestKeyboard_FramedPayloadFitsWireLimit(t *testing.T) {
	// The codec budgets for exactly the framing telebot wraps around the
	// shared navigation unique
	assert.Equal(t, "\f"+navUnique+"|", callback.ButtonFraming)

	kb := newKeyboard(1)
	kb.button("🗑️", callback.CourseToken{
		UserID:    123456789,
		Action:    callback.CourseDeleteConfirm,
		Course:    "Programmirovani",
		Timestamp: 4294967296,
		Count:     10,
		BackTo:    callback.PointsToken{Action: callback.PointsDelete, UserID: 123456789},
	})
	markup, err := kb.done()
	require.NoError(t, err)

	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			wire := "\f" + navUnique + "|" + btn.Data
			assert.LessOrEqual(t, len(wire), callback.WireLimit)
		}
	}
}

func TestKeyboard_EncodeErrorSurfaced(t *testing.T) {
	kb := newKeyboard(1)
	kb.button("ok", callback.MenuToken{Action: callback.MenuProfile, UserID: 123})
	kb.button("bad", callback.CourseToken{UserID: 123, Action: callback.CourseInc, Course: "Fiz:ika"})

	_, err := kb.done()
	assert.ErrorIs(t, err, callback.ErrInvalidField)
}

func TestRespondError(t *testing.T) {
	h := &Handler{logger: testutil.NewTestLogger()}

	pressed := &fakeContext{callback: &tele.Callback{}}
	require.NoError(t, h.respondError(pressed, "oops"))
	assert.Empty(t, pressed.sent)
	require.Len(t, pressed.responses, 1)
	assert.Equal(t, "oops", pressed.responses[0].Text)

	typed := &fakeContext{}
	require.NoError(t, h.respondError(typed, "oops"))
	assert.Equal(t, []string{"oops"}, typed.sent)
	assert.Empty(t, typed.responses)
}

func TestHandleEditError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		respondErr    error
		expectedError bool
	}{
		{
			name: "nil error passes through",
		},
		{
			name: "not modified is acknowledged and swallowed",
			err:  fmt.Errorf("telegram: message is not modified (400)"),
		},
		{
			name:       "acknowledge failure is still swallowed",
			err:        fmt.Errorf("telegram: message is not modified (400)"),
			respondErr: fmt.Errorf("query is too old"),
		},
		{
			name:          "other edit errors propagate after acknowledging",
			err:           fmt.Errorf("telegram: message to edit not found (400)"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: testutil.NewTestLogger()}
			c := &fakeContext{callback: &tele.Callback{}, respondErr: tt.respondErr}

			err := h.handleEditError(tt.err, c, 123)

			if tt.expectedError {
				assert.Equal(t, tt.err, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.err != nil {
				assert.Len(t, c.responses, 1)
			}
		})
	}
}
