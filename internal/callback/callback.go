// Package callback encodes navigation state into compact callback payloads
// and back. A token addresses a screen family (prefix), an action and its
// parameters; the framed button payload carrying a token must stay within
// Telegram's 64-byte callback-data limit.
package callback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Sep separates fields of a top-level token.
	Sep = ":"
	// BackSep separates fields of a token embedded in a BackTo field, so
	// the outer split never cuts through the inner token.
	BackSep = "@"
	// WireLimit is the Telegram callback-data size limit in bytes.
	WireLimit = 64
	// ButtonFraming is what telebot prepends to inline button data before
	// sending: "\f", the button unique, "|". Every token rides a button
	// with the shared navigation unique.
	ButtonFraming = "\fnav|"
	// MaxLen bounds an encoded token so the framed payload fits WireLimit.
	MaxLen = WireLimit - len(ButtonFraming)
)

var (
	ErrInvalidField   = errors.New("invalid field")
	ErrUnknownVariant = errors.New("unknown variant")
	ErrArityMismatch  = errors.New("arity mismatch")
	ErrTypeMismatch   = errors.New("type mismatch")
)

// Token is a decoded navigation payload: one of the screen-family variants.
type Token interface {
	prefix() string
	fields(sep string) ([]string, error)
}

// MenuAction selects a top-level menu screen
type MenuAction string

const (
	MenuProfile     MenuAction = "p"
	MenuPoints      MenuAction = "pts"
	MenuMoreDetails MenuAction = "m"
	MenuChangeGroup MenuAction = "cg"
)

// MenuToken addresses the profile/points level of the menu
type MenuToken struct {
	Action MenuAction
	UserID int64
}

func (t MenuToken) prefix() string { return "m" }

func (t MenuToken) fields(sep string) ([]string, error) {
	switch t.Action {
	case MenuProfile, MenuPoints, MenuMoreDetails, MenuChangeGroup:
	default:
		return nil, fmt.Errorf("%w: menu action %q", ErrInvalidField, t.Action)
	}
	return []string{string(t.Action), formatInt(t.UserID)}, nil
}

// PointsAction selects the add or delete branch of the points menu
type PointsAction string

const (
	PointsAdd    PointsAction = "a"
	PointsDelete PointsAction = "d"
)

// PointsToken addresses the course picker for an add/delete branch
type PointsToken struct {
	Action PointsAction
	UserID int64
}

func (t PointsToken) prefix() string { return "p" }

func (t PointsToken) fields(sep string) ([]string, error) {
	switch t.Action {
	case PointsAdd, PointsDelete:
	default:
		return nil, fmt.Errorf("%w: points action %q", ErrInvalidField, t.Action)
	}
	return []string{string(t.Action), formatInt(t.UserID)}, nil
}

// CourseAction selects an operation on a single course or record
type CourseAction string

const (
	CourseAddPoints          CourseAction = "ap"
	CourseAddCourse          CourseAction = "ac"
	CourseInc                CourseAction = "i"
	CourseDelete             CourseAction = "d"
	CourseDeleteConfirm      CourseAction = "dc"
	CourseDeleteAll          CourseAction = "da"
	CourseDesc               CourseAction = "dsc"
	CourseMoreDetails        CourseAction = "m"
	CourseMoreDetailsConfirm CourseAction = "mc"
)

// CourseToken addresses per-course screens. Course must already be
// transliterated to ASCII. Zero values of Timestamp, Count, Description and
// BackTo mean "not set" and encode as empty placeholders.
type CourseToken struct {
	UserID      int64
	Action      CourseAction
	Course      string
	Timestamp   int64
	Count       int
	Description string
	BackTo      Token
}

func (t CourseToken) prefix() string { return "c" }

func (t CourseToken) fields(sep string) ([]string, error) {
	switch t.Action {
	case CourseAddPoints, CourseAddCourse, CourseInc, CourseDelete,
		CourseDeleteConfirm, CourseDeleteAll, CourseDesc,
		CourseMoreDetails, CourseMoreDetailsConfirm:
	default:
		return nil, fmt.Errorf("%w: course action %q", ErrInvalidField, t.Action)
	}
	if err := checkText(t.Course); err != nil {
		return nil, err
	}
	if err := checkText(t.Description); err != nil {
		return nil, err
	}

	back := ""
	if t.BackTo != nil {
		if sep == BackSep {
			return nil, fmt.Errorf("%w: back reference nested deeper than one level", ErrInvalidField)
		}
		encoded, err := encodeWith(t.BackTo, BackSep)
		if err != nil {
			return nil, err
		}
		back = encoded
	}

	return []string{
		formatInt(t.UserID),
		string(t.Action),
		t.Course,
		formatOptInt(t.Timestamp),
		formatOptInt(int64(t.Count)),
		t.Description,
		back,
	}, nil
}

// GroupSelectToken addresses the two-level group picker. Faculty indices are
// 1-based; zero means no faculty chosen yet.
type GroupSelectToken struct {
	UserID  int64
	Faculty int
	Group   string
}

func (t GroupSelectToken) prefix() string { return "g" }

func (t GroupSelectToken) fields(sep string) ([]string, error) {
	if err := checkText(t.Group); err != nil {
		return nil, err
	}
	return []string{
		formatInt(t.UserID),
		formatOptInt(int64(t.Faculty)),
		t.Group,
	}, nil
}

// GroupMenuAction selects an operation on the shared per-chat group record
type GroupMenuAction string

const (
	GroupMenuOpen       GroupMenuAction = "o"
	GroupMenuSetCaptain GroupMenuAction = "sc"
	GroupMenuSetDeputy  GroupMenuAction = "sd"
	GroupMenuSetMembers GroupMenuAction = "sm"
)

// GroupMenuToken addresses the shared group management screen
type GroupMenuToken struct {
	ChatID int64
	Action GroupMenuAction
}

func (t GroupMenuToken) prefix() string { return "gm" }

func (t GroupMenuToken) fields(sep string) ([]string, error) {
	switch t.Action {
	case GroupMenuOpen, GroupMenuSetCaptain, GroupMenuSetDeputy, GroupMenuSetMembers:
	default:
		return nil, fmt.Errorf("%w: group menu action %q", ErrInvalidField, t.Action)
	}
	return []string{formatInt(t.ChatID), string(t.Action)}, nil
}

// Encode serializes a token. It fails with ErrInvalidField if a text field
// contains a separator, if the result would exceed MaxLen, or if a back
// reference nests deeper than one level. Output is never truncated.
func Encode(t Token) (string, error) {
	s, err := encodeWith(t, Sep)
	if err != nil {
		return "", err
	}
	if len(s) > MaxLen {
		return "", fmt.Errorf("%w: encoded token is %d bytes, limit %d", ErrInvalidField, len(s), MaxLen)
	}
	return s, nil
}

func encodeWith(t Token, sep string) (string, error) {
	fields, err := t.fields(sep)
	if err != nil {
		return "", err
	}
	return t.prefix() + sep + strings.Join(fields, sep), nil
}

// Decode parses an encoded token back into its variant. It fails with
// ErrUnknownVariant for an unmatched prefix, ErrArityMismatch for a wrong
// field count and ErrTypeMismatch for an unparsable field.
func Decode(s string) (Token, error) {
	return decodeWith(s, Sep)
}

func decodeWith(s, sep string) (Token, error) {
	parts := strings.Split(s, sep)
	switch parts[0] {
	case "m":
		if len(parts) != 3 {
			return nil, arityErr("m", 2, len(parts)-1)
		}
		action, err := parseMenuAction(parts[1])
		if err != nil {
			return nil, err
		}
		userID, err := parseInt(parts[2])
		if err != nil {
			return nil, err
		}
		return MenuToken{Action: action, UserID: userID}, nil

	case "p":
		if len(parts) != 3 {
			return nil, arityErr("p", 2, len(parts)-1)
		}
		action, err := parsePointsAction(parts[1])
		if err != nil {
			return nil, err
		}
		userID, err := parseInt(parts[2])
		if err != nil {
			return nil, err
		}
		return PointsToken{Action: action, UserID: userID}, nil

	case "c":
		if len(parts) != 8 {
			return nil, arityErr("c", 7, len(parts)-1)
		}
		userID, err := parseInt(parts[1])
		if err != nil {
			return nil, err
		}
		action, err := parseCourseAction(parts[2])
		if err != nil {
			return nil, err
		}
		timestamp, err := parseOptInt(parts[4])
		if err != nil {
			return nil, err
		}
		count, err := parseOptInt(parts[5])
		if err != nil {
			return nil, err
		}
		var back Token
		if parts[7] != "" {
			if sep == BackSep {
				return nil, fmt.Errorf("%w: back reference nested deeper than one level", ErrTypeMismatch)
			}
			back, err = decodeWith(parts[7], BackSep)
			if err != nil {
				return nil, err
			}
		}
		return CourseToken{
			UserID:      userID,
			Action:      action,
			Course:      parts[3],
			Timestamp:   timestamp,
			Count:       int(count),
			Description: parts[6],
			BackTo:      back,
		}, nil

	case "g":
		if len(parts) != 4 {
			return nil, arityErr("g", 3, len(parts)-1)
		}
		userID, err := parseInt(parts[1])
		if err != nil {
			return nil, err
		}
		faculty, err := parseOptInt(parts[2])
		if err != nil {
			return nil, err
		}
		return GroupSelectToken{UserID: userID, Faculty: int(faculty), Group: parts[3]}, nil

	case "gm":
		if len(parts) != 3 {
			return nil, arityErr("gm", 2, len(parts)-1)
		}
		chatID, err := parseInt(parts[1])
		if err != nil {
			return nil, err
		}
		action, err := parseGroupMenuAction(parts[2])
		if err != nil {
			return nil, err
		}
		return GroupMenuToken{ChatID: chatID, Action: action}, nil
	}
	return nil, fmt.Errorf("%w: prefix %q", ErrUnknownVariant, parts[0])
}

func parseMenuAction(s string) (MenuAction, error) {
	switch a := MenuAction(s); a {
	case MenuProfile, MenuPoints, MenuMoreDetails, MenuChangeGroup:
		return a, nil
	}
	return "", fmt.Errorf("%w: menu action %q", ErrTypeMismatch, s)
}

func parsePointsAction(s string) (PointsAction, error) {
	switch a := PointsAction(s); a {
	case PointsAdd, PointsDelete:
		return a, nil
	}
	return "", fmt.Errorf("%w: points action %q", ErrTypeMismatch, s)
}

func parseCourseAction(s string) (CourseAction, error) {
	switch a := CourseAction(s); a {
	case CourseAddPoints, CourseAddCourse, CourseInc, CourseDelete,
		CourseDeleteConfirm, CourseDeleteAll, CourseDesc,
		CourseMoreDetails, CourseMoreDetailsConfirm:
		return a, nil
	}
	return "", fmt.Errorf("%w: course action %q", ErrTypeMismatch, s)
}

func parseGroupMenuAction(s string) (GroupMenuAction, error) {
	switch a := GroupMenuAction(s); a {
	case GroupMenuOpen, GroupMenuSetCaptain, GroupMenuSetDeputy, GroupMenuSetMembers:
		return a, nil
	}
	return "", fmt.Errorf("%w: group menu action %q", ErrTypeMismatch, s)
}

func checkText(s string) error {
	if strings.Contains(s, Sep) || strings.Contains(s, BackSep) {
		return fmt.Errorf("%w: %q contains a separator", ErrInvalidField, s)
	}
	return nil
}

func arityErr(prefix string, want, got int) error {
	return fmt.Errorf("%w: variant %q wants %d fields, got %d", ErrArityMismatch, prefix, want, got)
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// formatOptInt emits the positional empty placeholder for an unset field
func formatOptInt(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrTypeMismatch, s)
	}
	return n, nil
}

func parseOptInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return parseInt(s)
}
