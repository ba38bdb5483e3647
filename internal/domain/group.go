package domain

import (
	"strconv"
	"strings"
)

// StudyGroup is the shared per-chat group record. Deputies and Members are
// stored as newline-joined user IDs.
type StudyGroup struct {
	ChatID   int64
	Captain  int64
	Deputies string
	Members  string
}

// IsCaptain reports whether userID owns the group record
func (g StudyGroup) IsCaptain(userID int64) bool {
	return g.Captain == userID
}

// DeputyIDs parses the newline-joined deputy list
func (g StudyGroup) DeputyIDs() []int64 {
	return parseIDList(g.Deputies)
}

// MemberIDs parses the newline-joined member list
func (g StudyGroup) MemberIDs() []int64 {
	return parseIDList(g.Members)
}

func parseIDList(s string) []int64 {
	var ids []int64
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// JoinIDs formats ids back into the stored newline-joined form
func JoinIDs(ids []int64) string {
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, strconv.FormatInt(id, 10))
	}
	return strings.Join(lines, "\n")
}
