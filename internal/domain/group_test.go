package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudyGroup_IDLists(t *testing.T) {
	g := StudyGroup{
		ChatID:   -100,
		Captain:  1,
		Deputies: "2\n3",
		Members:  "4\n\n 5 \nnot-a-number\n6",
	}

	assert.Equal(t, []int64{2, 3}, g.DeputyIDs())
	assert.Equal(t, []int64{4, 5, 6}, g.MemberIDs())
	assert.True(t, g.IsCaptain(1))
	assert.False(t, g.IsCaptain(2))
}

func TestStudyGroup_EmptyLists(t *testing.T) {
	g := StudyGroup{ChatID: -100, Captain: 1}

	assert.Nil(t, g.DeputyIDs())
	assert.Nil(t, g.MemberIDs())
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "2\n3\n4", JoinIDs([]int64{2, 3, 4}))
	assert.Equal(t, "", JoinIDs(nil))
}
