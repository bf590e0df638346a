package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchTabWraps(t *testing.T) {
	s := NewAppState([]Tab{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	assert.True(t, s.SwitchTab(1))
	assert.Equal(t, "b", s.ActiveName())
	assert.True(t, s.SwitchTab(-2))
	assert.Equal(t, "c", s.ActiveName())
	assert.True(t, s.SwitchTab(1))
	assert.Equal(t, "a", s.ActiveName())
}

func TestSwitchTabSingle(t *testing.T) {
	s := NewAppState([]Tab{{Name: "only"}})
	assert.False(t, s.SwitchTab(1))
	assert.Equal(t, 0, s.Active)
}

func TestEmptyState(t *testing.T) {
	s := NewAppState(nil)
	assert.Nil(t, s.ActiveGrid())
	assert.Equal(t, "", s.ActiveName())
	assert.False(t, s.SelectTab(0))
	assert.Empty(t, s.TabNames())
	s.Close()
}

func TestTabLookupAndStatus(t *testing.T) {
	s := NewAppState([]Tab{{Name: "Food"}, {Name: "Supplements"}})

	i, ok := s.TabIndex("Supplements")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = s.TabIndex("Sleep")
	assert.False(t, ok)

	assert.True(t, s.SelectTab(1))
	assert.False(t, s.SelectTab(1))
	assert.Equal(t, []string{"Food", "Supplements"}, s.TabNames())

	s.SetStatus("boom", true)
	assert.True(t, s.StatusIsError)
	stale := s.StatusSeq
	s.SetStatus("newer", false)
	assert.False(t, s.ClearStatusIfCurrent(stale))
	assert.Equal(t, "newer", s.StatusMessage)
	assert.True(t, s.ClearStatusIfCurrent(s.StatusSeq))
	assert.Empty(t, s.StatusMessage)
	assert.False(t, s.StatusIsError)
}
