package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"object_explorer/internal/domain/entity"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestWindowOf_Boundaries(t *testing.T) {
	items := seq(14)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, WindowOf(items, 6, 1))
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11}, WindowOf(items, 6, 2))
	assert.Equal(t, []int{12, 13}, WindowOf(items, 6, 3))
	assert.Empty(t, WindowOf(items, 6, 4))
	assert.Empty(t, WindowOf(items, 6, 0))
	assert.Empty(t, WindowOf(items, 6, -1))
	assert.Empty(t, WindowOf(items, 0, 1))
	assert.Empty(t, WindowOf([]int{}, 6, 1))
}

func TestWindowOf_SinglePage(t *testing.T) {
	items := seq(4)
	assert.Equal(t, items, WindowOf(items, 6, 1))

	p := NewPagination(len(items), 6, 1)
	assert.False(t, p.ShowControls)
	assert.Equal(t, 1, p.TotalPages)

	p = NewPagination(7, 6, 2)
	assert.True(t, p.ShowControls)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 2, p.CurrentPage)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 6))
	assert.Equal(t, 1, PageCount(6, 6))
	assert.Equal(t, 3, PageCount(14, 6))
	assert.Equal(t, 0, PageCount(5, 0))
}

func TestViewState_ExpansionResetOnPageChange(t *testing.T) {
	s := InitialViewState()
	s = ExpandGroup(s, "A")
	assert.Equal(t, "A", s.ExpandedKey)

	s = OnPageChange(s, 2)
	assert.Equal(t, entity.ViewState{Page: 2, ExpandedKey: entity.ClosedGroup}, s)

	// returning to the first page does not restore the expansion
	s = OnPageChange(s, 1)
	assert.Equal(t, entity.ClosedGroup, s.ExpandedKey)
}

func TestViewState_SingleSelectToggle(t *testing.T) {
	s := InitialViewState()

	s = ToggleGroup(s, "A")
	assert.Equal(t, "A", s.ExpandedKey)

	s = ToggleGroup(s, "B")
	assert.Equal(t, "B", s.ExpandedKey)

	s = ToggleGroup(s, "B")
	assert.Equal(t, entity.ClosedGroup, s.ExpandedKey)

	s = CollapseGroup(ExpandGroup(s, "C"))
	assert.Equal(t, entity.ClosedGroup, s.ExpandedKey)
	assert.Equal(t, 1, s.Page)
}
