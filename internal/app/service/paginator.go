package service

import "object_explorer/internal/domain/entity"

// PageCount returns the number of pages needed for count items.
func PageCount(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

// WindowOf returns items[(page-1)*perPage : page*perPage], clipped to the
// slice. Pages outside [1, PageCount] yield an empty window.
func WindowOf[T any](items []T, perPage, page int) []T {
	if perPage <= 0 || page < 1 || page > PageCount(len(items), perPage) {
		return []T{}
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(items))
	return items[start:end]
}

// NewPagination describes the pagination control for count items.
// Controls are hidden when everything fits on one page.
func NewPagination(count, perPage, page int) entity.Pagination {
	return entity.Pagination{
		CurrentPage:  page,
		TotalPages:   PageCount(count, perPage),
		TotalItems:   count,
		ItemsPerPage: perPage,
		ShowControls: count > perPage,
	}
}

// InitialViewState is the view state of a freshly loaded collection.
func InitialViewState() entity.ViewState {
	return entity.ViewState{Page: 1, ExpandedKey: entity.ClosedGroup}
}

// OnPageChange moves to page and closes any open group.
func OnPageChange(_ entity.ViewState, page int) entity.ViewState {
	return entity.ViewState{Page: page, ExpandedKey: entity.ClosedGroup}
}

// ToggleGroup opens key, or closes it if it is already open. Opening a group
// closes the previously open one.
func ToggleGroup(s entity.ViewState, key string) entity.ViewState {
	if s.ExpandedKey == key {
		s.ExpandedKey = entity.ClosedGroup
		return s
	}
	s.ExpandedKey = key
	return s
}

// ExpandGroup opens key, closing any other group.
func ExpandGroup(s entity.ViewState, key string) entity.ViewState {
	s.ExpandedKey = key
	return s
}

// CollapseGroup closes the open group, if any.
func CollapseGroup(s entity.ViewState) entity.ViewState {
	s.ExpandedKey = entity.ClosedGroup
	return s
}
