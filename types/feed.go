package types

// FeedFilter narrows the feed to one source. At most one of UserId, Tag, and
// Search may be set; the zero value is the default offset/limit feed.
type FeedFilter struct {
	UserId int
	Tag    string
	Search string
}

func (f FeedFilter) IsDefault() bool {
	return f.UserId == 0 && f.Tag == "" && f.Search == ""
}

type SortField string

const (
	SortFieldDefault SortField = "default"
	SortFieldLikes   SortField = "likes"
	SortFieldTitle   SortField = "title"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortState tracks the active sort selection for a feed view.
type SortState struct {
	Field SortField
	Order SortOrder
}

func NewSortState() SortState {
	return SortState{Field: SortFieldDefault, Order: SortOrderDesc}
}

// Toggle flips the order when the same field is selected again, and resets
// to descending when a new field is selected.
func (s *SortState) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortOrderAsc {
			s.Order = SortOrderDesc
		} else {
			s.Order = SortOrderAsc
		}
		return
	}

	s.Field = field
	s.Order = SortOrderDesc
}
