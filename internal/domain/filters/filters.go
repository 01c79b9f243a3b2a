package filters

import (
	"strings"
)

const (
	AscSort  = "ASC"
	DescSort = "DESC"
)

// MovieSortSafelist holds the movie fields a listing may be ordered by.
var MovieSortSafelist = []string{"id", "title", "featured"}

// MovieFilters narrows the catalog listing. Zero values mean "no filter".
type MovieFilters struct {
	Featured *bool  `schema:"featured"`
	Genre    string `schema:"genre"`
	Director string `schema:"director"`
	Sort     string `schema:"sort" validate:"omitempty,sortbymoviefield"`
}

func (f *MovieFilters) SortColumn() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f *MovieFilters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return DescSort
	}
	return AscSort
}

func (f *MovieFilters) IsSorted() bool {
	return f.Sort != ""
}
