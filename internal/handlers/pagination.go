package handlers

import (
	"fmt"
	"strings"

	v1 "github.com/syslinkats/ats-harness/api/v1"
	"github.com/syslinkats/ats-harness/internal/store"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// maxPage keeps (page-1)*size well inside int64.
	maxPage         = 1_000_000
)

type page struct {
	number int
	size   int
	sorts  []store.SortParam
}

func parsePage(params v1.PageParams) (page, error) {
	p := page{number: 1, size: defaultPageSize}
	if params.Page != nil && *params.Page > 0 {
		if *params.Page > maxPage {
			return page{}, fmt.Errorf("page %d is out of range (max %d)", *params.Page, maxPage)
		}
		p.number = *params.Page
	}
	if params.PageSize != nil && *params.PageSize > 0 {
		p.size = min(*params.PageSize, maxPageSize)
	}

	for _, raw := range params.Sort {
		field, dir, _ := strings.Cut(raw, ":")
		if !store.SortableField(field) {
			return page{}, fmt.Errorf("unknown sort field %q", field)
		}
		switch strings.ToLower(dir) {
		case "", "asc":
			p.sorts = append(p.sorts, store.SortParam{Field: field})
		case "desc":
			p.sorts = append(p.sorts, store.SortParam{Field: field, Desc: true})
		default:
			return page{}, fmt.Errorf("invalid sort direction %q", dir)
		}
	}
	return p, nil
}

func (p page) options() []store.ListOption {
	sort := store.WithDefaultSort()
	if len(p.sorts) > 0 {
		sort = store.WithSort(p.sorts)
	}
	return []store.ListOption{
		sort,
		store.WithLimit(uint64(p.size)),
		store.WithOffset(uint64((p.number - 1) * p.size)),
	}
}

func (p page) count(total int) int {
	n := (total + p.size - 1) / p.size
	if n == 0 {
		n = 1
	}
	return n
}
