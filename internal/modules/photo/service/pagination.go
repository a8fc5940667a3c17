package service

import (
	"fmt"
	"math"
	"photo-catalog-server/internal/common"
)

// Page 已校验的分页参数
type Page struct {
	Page     int
	PageSize int
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ResolvePage 应用默认值并校验范围：page >= 1，1 <= page_size <= 最大值，(page-1)*page_size 不溢出。
func (s *Service) ResolvePage(page, pageSize *int) (Page, error) {
	p := Page{Page: 1, PageSize: s.pagination.DefaultPageSize}
	if page != nil {
		if *page < 1 {
			return Page{}, common.NewValidationError("page must be at least 1")
		}
		p.Page = *page
	}
	if pageSize != nil {
		if *pageSize < 1 || *pageSize > s.pagination.MaxPageSize {
			return Page{}, common.NewValidationError(fmt.Sprintf("page_size must be between 1 and %d", s.pagination.MaxPageSize))
		}
		p.PageSize = *pageSize
	}
	// offset 必须能用 int 表示
	if p.Page-1 > math.MaxInt/p.PageSize {
		return Page{}, common.NewValidationError("page is too large")
	}
	return p, nil
}
