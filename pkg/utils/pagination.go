package utils

import (
	"net/url"
	"strconv"
	"strings"

	"inventory-system/pkg/types"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

func ParsePaginationParams(values url.Values) (limit int, offset int) {
	limit = DefaultLimit
	page := 1

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
			if limit > MaxLimit {
				limit = MaxLimit
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	offset = (page - 1) * limit
	return
}

// ParseEquipmentFilter reads the optional list parameters. Without limit or
// page the whole list is returned, matching the original wire contract.
func ParseEquipmentFilter(values url.Values) types.Filter {
	filter := types.Filter{
		Search: strings.TrimSpace(values.Get("q")),
		Status: strings.TrimSpace(values.Get("status")),
	}
	if depStr := values.Get("departmentId"); depStr != "" {
		if dep, err := strconv.ParseInt(depStr, 10, 64); err == nil {
			filter.DepartmentID = &dep
		}
	}
	if values.Get("limit") != "" || values.Get("page") != "" {
		filter.Limit, filter.Offset = ParsePaginationParams(values)
		filter.WithPagination = true
	}
	return filter
}
