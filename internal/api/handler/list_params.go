package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/core/ports"
)

// bindListQuery reads the table-view query parameters shared by every listing
// endpoint. Absent or malformed values fall back to the defaults: unsorted,
// unfiltered, page 1.
func bindListQuery(c echo.Context) ports.ListQuery {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return ports.ListQuery{
		Sort:   c.QueryParam("sort"),
		Dir:    c.QueryParam("dir"),
		Filter: c.QueryParam("filter"),
		Page:   page,
	}
}
