package pipeline

import "strconv"

// Pagination defaults applied when a list request omits the parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 3
)

// PageRequest is a validated (page, limit) pair. Offset is (Page-1)*Limit.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageRequest turns the raw query parameters into a PageRequest.
// Absent parameters take the defaults; non-numeric or non-positive values
// are rejected with a ValidationError rather than silently clamped, so list
// behavior stays deterministic. No upper bound is enforced on limit.
func ParsePageRequest(pageParam, limitParam string) (PageRequest, error) {
	req := PageRequest{Page: DefaultPage, Limit: DefaultLimit}
	var violations []Violation

	if pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil || page < 1 {
			violations = append(violations, Violation{
				Field:   "page",
				Message: "This value must be a positive integer",
			})
		} else {
			req.Page = page
		}
	}
	if limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 1 {
			violations = append(violations, Violation{
				Field:   "limit",
				Message: "This value must be a positive integer",
			})
		} else {
			req.Limit = limit
		}
	}

	if len(violations) > 0 {
		return PageRequest{}, &ValidationError{Violations: violations}
	}
	return req, nil
}
