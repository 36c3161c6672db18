package audit

import (
	"time"

	"identity-srv/pkg/paginator"
)

type RecordInput struct {
	UserID    *int64
	Email     string
	Action    string
	IPAddress string
	UserAgent string
	Success   bool
	Detail    string
}

type ListInput struct {
	UserID   *int64
	Email    string
	Action   string
	From     *time.Time
	To       *time.Time
	Paginate paginator.PaginateQuery
}
