package repository

import "time"

type CreateOptions struct {
	UserID    *int64
	Email     string
	Action    string
	IPAddress string
	UserAgent string
	Success   bool
	Detail    string
}

type ListOptions struct {
	UserID *int64
	Email  string
	Action string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}
