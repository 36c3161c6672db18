package paginator

import "testing"

func TestPaginateQueryAdjust(t *testing.T) {
	cases := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"defaults on zero values", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"defaults on negatives", PaginateQuery{Page: -3, Limit: -1}, DefaultPage, DefaultLimit},
		{"keeps valid values", PaginateQuery{Page: 3, Limit: 20}, 3, 20},
		{"caps excessive limit", PaginateQuery{Page: 1, Limit: 10000}, 1, MaxLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Adjust()
			if tc.in.Page != tc.wantPage {
				t.Errorf("page mismatch: got %d, want %d", tc.in.Page, tc.wantPage)
			}
			if tc.in.Limit != tc.wantLimit {
				t.Errorf("limit mismatch: got %d, want %d", tc.in.Limit, tc.wantLimit)
			}
		})
	}
}

func TestPaginateQueryOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 15}
	if got := q.Offset(); got != 30 {
		t.Errorf("offset mismatch: got %d, want 30", got)
	}

	q = PaginateQuery{Page: 1, Limit: 15}
	if got := q.Offset(); got != 0 {
		t.Errorf("offset mismatch: got %d, want 0", got)
	}
}

func TestPaginatorToResponse(t *testing.T) {
	p := Paginator{Total: 31, Count: 1, PerPage: 15, CurrentPage: 3}
	resp := p.ToResponse()

	if resp.TotalPages != 3 {
		t.Errorf("total pages mismatch: got %d, want 3", resp.TotalPages)
	}
	if resp.HasNext {
		t.Error("last page should not have a next page")
	}
	if !resp.HasPrev {
		t.Error("page 3 should have a previous page")
	}

	empty := Paginator{Total: 0, Count: 0, PerPage: 15, CurrentPage: 1}.ToResponse()
	if empty.TotalPages != 0 {
		t.Errorf("total pages mismatch: got %d, want 0", empty.TotalPages)
	}
	if empty.HasNext || empty.HasPrev {
		t.Error("empty result should have no next or previous page")
	}
}
