package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   PageRequest
		want PageRequest
	}{
		{PageRequest{}, PageRequest{Page: 1, PageSize: DefaultPageSize}},
		{PageRequest{Page: 3, PageSize: 10}, PageRequest{Page: 3, PageSize: 10}},
		{PageRequest{Page: -1, PageSize: 1000}, PageRequest{Page: 1, PageSize: MaxPageSize}},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestNewPageResponse(t *testing.T) {
	req := PageRequest{Page: 2, PageSize: 2}
	resp := NewPageResponse([]int{3, 4}, req, 5)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if req.Offset() != 2 {
		t.Errorf("expected offset 2, got %d", req.Offset())
	}

	empty := NewPageResponse[int](nil, PageRequest{Page: 1, PageSize: 10}, 0)
	if empty.Data == nil || len(empty.Data) != 0 {
		t.Errorf("expected empty non-nil data, got %v", empty.Data)
	}
	if empty.TotalPages != 0 {
		t.Errorf("expected 0 pages, got %d", empty.TotalPages)
	}
}
