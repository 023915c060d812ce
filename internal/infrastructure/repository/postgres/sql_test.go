package postgres

import "testing"

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		wantPage   int
		wantOffset int
	}{
		{"first page", 1, 10, 25, 1, 0},
		{"middle page", 2, 10, 25, 2, 10},
		{"past the end", 9, 10, 25, 3, 20},
		{"zero page", 0, 10, 25, 1, 0},
		{"empty result", 4, 10, 0, 1, 0},
		{"exact boundary", 3, 10, 30, 3, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, offset := clampPage(tc.page, tc.limit, tc.total)
			if page != tc.wantPage || offset != tc.wantOffset {
				t.Fatalf("clampPage(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.page, tc.limit, tc.total, page, offset, tc.wantPage, tc.wantOffset)
			}
		})
	}
}
