package api

import "testing"

func TestSanitizeField(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantNil bool
	}{
		{name: "plain value", input: "Drama", want: "Drama"},
		{name: "preserves casing", input: "YouTube Picks", want: "YouTube Picks"},
		{name: "trims whitespace", input: "  Drama  ", want: "Drama"},
		{name: "empty", input: "", wantNil: true},
		{name: "whitespace only", input: "   ", wantNil: true},
		{name: "nan lowercase", input: "nan", wantNil: true},
		{name: "nan mixed case", input: "NaN", wantNil: true},
		{name: "nan uppercase", input: "NAN", wantNil: true},
		{name: "nan padded", input: "  NaN  ", wantNil: true},
		{name: "value containing nan", input: "Banana", want: "Banana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeField(tt.input)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("SanitizeField(%q) = %q, want nil", tt.input, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("SanitizeField(%q) = nil, want %q", tt.input, tt.want)
			}
			if *got != tt.want {
				t.Errorf("SanitizeField(%q) = %q, want %q", tt.input, *got, tt.want)
			}
		})
	}
}

func TestSanitizeContentItem(t *testing.T) {
	item := sanitizeContentItem(rawContentItem{
		ContentID:              12,
		Title:                  "",
		SubTitle:               "NaN",
		ThumbnailHorizontalURL: "https://cdn.example.com/h.jpg",
		ThumbnailVerticalURL:   "  ",
	})

	if item.ContentID != 12 {
		t.Errorf("ContentID = %d, want 12", item.ContentID)
	}
	if item.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", item.Title)
	}
	if item.SubTitle != nil {
		t.Errorf("SubTitle = %q, want nil", *item.SubTitle)
	}
	if item.ThumbnailHorizontalURL == nil || *item.ThumbnailHorizontalURL != "https://cdn.example.com/h.jpg" {
		t.Errorf("ThumbnailHorizontalURL = %v, want https://cdn.example.com/h.jpg", item.ThumbnailHorizontalURL)
	}
	if item.ThumbnailVerticalURL != nil {
		t.Errorf("ThumbnailVerticalURL = %q, want nil", *item.ThumbnailVerticalURL)
	}
}

func TestSanitizeContentItemIdempotent(t *testing.T) {
	raw := rawContentItem{ContentID: 3, Title: "Show", SubTitle: "Season 1"}

	first := sanitizeContentItem(raw)
	second := sanitizeContentItem(raw)

	if first.Title != second.Title || *first.SubTitle != *second.SubTitle {
		t.Errorf("sanitizing identical input twice produced different records: %+v vs %+v", first, second)
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "true", input: true, want: true},
		{name: "false", input: false, want: false},
		{name: "one", input: float64(1), want: true},
		{name: "zero", input: float64(0), want: false},
		{name: "non-empty string", input: "yes", want: true},
		{name: "empty string", input: "", want: false},
		{name: "nil", input: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toBool(tt.input); got != tt.want {
				t.Errorf("toBool(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
