package extract

import (
	"testing"
)

func TestParseProducts(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{
			name: "clean array",
			raw:  `[{"name":"Mug","price":12.5},{"name":"Plate","price":8,"sku":"PL-1"}]`,
			want: 2,
		},
		{
			name: "fenced response",
			raw:  "```json\n[{\"name\":\"Mug\",\"price\":12.5}]\n```",
			want: 1,
		},
		{
			name: "prose around the array",
			raw:  `Here are the products I found: [{"name":"Mug","price":12.5}] Hope that helps!`,
			want: 1,
		},
		{
			name: "brackets inside strings",
			raw:  `[{"name":"Mug [large]","price":12.5,"description":"says \"best\" mug"}]`,
			want: 1,
		},
		{
			name: "nameless entries dropped",
			raw:  `[{"name":"Mug","price":12.5},{"price":3},{"name":"  "}]`,
			want: 1,
		},
		{
			name: "empty array",
			raw:  `[]`,
			want: 0,
		},
		{
			name:    "no array at all",
			raw:     `I could not find any products.`,
			wantErr: true,
		},
		{
			name:    "unterminated array",
			raw:     `[{"name":"Mug"`,
			wantErr: true,
		},
		{
			name:    "array of the wrong shape",
			raw:     `[1, 2, 3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProducts(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseProducts(%q) succeeded, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProducts(%q) error: %v", tt.raw, err)
			}
			if len(got) != tt.want {
				t.Errorf("ParseProducts(%q) = %d products, want %d", tt.raw, len(got), tt.want)
			}
		})
	}
}

func TestParseProductsFields(t *testing.T) {
	got, err := ParseProducts(`[{"name":"Mug","price":12.5,"description":"ceramic","sku":"MU-1"}]`)
	if err != nil {
		t.Fatalf("ParseProducts: %v", err)
	}
	p := got[0]
	if p.Name != "Mug" || p.Price != 12.5 || p.Description != "ceramic" || p.SKU != "MU-1" {
		t.Errorf("product = %+v", p)
	}
}
