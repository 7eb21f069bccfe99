package controllers

import (
	"testing"

	"github.com/ncastellanos/propiedadesbackend/dto"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestFeaturedUpdateDoc(t *testing.T) {
	tests := []struct {
		name string
		body dto.UpdateFeaturedDTO
		want map[string]interface{}
	}{
		{
			name: "rename regenerates slug",
			body: dto.UpdateFeaturedDTO{CategoryName: strPtr("Mejores Precios!!")},
			want: map[string]interface{}{"name": "Mejores Precios!!", "slug": "mejores-precios"},
		},
		{
			name: "isActive passes through",
			body: dto.UpdateFeaturedDTO{IsActive: boolPtr(false)},
			want: map[string]interface{}{"isActive": false},
		},
		{
			name: "rename and deactivate",
			body: dto.UpdateFeaturedDTO{CategoryName: strPtr("Ofertas"), IsActive: boolPtr(true)},
			want: map[string]interface{}{"name": "Ofertas", "slug": "ofertas", "isActive": true},
		},
		{
			name: "empty body yields no updates",
			body: dto.UpdateFeaturedDTO{},
			want: map[string]interface{}{},
		},
		{
			name: "whitespace-only name is ignored",
			body: dto.UpdateFeaturedDTO{CategoryName: strPtr("   ")},
			want: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := featuredUpdateDoc(tt.body)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("set[%q] = %v, want %v", k, got[k], v)
				}
			}
			// categoryName itself must never be persisted.
			if _, ok := got["categoryName"]; ok {
				t.Error("categoryName leaked into the update document")
			}
		})
	}
}
