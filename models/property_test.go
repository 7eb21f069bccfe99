package models

import "testing"

func TestEnumValidators(t *testing.T) {
	for _, v := range []string{"casa", "departamento", "parcela", "sitio", "oficina", "comercial"} {
		if !IsValidPropertyType(v) {
			t.Errorf("IsValidPropertyType(%q) = false", v)
		}
	}
	// Superseded English values must be rejected.
	for _, v := range []string{"house", "apartment", "land", "office", ""} {
		if IsValidPropertyType(v) {
			t.Errorf("IsValidPropertyType(%q) = true", v)
		}
	}

	for _, v := range []string{"En Arriendo", "En Venta"} {
		if !IsValidOperation(v) {
			t.Errorf("IsValidOperation(%q) = false", v)
		}
	}
	if IsValidOperation("venta") {
		t.Error(`IsValidOperation("venta") = true`)
	}

	for _, v := range []string{"disponible", "vendida", "pendiente"} {
		if !IsValidStatus(v) {
			t.Errorf("IsValidStatus(%q) = false", v)
		}
	}
	for _, v := range []string{"available", "sold", "pending", ""} {
		if IsValidStatus(v) {
			t.Errorf("IsValidStatus(%q) = true", v)
		}
	}
}

func TestRegions(t *testing.T) {
	if len(Regions) != 16 {
		t.Fatalf("len(Regions) = %d, want 16", len(Regions))
	}
	for _, v := range []string{"Maule", "Ñuble", "O'Higgins", "Metropolitana de Santiago"} {
		if !IsValidRegion(v) {
			t.Errorf("IsValidRegion(%q) = false", v)
		}
	}
	if IsValidRegion("maule") {
		t.Error("region match must be exact, not case-insensitive")
	}
}
