package request

import "testing"

func TestCalculationRequest_ResolveFormulaID(t *testing.T) {
	r := CalculationRequest{FormulaID: " f-1 "}
	if got := r.ResolveFormulaID(); got != "f-1" {
		t.Fatalf("expected f-1, got %q", got)
	}
	if !r.HasFormulaID() {
		t.Fatalf("expected HasFormulaID to be true")
	}

	r2 := CalculationRequest{FormulaID: "   "}
	if r2.HasFormulaID() {
		t.Fatalf("expected HasFormulaID to be false for blank id")
	}
}

func TestCalculationRequest_ResolvePair(t *testing.T) {
	r := CalculationRequest{ProductID: " piso-metalico ", MachineID: " pg450 "}
	productID, machineID := r.ResolvePair()
	if productID != "piso-metalico" || machineID != "pg450" {
		t.Fatalf("unexpected pair: %q %q", productID, machineID)
	}
	if !r.HasPair() {
		t.Fatalf("expected HasPair to be true")
	}

	r2 := CalculationRequest{ProductID: "piso-metalico"}
	if r2.HasPair() {
		t.Fatalf("expected HasPair to be false without machine_id")
	}
}
