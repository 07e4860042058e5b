package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func runPlumeQuery(t *testing.T, x float64) string {
	t.Helper()
	plumeEmission, plumeWind, plumeHeight = 1000, 5, 2
	plumeX, plumeY, plumeZ = x, 0, 0
	plumeStability = "D"
	var buf bytes.Buffer
	plumeCmd.SetOut(&buf)
	if err := plumeQuery(plumeCmd, nil); err != nil {
		t.Fatalf("plume query: %v", err)
	}
	return buf.String()
}

func TestPlumeCommand_Downwind(t *testing.T) {
	out := runPlumeQuery(t, 100)
	if !strings.Contains(out, "sigma_y") || !strings.Contains(out, "sigma_z") {
		t.Fatalf("expected coefficients in output, got %q", out)
	}
	if !strings.Contains(out, "concentration") {
		t.Fatalf("expected concentration in output, got %q", out)
	}
}

func TestPlumeCommand_UpwindIsZero(t *testing.T) {
	out := runPlumeQuery(t, -50)
	if strings.Contains(out, "sigma_y") {
		t.Fatalf("coefficients printed for an upwind receptor: %q", out)
	}
	if !strings.Contains(out, "concentration: 0.00 ug/m3") {
		t.Fatalf("expected zero concentration, got %q", out)
	}
}
