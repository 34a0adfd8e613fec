package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wy/pgsweep/types"
)

func TestStatusEndpoint(t *testing.T) {
	status := types.NewStatus(6)
	status.StartRun(1, "sb_no_rtg_dna_scale_std")
	status.FinishRun(types.RunStatus{Name: "sb_no_rtg_dna_scale_std", Ok: true, ExitCode: 0})
	status.StartRun(2, "sb_rtg_dna_scale_std")

	s := NewStatusServer(context.Background(), "127.0.0.1:0", status)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("incorrect status code: %d", rec.Code)
	}

	snap := types.StatusSnapshot{}
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("invalid response body: %s", err)
	}
	if snap.TotalRuns != 6 || snap.CurrentRun != 2 {
		t.Errorf("incorrect progress: %d/%d", snap.CurrentRun, snap.TotalRuns)
	}
	if len(snap.Completed) != 1 || snap.Completed[0].Name != "sb_no_rtg_dna_scale_std" {
		t.Errorf("incorrect completed runs")
	}
	if snap.CurrentName != "sb_rtg_dna_scale_std" {
		t.Errorf("incorrect current run name: %s", snap.CurrentName)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := NewStatusServer(context.Background(), "127.0.0.1:0", types.NewStatus(0))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("incorrect status code: %d", rec.Code)
	}
}
