package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/batchkit/batchreq/pkg/application/services/requirements"
	testhelpers "github.com/batchkit/batchreq/pkg/infrastructure/testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	batchRepo, catalogRepo, inventoryRepo := testhelpers.BuildSoapWorksScenario()
	server := NewServer(requirements.NewAnalysisService(nil), batchRepo, catalogRepo, inventoryRepo, nil)
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, ts *httptest.Server, path string, wantStatus int, out interface{}) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: expected status %d, got %d", path, wantStatus, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("GET %s: decode response: %v", path, err)
		}
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	getJSON(t, ts, "/healthz", http.StatusOK, &body)
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestBatchList(t *testing.T) {
	ts := newTestServer(t)

	var batches []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	getJSON(t, ts, "/api/batches", http.StatusOK, &batches)
	if len(batches) != 1 || batches[0].ID != "BATCH-1" || batches[0].Name != "Spring Run" {
		t.Errorf("unexpected batch list: %+v", batches)
	}
}

func TestRequirementsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var analysis struct {
		BatchID       string            `json:"batchId"`
		TotalCost     string            `json:"totalCost"`
		Materials     []json.RawMessage `json:"materials"`
		BySupplier    []json.RawMessage `json:"bySupplier"`
		CriticalCount []json.RawMessage `json:"criticalShortages"`
	}
	getJSON(t, ts, "/api/batches/BATCH-1/requirements", http.StatusOK, &analysis)

	if analysis.BatchID != "BATCH-1" {
		t.Errorf("expected batch id BATCH-1, got %q", analysis.BatchID)
	}
	if analysis.TotalCost != "5243.75" {
		t.Errorf("expected total cost 5243.75, got %q", analysis.TotalCost)
	}
	if len(analysis.Materials) != 4 {
		t.Errorf("expected 4 material lines, got %d", len(analysis.Materials))
	}
	if len(analysis.BySupplier) != 2 {
		t.Errorf("expected 2 supplier buckets, got %d", len(analysis.BySupplier))
	}
	if len(analysis.CriticalCount) != 5 {
		t.Errorf("expected 5 critical shortages, got %d", len(analysis.CriticalCount))
	}
}

func TestRequirementsEndpoint_UnknownBatch(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	getJSON(t, ts, "/api/batches/NO-SUCH/requirements", http.StatusNotFound, &body)
	if body["error"] != "batch not found" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestSupplierShortagesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		BatchID    string `json:"batchId"`
		SupplierID string `json:"supplierId"`
		Shortages  []struct {
			ItemID   string  `json:"itemId"`
			Shortage float64 `json:"shortage"`
		} `json:"shortages"`
	}
	getJSON(t, ts, "/api/batches/BATCH-1/requirements/suppliers/SUP-PACK/shortages", http.StatusOK, &body)

	if body.SupplierID != "SUP-PACK" {
		t.Errorf("expected supplier SUP-PACK, got %q", body.SupplierID)
	}
	// jars covered up to 100 of 500, back labels untracked
	if len(body.Shortages) != 2 {
		t.Fatalf("expected 2 shortage lines, got %d", len(body.Shortages))
	}
	for _, line := range body.Shortages {
		if line.Shortage <= 0 {
			t.Errorf("shortage line %s has non-positive shortage %v", line.ItemID, line.Shortage)
		}
	}
}
