package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestPredictCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict-category" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body["title"] != "Peugeot 206 for sale" {
			t.Errorf("title = %q", body["title"])
		}
		json.NewEncoder(w).Encode(CategoryPrediction{Category: "vehicles", Confidence: 0.93})
	}))
	defer server.Close()

	os.Setenv("ML_API_URL", server.URL)

	prediction, err := PredictCategory("Peugeot 206 for sale", "low mileage, clean body")
	if err != nil {
		t.Fatalf("PredictCategory returned error: %v", err)
	}
	if prediction.Category != "vehicles" {
		t.Errorf("category = %q, want vehicles", prediction.Category)
	}
	if prediction.Confidence != 0.93 {
		t.Errorf("confidence = %v, want 0.93", prediction.Confidence)
	}
}

func TestPredictCategoryServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	os.Setenv("ML_API_URL", server.URL)

	if _, err := PredictCategory("anything", ""); err == nil {
		t.Fatal("expected error when classifier API fails")
	}
}
