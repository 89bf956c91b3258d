package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	config "github.com/arshia84/bazaarche/configs"
)

// CategoryPrediction is the response of the external ad classifier API.
type CategoryPrediction struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

var classifierClient = &http.Client{Timeout: 10 * time.Second}

// PredictCategory asks the ML classifier service to suggest a category slug
// for an ad title and description.
func PredictCategory(title, description string) (*CategoryPrediction, error) {
	baseURL := config.Config("ML_API_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("ML API URL not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"title":       title,
		"description": description,
	})
	if err != nil {
		return nil, err
	}

	resp, err := classifierClient.Post(baseURL+"/predict-category", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier API returned status %d", resp.StatusCode)
	}

	var prediction CategoryPrediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, err
	}

	return &prediction, nil
}
