// Command test_integration is a smoke client for a running server.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := os.Getenv("SHORTLIST_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	fmt.Println("1. Validating question...")
	var verdict struct {
		Allowed bool   `json:"allowed"`
		Message string `json:"message"`
	}
	question := map[string]string{"question": "Which customers should we prioritize next quarter?"}
	if !sendRequest(baseURL, "POST", "/api/validate", question, &verdict) || !verdict.Allowed {
		fmt.Printf("FAILED: Validate (%s)\n", verdict.Message)
		os.Exit(1)
	}
	fmt.Println("PASSED: Validate")

	fmt.Println("2. Computing delta...")
	var cmp struct {
		Added   []string `json:"added"`
		Removed []string `json:"removed"`
	}
	deltaPayload := map[string]any{
		"initial": "I recommend MediCore Clinics, FinSure Partners, and SolarEdge Europe because of their steady performance.",
		"revised": "I would prioritize MediCore Clinics and FinSure Partners. SolarEdge Europe is removed as its YTD purchase amount is significantly lower.",
	}
	if !sendRequest(baseURL, "POST", "/api/delta", deltaPayload, &cmp) || len(cmp.Removed) != 1 || cmp.Removed[0] != "SolarEdge Europe" {
		fmt.Printf("FAILED: Delta (added=%v removed=%v)\n", cmp.Added, cmp.Removed)
		os.Exit(1)
	}
	fmt.Println("PASSED: Delta")

	fmt.Println("3. Running full flow...")
	if !sendRequest(baseURL, "POST", "/api/flow", question, nil) {
		fmt.Println("FAILED: Flow")
		os.Exit(1)
	}
	fmt.Println("PASSED: Flow")
}

func sendRequest(baseURL, method, endpoint string, payload, out any) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}
	fmt.Printf("Response: %s\n", string(respBody))

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			fmt.Printf("Error decoding response: %v\n", err)
			return false
		}
	}
	return true
}
