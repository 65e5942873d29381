// Command seeder pre-generates match histories by calling POST /seed for each uid.
//
//	seeder -api http://localhost:3001 alice bob carol
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonie-n/valodash-backend/internal/models"
)

func main() {
	apiURL := flag.String("api", "http://localhost:3001", "API base URL")
	timeout := flag.Duration("timeout", 5*time.Second, "per-request timeout")
	flag.Parse()

	uids := flag.Args()
	if len(uids) == 0 {
		fmt.Fprintln(os.Stderr, "usage: seeder [-api URL] uid [uid...]")
		os.Exit(2)
	}

	client := &http.Client{Timeout: *timeout}
	runID := uuid.NewString()

	failed := 0
	for _, uid := range uids {
		doc, err := seed(client, *apiURL, runID, uid)
		if err != nil {
			log.Printf("❌ %s: %v", uid, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s: %d matches (latest %s)\n", doc.UID, len(doc.Matches), doc.Matches[0].Date)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func seed(client *http.Client, apiURL, runID, uid string) (*models.UserMatchDocument, error) {
	payload, err := json.Marshal(models.SeedRequest{UID: uid})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, apiURL+"/seed", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", runID+"-"+uid)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s: %s", resp.Status, bytes.TrimSpace(body))
	}

	var doc models.UserMatchDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(doc.Matches) == 0 {
		return nil, fmt.Errorf("response has no matches")
	}
	return &doc, nil
}
