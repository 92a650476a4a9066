package submitlog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/WriteYourMP/WYM-Backend/internal/config"
	"github.com/google/uuid"
)

// Submission is the metadata the frontend reports after the visitor's mail
// client opens. Field names match the original sheet payload.
type Submission struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	PostalCode string `json:"postalCode"`
	MPName     string `json:"mpName"`
	MPEmail    string `json:"mpEmail"`
}

const forwardTimeout = 15 * time.Second

var (
	webhookURL string
	httpClient = &http.Client{Timeout: forwardTimeout}
)

func Init(cfg config.Config) {
	webhookURL = cfg.SheetWebhookURL
	if webhookURL == "" {
		log.Println("[submitlog] SHEET_WEBHOOK_URL not set, submissions will be logged only")
	}
}

// LogSubmission accepts a submission record, acknowledges it immediately
// and forwards it to the spreadsheet webhook in the background. Webhook
// failures are logged and never surfaced: the visitor's email has already
// been sent by the time this runs.
func LogSubmission(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MiB
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "payload too large or unreadable", http.StatusRequestEntityTooLarge)
		return
	}
	defer r.Body.Close()

	var sub Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	log.Printf("[submitlog] %s postal=%s mp=%q", id, sub.PostalCode, sub.MPName)

	if webhookURL != "" {
		go forward(id, raw)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte(`{"ok":true}`))
}

func forward(id string, payload []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), forwardTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		log.Printf("[submitlog] %s build webhook request: %v", id, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		log.Printf("[submitlog] %s webhook post failed: %v", id, err)
		return
	}
	defer resp.Body.Close()

	// Apps Script answers 200 or a 302 to a result page; anything else is
	// worth a log line.
	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("[submitlog] %s webhook responded %d", id, resp.StatusCode)
	}
}
