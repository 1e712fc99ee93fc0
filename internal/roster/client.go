// Package roster is a read-only client for the external candidate roster
// service. It is consulted only when an organizer creates or edits a quiz,
// never on the analytics path.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"rushvote/internal/repository/models"
)

type Client struct {
	baseURL    string
	apiKey     string
	table      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, table string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		table:      table,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type record struct {
	ID     string `json:"id"`
	Fields struct {
		Name  string `json:"applicant_name"`
		Year  string `json:"year"`
		Photo string `json:"photo"`
	} `json:"fields"`
}

type listResponse struct {
	Records []record `json:"records"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ListCandidates fetches the full roster.
func (c *Client) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, c.table)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build roster request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("roster request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read roster response: %w", err)
	}

	var parsed listResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal roster response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("roster: %s: %s", parsed.Error.Type, parsed.Error.Message)
		}
		return nil, fmt.Errorf("roster: unexpected status %d", resp.StatusCode)
	}

	candidates := make([]models.Candidate, 0, len(parsed.Records))
	for _, rec := range parsed.Records {
		year, _ := strconv.Atoi(rec.Fields.Year)
		candidates = append(candidates, models.Candidate{
			ID:        rec.ID,
			Name:      rec.Fields.Name,
			ClassYear: year,
			PhotoURL:  rec.Fields.Photo,
		})
	}
	return candidates, nil
}
