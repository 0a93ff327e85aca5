package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const DefaultAirtableURL = "https://api.airtable.com/v0"

type AirtableConfig struct {
	APIURL string
	BaseID string
	Table  string
	Token  string // personal access token
}

type AirtableSink struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewAirtableSink builds the table endpoint once. A nil client means
// http.DefaultClient: no timeout beyond the transport's own.
func NewAirtableSink(cfg AirtableConfig, client *http.Client) *AirtableSink {
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultAirtableURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &AirtableSink{
		endpoint: apiURL + "/" + cfg.BaseID + "/" + url.PathEscape(cfg.Table),
		token:    cfg.Token,
		client:   client,
	}
}

// Имена полей должны совпадать с колонками таблицы.
type airtableFields struct {
	Prompt    string `json:"Prompt"`
	Response  string `json:"Response"`
	SessionID string `json:"SessionId"`
}

type airtableRecord struct {
	Fields airtableFields `json:"fields"`
}

type airtableCreate struct {
	Records []airtableRecord `json:"records"`
}

func (s *AirtableSink) Write(ctx context.Context, rec Record) error {
	b, err := json.Marshal(airtableCreate{
		Records: []airtableRecord{{
			Fields: airtableFields{
				Prompt:    rec.Prompt,
				Response:  rec.Response,
				SessionID: rec.SessionID,
			},
		}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.endpoint,
		bytes.NewReader(b),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("airtable request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("airtable api error: %s body=%s", resp.Status, string(respBody))
	}

	return nil
}
