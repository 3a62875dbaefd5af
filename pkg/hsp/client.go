package hsp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/raildelay/raildelay/pkg/config"
)

// Client talks to the Historical Service Performance API. Every call is a
// single blocking POST with basic auth; there are no retries and no timeout
// beyond the transport default.
type Client struct {
	Endpoint string

	username string
	password string

	httpClient *http.Client
}

func NewClient(credentials config.Credentials) *Client {
	return &Client{
		Endpoint: credentials.Endpoint,

		username: credentials.Username,
		password: credentials.Password,

		httpClient: &http.Client{},
	}
}

func (c *Client) post(path string, requestBody any, response any) error {
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/%s", c.Endpoint, path), bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(responseBytes, response)
}
