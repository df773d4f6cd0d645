// Package client provides commands that exercise a running API server
// over REST
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the character sheet API",
	Long:  `Client commands make real HTTP requests against a running server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:3000", "API server base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the raw response data")

	// Catalog commands
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(backgroundCmd)

	// Character commands
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(levelUpCmd)
	ClientCmd.AddCommand(skillCheckCmd)
	ClientCmd.AddCommand(addItemCmd)
	ClientCmd.AddCommand(equipCmd)
}

// envelope mirrors the server's response wrapper
type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Count   *int                `json:"count"`
	Error   string              `json:"error"`
	Reason  string              `json:"reason"`
	Errors  map[string][]string `json:"errors"`
}

// APIError is a non-success response from the server
type APIError struct {
	Status  int
	Reason  string
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s: %s", e.Status, e.Reason, e.Message)
	for field, msgs := range e.Fields {
		fmt.Fprintf(&b, "\n  %s: %s", field, strings.Join(msgs, "; "))
	}
	return b.String()
}

// restClient talks to the /api/v1 routes
type restClient struct {
	base string
	http *http.Client
}

func newRESTClient(base string) *restClient {
	return &restClient{
		base: strings.TrimRight(base, "/") + "/api/v1",
		http: &http.Client{},
	}
}

// do sends body as JSON and decodes the response data into out when given
func (c *restClient) do(ctx context.Context, method, path string, query url.Values, body, out any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return nil, fmt.Errorf("failed to decode %d response: %w", resp.StatusCode, err)
	}
	if !env.Success {
		return env, &APIError{
			Status:  resp.StatusCode,
			Reason:  env.Reason,
			Message: env.Error,
			Fields:  env.Errors,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env, fmt.Errorf("failed to decode data: %w", err)
		}
	}
	return env, nil
}

// call wraps do with the timeout flag and the shared client
func call(method, path string, query url.Values, body, out any) (*envelope, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return newRESTClient(serverAddr).do(ctx, method, path, query, body, out)
}

// printRaw writes indented response data to stdout
func printRaw(env *envelope) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, env.Data, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(os.Stdout)
	return err
}

// readJSONFile decodes a JSON document from path, or stdin for "-"
func readJSONFile(path string, out any) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path) // #nosec G304 -- operator supplied path
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
