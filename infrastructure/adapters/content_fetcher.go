package adapters

import (
	"fmt"
	"io"
	"net/http"

	"github.com/larrywang1/ai-newscast/application/ports/outbound"
)

// ContentFetcher executes one HTTP request and returns the response payload.
// Non-2xx statuses are errors; the body is drained into the error message.
type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	defer func() {
		if err := res.Body.Close(); err != nil {
			c.logger.Error(err, "Failed to close the response body")
		}
	}()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		c.logger.ErrorWithFields(nil, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(payload),
		})
		return nil, fmt.Errorf("HTTP request returned status code %d", res.StatusCode)
	}

	return payload, nil
}
