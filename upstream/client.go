// Package upstream is the client of the business-administration REST backend
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/environment"
	"go.uber.org/zap"
)

// backend authentication endpoints
const (
	loginEndpoint         = "/api/auth/login"
	employeeLoginEndpoint = "/api/employees/login"
)

const defaultMaxBodyBytes = 10 * 1024 * 1024

// Client is the interface for requests to the REST backend
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	EmployeeLogin(ctx context.Context, email, password string) (*LoginResult, error)
	List(ctx context.Context, token, endpoint string) ([]entities.Record, error)
	Get(ctx context.Context, token, endpoint, id string) (entities.Record, error)
}

type restClient struct {
	logger       *zap.Logger
	baseURL      string
	httpClient   *http.Client
	maxBodyBytes int64
}

// NewClient creates a Client for the backend at API_URL
func NewClient(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env) (Client, error) {
	baseURL := strings.TrimRight(env.Get(environment.APIURL), "/")
	if len(baseURL) == 0 {
		return nil, errors.Errorf("%s is not set", environment.APIURL)
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", environment.APIURL)
	}

	maxBodyBytes := cfg.Upstream.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	return &restClient{
		logger:  logger,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Upstream.Timeout) * time.Second,
		},
		maxBodyBytes: maxBodyBytes,
	}, nil
}

func (c *restClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, loginEndpoint, email, password)
}

func (c *restClient) EmployeeLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, employeeLoginEndpoint, email, password)
}

func (c *restClient) login(ctx context.Context, endpoint, email, password string) (*LoginResult, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, errors.Wrap(err, "could not encode login request")
	}

	respBody, err := c.do(ctx, http.MethodPost, endpoint, "", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.Wrap(ErrUnexpectedPayload, err.Error())
	}
	if len(result.Token) == 0 {
		return nil, errors.Wrap(ErrUnexpectedPayload, "login response has no token")
	}
	if len(result.Email) == 0 {
		result.Email = email
	}

	return &result, nil
}

func (c *restClient) List(ctx context.Context, token, endpoint string) ([]entities.Record, error) {
	respBody, err := c.do(ctx, http.MethodGet, endpoint, token, nil)
	if err != nil {
		return nil, err
	}

	payload, err := decode(respBody)
	if err != nil {
		return nil, err
	}

	return recordsFromPayload(payload)
}

func (c *restClient) Get(ctx context.Context, token, endpoint, id string) (entities.Record, error) {
	respBody, err := c.do(ctx, http.MethodGet, strings.TrimRight(endpoint, "/")+"/"+url.PathEscape(id), token, nil)
	if err != nil {
		return nil, err
	}

	payload, err := decode(respBody)
	if err != nil {
		return nil, err
	}

	object, ok := payload.(map[string]interface{})
	if !ok {
		return nil, errors.Wrap(ErrUnexpectedPayload, "item is not an object")
	}
	return entities.Record(object), nil
}

// do sends a request to the backend and returns the body of a 2xx response
func (c *restClient) do(ctx context.Context, method, endpoint, token string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request to backend failed", zap.String("method", method), zap.String("endpoint", endpoint), zap.Error(err))
		return nil, errors.Wrap(ErrRequestFailed, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		c.logger.Error("could not read backend response", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, errors.Wrap(ErrRequestFailed, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("backend responded with error status",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return nil, newStatusError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

func decode(body []byte) (interface{}, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var payload interface{}
	if err := decoder.Decode(&payload); err != nil {
		return nil, errors.Wrap(ErrUnexpectedPayload, err.Error())
	}
	return payload, nil
}

// recordsFromPayload accepts a bare array of objects or an object wrapping the array in "content"
func recordsFromPayload(payload interface{}) ([]entities.Record, error) {
	switch v := payload.(type) {
	case nil:
		return []entities.Record{}, nil
	case []interface{}:
		return recordsFromArray(v)
	case map[string]interface{}:
		content, ok := v["content"]
		if !ok {
			return nil, errors.Wrap(ErrUnexpectedPayload, "object has no content")
		}
		if content == nil {
			return []entities.Record{}, nil
		}
		items, ok := content.([]interface{})
		if !ok {
			return nil, errors.Wrap(ErrUnexpectedPayload, "content is not an array")
		}
		return recordsFromArray(items)
	}
	return nil, errors.Wrap(ErrUnexpectedPayload, "list is neither an array nor an object")
}

func recordsFromArray(items []interface{}) ([]entities.Record, error) {
	records := make([]entities.Record, 0, len(items))
	for _, item := range items {
		object, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.Wrap(ErrUnexpectedPayload, "list item is not an object")
		}
		records = append(records, entities.Record(object))
	}
	return records, nil
}
