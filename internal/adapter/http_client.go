package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/case-mirror/models"
	"github.com/go-resty/resty/v2"
)

type HTTPGatewayConfig struct {
	BaseURI   string
	APIUser   string
	APIKey    string
	Timeout   time.Duration
	PageLimit int
}

type httpCaseGateway struct {
	client    *resty.Client
	pageLimit int
}

// NewHTTPCaseGateway constructs a [RemoteCaseGateway] speaking the remote
// case service's REST protocol. Every request carries the
// "apikey user:key" Authorization header.
func NewHTTPCaseGateway(cfg HTTPGatewayConfig) RemoteCaseGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 1000
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURI, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", fmt.Sprintf("apikey %s:%s", cfg.APIUser, cfg.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &httpCaseGateway{client: cli, pageLimit: cfg.PageLimit}
}

func (g *httpCaseGateway) ListPage(ctx context.Context, offset int) ([]models.Case, int, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(g.pageLimit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		Get("/case/")
	if err != nil {
		return nil, NoNextPage, fmt.Errorf("list cases request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapRemoteError(resp); err != nil {
		return nil, NoNextPage, err
	}

	var page models.CasePage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, NoNextPage, fmt.Errorf("decode case page at offset %d: %w", offset, err)
	}

	cases := make([]models.Case, 0, len(page.Objects))
	for _, obj := range page.Objects {
		c, convErr := models.CaseFromRemote(obj)
		if convErr != nil {
			return nil, NoNextPage, fmt.Errorf("case page at offset %d: %w", offset, convErr)
		}
		cases = append(cases, c)
	}

	next := NoNextPage
	if page.Meta.Next != nil && *page.Meta.Next != "" {
		next = offset + g.pageLimit
	}

	return cases, next, nil
}

func (g *httpCaseGateway) CreateCase(ctx context.Context, attributes json.RawMessage) (models.Case, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(attributes).
		Post("/case/")
	if err != nil {
		return models.Case{}, fmt.Errorf("create case request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapRemoteError(resp); err != nil {
		return models.Case{}, err
	}

	c, err := models.CaseFromRemote(resp.Body())
	if err != nil {
		return models.Case{}, fmt.Errorf("decode create case response: %w", err)
	}
	return c, nil
}

func (g *httpCaseGateway) UpdateCase(ctx context.Context, id string, attributes json.RawMessage) (models.Case, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(attributes).
		Put("/case/" + id + "/")
	if err != nil {
		return models.Case{}, fmt.Errorf("update case %s request: %w: %w", id, ErrRemoteUnavailable, err)
	}
	if err = mapRemoteError(resp); err != nil {
		return models.Case{}, err
	}

	c, err := models.CaseFromRemote(resp.Body())
	if err != nil {
		return models.Case{}, fmt.Errorf("decode update case response: %w", err)
	}
	return c, nil
}

func (g *httpCaseGateway) DeleteCase(ctx context.Context, id string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		Delete("/case/" + id + "/")
	if err != nil {
		return fmt.Errorf("delete case %s request: %w: %w", id, ErrRemoteUnavailable, err)
	}

	return mapRemoteError(resp)
}

// mapRemoteError translates a non-2xx remote response into one of the
// package sentinels, keeping the status and response body in the message.
func mapRemoteError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteValidation, status, body)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteNotFound, status, body)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteUnauthorized, status, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteUnavailable, status, body)
	}
}
