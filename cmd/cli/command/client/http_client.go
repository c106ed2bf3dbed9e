package client

// http_client.go talks to the litreview JSON API on behalf of the CLI.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"litreview/internal/microservices/http-api/dto"
)

// APIError is a non-2xx answer of the server
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s (HTTP %d): %s", e.Message, e.Status, strings.Join(parts, ", "))
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			// a redirect means the server treated us as a browser
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends body as JSON and decodes a response with status want into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, want int) error {
	_, err := c.send(ctx, method, path, body, out, want)
	return err
}

// send is do accepting several success statuses; it returns the one received.
func (c *HTTPClient) send(ctx context.Context, method, path string, body, out any, wants ...int) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if !slices.Contains(wants, resp.StatusCode) {
		return resp.StatusCode, decodeAPIError(resp)
	}
	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return resp.StatusCode, nil
}

func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	// a body that is not JSON still yields the status
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Error == "" {
		payload.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: payload.Error, Fields: payload.Fields}
}

func (c *HTTPClient) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var out dto.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/signup/", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/token/refresh/", dto.RefreshTokenRequest{RefreshToken: refreshToken}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/logout/", dto.LogoutRequest{RefreshToken: refreshToken}, nil, http.StatusOK)
}

// Tickets

type TicketRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

type ReviewRequest struct {
	TicketID int64  `json:"ticket_id,omitempty"`
	Rating   int    `json:"rating"`
	Headline string `json:"headline"`
	Body     string `json:"body,omitempty"`
}

func (c *HTTPClient) CreateTicket(ctx context.Context, req TicketRequest) (*dto.TicketResponse, error) {
	var out dto.TicketResponse
	if err := c.do(ctx, http.MethodPost, "/ticket/creation/", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetTicket(ctx context.Context, id int64) (*dto.TicketDetailResponse, error) {
	var out dto.TicketDetailResponse
	if err := c.do(ctx, http.MethodGet, "/ticket/"+strconv.FormatInt(id, 10)+"/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateTicket(ctx context.Context, id int64, req TicketRequest) (*dto.TicketResponse, error) {
	var out dto.TicketResponse
	if err := c.do(ctx, http.MethodPost, "/ticket/"+strconv.FormatInt(id, 10)+"/change/", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteTicket(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, "/ticket/"+strconv.FormatInt(id, 10)+"/delete/", nil, nil, http.StatusOK)
}

// Reviews

func (c *HTTPClient) CreateReview(ctx context.Context, req ReviewRequest) (*dto.ReviewResponse, error) {
	var out dto.ReviewResponse
	if err := c.do(ctx, http.MethodPost, "/review/creation/", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateTicketWithReview(ctx context.Context, ticket TicketRequest, review ReviewRequest) (*dto.TicketReviewResponse, error) {
	body := struct {
		TicketRequest
		ReviewRequest
	}{ticket, review}
	body.ReviewRequest.TicketID = 0

	var out dto.TicketReviewResponse
	if err := c.do(ctx, http.MethodPost, "/ticketReview/creation/", body, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, "/review/"+strconv.FormatInt(id, 10)+"/delete/", nil, nil, http.StatusOK)
}

// Follows and blocks

type FollowPage struct {
	Follows dto.FollowPageResponse `json:"follows"`
}

// Follow follows username. created is false when the server refused
// without failing (self-follow, already following); Message says why.
func (c *HTTPClient) Follow(ctx context.Context, username string) (page *dto.FollowPageResponse, created bool, err error) {
	var out FollowPage
	status, err := c.send(ctx, http.MethodPost, "/review/follow/", dto.FollowUserDTO{Username: username}, &out,
		http.StatusCreated, http.StatusOK)
	if err != nil {
		return nil, false, err
	}
	return &out.Follows, status == http.StatusCreated, nil
}

func (c *HTTPClient) ListFollows(ctx context.Context) (*dto.FollowPageResponse, error) {
	var out FollowPage
	if err := c.do(ctx, http.MethodGet, "/review/follow/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Follows, nil
}

func (c *HTTPClient) Unfollow(ctx context.Context, edgeID int64) error {
	return c.do(ctx, http.MethodPost, "/review/follow/"+strconv.FormatInt(edgeID, 10)+"/delete/", nil, nil, http.StatusOK)
}

func (c *HTTPClient) Block(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/block_user/"+url.PathEscape(userID)+"/", nil, nil, http.StatusOK)
}

func (c *HTTPClient) Unblock(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/unblock_user/"+url.PathEscape(userID)+"/", nil, nil, http.StatusOK)
}

// Feeds

func feedPath(path string, page, pageSize int) string {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func (c *HTTPClient) Feed(ctx context.Context, page, pageSize int) (*dto.PaginatedFeedResponse, error) {
	var out dto.PaginatedFeedResponse
	if err := c.do(ctx, http.MethodGet, feedPath("/flux/", page, pageSize), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Posts(ctx context.Context, page, pageSize int) (*dto.PaginatedFeedResponse, error) {
	var out dto.PaginatedFeedResponse
	if err := c.do(ctx, http.MethodGet, feedPath("/posts/", page, pageSize), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
