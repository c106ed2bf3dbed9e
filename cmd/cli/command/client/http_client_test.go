package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"litreview/internal/microservices/http-api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SendsJSONAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		json.NewEncoder(w).Encode(dto.AuthResponse{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 900})
	}))
	defer server.Close()

	resp, err := NewHTTPClient(server.URL+"/").Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "acc", resp.AccessToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)
}

func TestAPIError_CarriesFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid input","fields":{"title":"this field is required","image":"is invalid"}}`))
	}))
	defer server.Close()

	c := NewHTTPClient(server.URL)
	c.SetToken("tok")
	_, err := c.CreateTicket(context.Background(), TicketRequest{})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid input (HTTP 400): image: is invalid, title: this field is required", apiErr.Error())
}

func TestRedirectIsReportedNotFollowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	}))
	defer server.Close()

	_, err := NewHTTPClient(server.URL).Feed(context.Background(), 0, 0)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusFound, apiErr.Status)
}

func TestBearerTokenAndFeedQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/posts/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "", r.URL.Query().Get("page_size"))
		json.NewEncoder(w).Encode(dto.NewPaginatedFeedResponse([]dto.FeedItem{}, 0, 2, 20))
	}))
	defer server.Close()

	c := NewHTTPClient(server.URL)
	c.SetToken("tok")
	feed, err := c.Posts(context.Background(), 2, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, feed.Page)
}

func TestFollow_StatusDecidesCreated(t *testing.T) {
	status := http.StatusCreated
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"follows":{"following":[],"followed_by":[],"message":"m"}}`))
	}))
	defer server.Close()
	c := NewHTTPClient(server.URL)

	page, created, err := c.Follow(context.Background(), "bob")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "m", page.Message)

	status = http.StatusOK
	_, created, err = c.Follow(context.Background(), "bob")
	require.NoError(t, err)
	assert.False(t, created)

	status = http.StatusNotFound
	_, _, err = c.Follow(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestCreateTicketWithReview_FlattensBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Dune", body["title"])
		assert.Equal(t, float64(0), body["rating"])
		assert.NotContains(t, body, "ticket_id")

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.TicketReviewResponse{Ticket: dto.TicketResponse{ID: 1}, Review: dto.ReviewResponse{ID: 2}})
	}))
	defer server.Close()

	resp, err := NewHTTPClient(server.URL).CreateTicketWithReview(context.Background(),
		TicketRequest{Title: "Dune"}, ReviewRequest{TicketID: 9, Rating: 0, Headline: "meh"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Review.ID)
}
