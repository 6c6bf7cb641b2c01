// Package client provides the client-side library for the news
// portal's REST API. It keeps the session cookie across calls, so one
// Client logs in once and performs any number of operations.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// NewsItem is one article as returned by the API.
type NewsItem struct {
	ID          string `json:"id"`
	Heading     string `json:"heading"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	WebsiteLink string `json:"websiteLink,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// NewsDraft carries the fields the server accepts when publishing.
type NewsDraft struct {
	Heading     string `json:"heading"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	WebsiteLink string `json:"websiteLink,omitempty"`
}

// AccountInfo is one account as returned by the management API.
type AccountInfo struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Client is a remote client for the news portal.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the portal at baseURL, e.g.
// "http://localhost:3000". The session cookie lives in an in-memory jar.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
	}, nil
}

// Login authenticates the client's session and returns the admin page
// the role would land on.
func (c *Client) Login(username, password string) (string, error) {
	var out struct {
		RedirectTo string `json:"redirectTo"`
	}
	err := c.do(http.MethodPost, "/api/login/admin",
		map[string]string{"username": username, "password": password}, &out)
	return out.RedirectTo, err
}

// Logout drops the session.
func (c *Client) Logout() error {
	return c.do(http.MethodPost, "/api/logout", nil, nil)
}

// News lists a partition's items, newest first. Pass "" or "global"
// for the global partition.
func (c *Client) News(partition string) ([]NewsItem, error) {
	var items []NewsItem
	err := c.do(http.MethodGet, partitionPath(partition)+"/news", nil, &items)
	return items, err
}

// CreateNews publishes a draft and returns the stored item with its
// server-assigned id and timestamp.
func (c *Client) CreateNews(partition string, draft NewsDraft) (NewsItem, error) {
	var item NewsItem
	err := c.do(http.MethodPost, partitionPath(partition)+"/news", draft, &item)
	return item, err
}

// UpdateNews sends a partial update; only the fields present in patch
// change. Id and timestamp are immutable.
func (c *Client) UpdateNews(partition, id string, patch map[string]string) (NewsItem, error) {
	var item NewsItem
	err := c.do(http.MethodPut, partitionPath(partition)+"/news/"+id, patch, &item)
	return item, err
}

// DeleteNews removes an item by id.
func (c *Client) DeleteNews(partition, id string) error {
	return c.do(http.MethodDelete, partitionPath(partition)+"/news/"+id, nil, nil)
}

// Categories lists a partition's category names.
func (c *Client) Categories(partition string) ([]string, error) {
	var names []string
	err := c.do(http.MethodGet, partitionPath(partition)+"/news-categories", nil, &names)
	return names, err
}

// CreateCategory appends a category and returns the updated list.
func (c *Client) CreateCategory(partition, name string) ([]string, error) {
	var names []string
	err := c.do(http.MethodPost, partitionPath(partition)+"/news-categories",
		map[string]string{"category": name}, &names)
	return names, err
}

// DeleteCategory removes an unreferenced category.
func (c *Client) DeleteCategory(partition, name string) error {
	return c.do(http.MethodDelete, partitionPath(partition)+"/news-categories/"+name, nil, nil)
}

// Users lists every account, editor sessions only.
func (c *Client) Users() ([]AccountInfo, error) {
	var infos []AccountInfo
	err := c.do(http.MethodGet, "/api/users", nil, &infos)
	return infos, err
}

// CreateUser adds an account, editor sessions only.
func (c *Client) CreateUser(id, password, role string) (AccountInfo, error) {
	var info AccountInfo
	err := c.do(http.MethodPost, "/api/users",
		map[string]string{"id": id, "password": password, "role": role}, &info)
	return info, err
}

// DeleteUser removes an account, editor sessions only.
func (c *Client) DeleteUser(id string) error {
	return c.do(http.MethodDelete, "/api/users/"+id, nil, nil)
}

// Export retrieves the whole multi-partition store as raw JSON,
// editor sessions only.
func (c *Client) Export() (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.do(http.MethodGet, "/api/export", nil, &raw)
	return raw, err
}

// Health checks whether the portal is up.
func (c *Client) Health() error {
	return c.do(http.MethodGet, "/api/health", nil, nil)
}

func partitionPath(partition string) string {
	if partition == "" || partition == "global" {
		return "/api"
	}
	return "/api/" + partition
}

// do performs one round trip. Error responses are surfaced as Go
// errors carrying the server's message and the status code.
func (c *Client) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return fmt.Errorf("%s %s: HTTP %d", method, path, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: %s (HTTP %d)", method, path, apiErr.Message, resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
