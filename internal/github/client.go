package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cli/go-gh/v2/pkg/api"
)

// Client wraps the GitHub REST API.
type Client struct {
	rest *api.RESTClient
}

// FetchResult contains the result of a fetch operation.
type FetchResult struct {
	Content string
	SHA     string
}

// NewClient creates a GitHub client with a token from GetToken, falling back
// to an unauthenticated client (public repos, 60 requests/hour).
func NewClient() (*Client, error) {
	if token, err := GetToken(); err == nil {
		return NewClientWithToken(token)
	}
	return NewUnauthenticatedClient()
}

// NewClientWithToken creates a GitHub client with explicit token.
func NewClientWithToken(token string) (*Client, error) {
	client, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: token,
	})
	if err != nil {
		return nil, err
	}
	return &Client{rest: client}, nil
}

// NewUnauthenticatedClient creates a GitHub client without authentication.
func NewUnauthenticatedClient() (*Client, error) {
	client, err := api.NewRESTClient(api.ClientOptions{})
	if err != nil {
		return nil, err
	}
	return &Client{rest: client}, nil
}

// fileContentsResponse represents GitHub's contents API response.
type fileContentsResponse struct {
	Type     string `json:"type"`
	Encoding string `json:"encoding"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	SHA      string `json:"sha"`
}

// FetchFile fetches a file from a repo.
func (c *Client) FetchFile(ctx context.Context, owner, repo, path, branch string) (*FetchResult, error) {
	if owner == "" || repo == "" || path == "" {
		return nil, fmt.Errorf("owner, repo, and path are required")
	}

	var response fileContentsResponse
	if err := c.rest.DoWithContext(ctx, http.MethodGet, contentsEndpoint(owner, repo, path, branch), nil, &response); err != nil {
		return nil, err
	}

	content, err := base64.StdEncoding.DecodeString(response.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	return &FetchResult{
		Content: string(content),
		SHA:     response.SHA,
	}, nil
}

// GetDefaultBranch returns the repo's default branch.
func (c *Client) GetDefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	var response struct {
		DefaultBranch string `json:"default_branch"`
	}
	if err := c.rest.DoWithContext(ctx, http.MethodGet, fmt.Sprintf("repos/%s/%s", owner, repo), nil, &response); err != nil {
		return "", err
	}
	return response.DefaultBranch, nil
}

// DirectoryEntry represents an item in a directory listing.
type DirectoryEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"` // "file" or "dir"
	SHA  string `json:"sha"`
}

// ListDirectory lists contents of a directory in a repo.
// Returns nil, nil if the directory doesn't exist.
func (c *Client) ListDirectory(ctx context.Context, owner, repo, path, branch string) ([]DirectoryEntry, error) {
	var response []DirectoryEntry
	err := c.rest.DoWithContext(ctx, http.MethodGet, contentsEndpoint(owner, repo, path, branch), nil, &response)
	if err != nil {
		if httpErr, ok := err.(*api.HTTPError); ok {
			if httpErr.StatusCode == http.StatusNotFound {
				return nil, nil
			}
		}
		return nil, err
	}
	return response, nil
}

func contentsEndpoint(owner, repo, path, branch string) string {
	endpoint := fmt.Sprintf("repos/%s/%s/contents/%s", owner, repo, url.PathEscape(path))
	if branch != "" {
		endpoint += "?ref=" + url.QueryEscape(branch)
	}
	return endpoint
}
