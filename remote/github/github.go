// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

// Package github adapts the GitHub contents and commits APIs to the
// remote.Store capability surface. One badge store maps to one repository;
// every WriteFile call lands as a single commit on the configured branch.
package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"emperror.dev/emperror"
	gogithub "github.com/google/go-github/v48/github"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/badgesmith/badgesmith/remote"
)

var (
	ErrOwnerEmpty = errors.New("repository owner is required")
	ErrRepoEmpty  = errors.New("repository name is required")
	ErrBadBaseURL = errors.New("api base URL could not be parsed")
)

// ClientConfig contains config data for the GitHub-backed remote store.
type ClientConfig struct {
	// Owner is the user or organization owning the badge repository.
	Owner string

	// Repo is the badge repository name.
	Repo string

	// Branch is the branch writes land on.
	// (Optional) Defaults to the repository's default branch.
	Branch string

	// Token is the OAuth access token used for API calls.
	// (Optional) Anonymous access works for public repository reads.
	Token string

	// Timeout bounds each individual API call.
	// (Optional) Defaults to 30s.
	Timeout time.Duration

	// APIBaseURL overrides the GitHub API endpoint, for GitHub Enterprise
	// or test servers.
	// (Optional) Defaults to the public API.
	APIBaseURL string

	// HTTPClient is the client used to send requests. When a Token is set
	// this client becomes the oauth2 transport's base.
	// (Optional) Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger to be used by the client.
	// (Optional) By default a no op logger will be used.
	Logger *zap.Logger
}

// Client implements remote.Store on top of the GitHub API.
type Client struct {
	gh        *gogithub.Client
	owner     string
	repo      string
	branch    string
	timeout   time.Duration
	logger    *zap.Logger
	getLogger func(context.Context) *zap.Logger
}

const defaultTimeout = 30 * time.Second

// NewClient creates a Client from the given config.
func NewClient(config ClientConfig, getLogger func(context.Context) *zap.Logger) (*Client, error) {
	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	if getLogger == nil {
		getLogger = sallust.Get
	}

	httpClient := config.HTTPClient
	if config.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token})
		ctx := context.Background()
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		httpClient = oauth2.NewClient(ctx, ts)
	}

	gh := gogithub.NewClient(httpClient)
	if config.APIBaseURL != "" {
		base, err := url.Parse(config.APIBaseURL)
		if err != nil {
			return nil, emperror.WrapWith(ErrBadBaseURL, err.Error(), "baseURL", config.APIBaseURL)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		gh.BaseURL = base
	}

	return &Client{
		gh:        gh,
		owner:     config.Owner,
		repo:      config.Repo,
		branch:    config.Branch,
		timeout:   config.Timeout,
		logger:    config.Logger,
		getLogger: getLogger,
	}, nil
}

func validateConfig(config *ClientConfig) error {
	if config.Owner == "" {
		return ErrOwnerEmpty
	}
	if config.Repo == "" {
		return ErrRepoEmpty
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}
	if config.Logger == nil {
		config.Logger = sallust.Default()
	}
	return nil
}

// ListTree lists one directory level of the repository tree.
func (c *Client) ListTree(ctx context.Context, path string) ([]remote.TreeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := &gogithub.RepositoryContentGetOptions{Ref: c.branch}
	_, dir, resp, err := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path, opts)
	if err != nil {
		return nil, remote.ReadError{Operation: remote.ListTreeOperation, Path: path, Err: translateErr(resp, err)}
	}

	entries := make([]remote.TreeEntry, 0, len(dir))
	for _, item := range dir {
		kind := remote.KindFile
		if item.GetType() == "dir" {
			kind = remote.KindDir
		}
		entries = append(entries, remote.TreeEntry{Name: item.GetName(), Kind: kind})
	}
	return entries, nil
}

// ListCommits returns one page of the branch history, newest first.
func (c *Client) ListCommits(ctx context.Context, page int) ([]remote.Commit, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := &gogithub.CommitsListOptions{
		SHA: c.branch,
		ListOptions: gogithub.ListOptions{
			Page:    page,
			PerPage: remote.CommitPageSize,
		},
	}
	repoCommits, resp, err := c.gh.Repositories.ListCommits(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, remote.ReadError{Operation: remote.ListCommitsOperation, Err: translateErr(resp, err)}
	}

	commits := make([]remote.Commit, 0, len(repoCommits))
	for _, rc := range repoCommits {
		commits = append(commits, remote.Commit{Message: rc.GetCommit().GetMessage()})
	}
	return commits, nil
}

// WriteFile creates or overwrites one file as a single commit. Overwrites
// require the current blob SHA, which is fetched only after a create attempt
// is refused.
func (c *Client) WriteFile(ctx context.Context, path, message string, content []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := &gogithub.RepositoryContentFileOptions{
		Message: gogithub.String(message),
		Content: content,
	}
	if c.branch != "" {
		opts.Branch = gogithub.String(c.branch)
	}

	_, resp, err := c.gh.Repositories.CreateFile(ctx, c.owner, c.repo, path, opts)
	if err == nil {
		return nil
	}
	if resp == nil || resp.StatusCode != http.StatusUnprocessableEntity {
		c.getLoggerFor(ctx).Error("remote file create failed",
			zap.String("path", path), zap.Error(err))
		return remote.WriteError{Path: path, Err: translateErr(resp, err)}
	}

	// 422 on create usually means the file already exists; retry as an
	// update with its current SHA.
	getOpts := &gogithub.RepositoryContentGetOptions{Ref: c.branch}
	existing, _, getResp, getErr := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path, getOpts)
	if getErr != nil || existing == nil {
		return remote.WriteError{Path: path, Err: translateErr(getResp, getErr)}
	}

	opts.SHA = existing.SHA
	_, resp, err = c.gh.Repositories.UpdateFile(ctx, c.owner, c.repo, path, opts)
	if err != nil {
		c.getLoggerFor(ctx).Error("remote file update failed",
			zap.String("path", path), zap.Error(err))
		return remote.WriteError{Path: path, Err: translateErr(resp, err)}
	}
	return nil
}

func (c *Client) getLoggerFor(ctx context.Context) *zap.Logger {
	l := c.getLogger(ctx)
	if l == nil {
		l = c.logger
	}
	return l
}

// translateErr maps GitHub response codes onto the package sentinel errors so
// callers can branch with errors.Is without knowing the SDK.
func translateErr(resp *gogithub.Response, err error) error {
	if resp == nil {
		if err == nil {
			return remote.ErrNonSuccessResponse
		}
		return err
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return remote.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return remote.ErrFailedAuthentication
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return emperror.Wrap(remote.ErrConflict, errString(err))
	default:
		return emperror.Wrap(remote.ErrNonSuccessResponse, errString(err))
	}
}

func errString(err error) string {
	if err == nil {
		return "no error detail"
	}
	return err.Error()
}
