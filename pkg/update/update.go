package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mod/semver"
)

const (
	LatestReleaseURL = "https://api.github.com/repos/devRabbiz/waveboxapp/releases/latest"
	updateCheckFile  = ".update_check.json"
)

type release struct {
	TagName    string `json:"tag_name"`
	ReleaseURL string `json:"html_url"`
}

// updateCheck is the cached result of the last check
type updateCheck struct {
	LastChecked   time.Time `json:"last_checked"`
	LatestVersion string    `json:"latest_version"`
	ReleaseURL    string    `json:"release_url,omitempty"`
}

type LatestReleaseInfo struct {
	TagName    string
	ReleaseURL string
	HasUpdate  bool
}

// Checker looks up the latest release, at most once per interval
type Checker struct {
	currentVersion string
	storageDir     string
	url            string
	interval       time.Duration
	httpClient     *http.Client
}

type Option func(*Checker)

// WithURL overrides the release endpoint
func WithURL(url string) Option {
	return func(c *Checker) {
		c.url = url
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) {
		c.httpClient = client
	}
}

func New(currentVersion, storageDir string, interval time.Duration, opts ...Option) *Checker {
	c := &Checker{
		currentVersion: currentVersion,
		storageDir:     storageDir,
		url:            LatestReleaseURL,
		interval:       interval,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check reports whether a newer release exists. A cached result younger than
// the interval is reused.
func (c *Checker) Check(ctx context.Context) (*LatestReleaseInfo, error) {
	if last := c.lastCheck(); last != nil && time.Since(last.LastChecked) < c.interval {
		return c.info(last.LatestVersion, last.ReleaseURL), nil
	}

	r, err := c.latestRelease(ctx)
	if err != nil {
		return nil, err
	}

	_ = c.save(updateCheck{
		LastChecked:   time.Now(),
		LatestVersion: r.TagName,
		ReleaseURL:    r.ReleaseURL,
	})

	return c.info(r.TagName, r.ReleaseURL), nil
}

func (c *Checker) info(tag, url string) *LatestReleaseInfo {
	return &LatestReleaseInfo{
		TagName:    tag,
		ReleaseURL: url,
		HasUpdate:  c.isNewer(tag),
	}
}

// isNewer compares against the running version. Development builds never update.
func (c *Checker) isNewer(latest string) bool {
	if !semver.IsValid(c.currentVersion) {
		return false
	}

	return semver.Compare(c.currentVersion, latest) < 0
}

func (c *Checker) lastCheck() *updateCheck {
	data, err := os.ReadFile(filepath.Join(c.storageDir, updateCheckFile))
	if err != nil {
		return nil
	}

	var last updateCheck
	if err := json.Unmarshal(data, &last); err != nil {
		return nil
	}

	return &last
}

func (c *Checker) latestRelease(ctx context.Context) (*release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "wbmenu-update-checker")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release info: %w", err)
	}

	//nolint:errcheck
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("release endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var r release
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode release info: %w", err)
	}

	return &r, nil
}

func (c *Checker) save(check updateCheck) error {
	data, err := json.MarshalIndent(check, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.storageDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(c.storageDir, updateCheckFile), data, 0o644)
}
