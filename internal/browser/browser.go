// Package browser owns the Playwright-backed Chromium process: launching
// it, opening pages, and handing out a CDP session per page. Everything
// past that boundary — navigation, clicking, typing, snapshotting — is the
// concern of internal/cdp and internal/snapshot, which only ever see the
// abstract cdp.Transport, never a playwright.Page directly.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"github.com/polzovatel/browsercli/internal/cdp"
)

const (
	defaultNavTimeout = 30 * time.Second
	headlessEnv       = "BROWSERCLI_HEADLESS"
)

// Launcher owns the Playwright and Chromium process lifecycle.
type Launcher struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	headless   bool
	profileDir string
	log        zerolog.Logger
}

// NewLauncher starts Playwright and launches Chromium under a freshly
// named profile directory, so concurrent invocations of the CLI never
// collide over Chromium's user-data-dir the way ad hoc fixed temp paths
// would.
func NewLauncher(log zerolog.Logger) (*Launcher, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	profileDir := filepath.Join(os.TempDir(), "browsercli-"+uuid.NewString())
	headless := parseBoolEnv(headlessEnv, false)
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args: []string{
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--user-data-dir=" + profileDir,
		},
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	log.Debug().Str("profile_dir", profileDir).Bool("headless", headless).Msg("chromium launched")
	return &Launcher{pw: pw, browser: browser, headless: headless, profileDir: profileDir, log: log}, nil
}

// ProfileDir returns the unique user-data-dir this launch's Chromium
// process is using.
func (l *Launcher) ProfileDir() string {
	return l.profileDir
}

// Close tears down the browser and the Playwright driver, and removes the
// launch's profile directory.
func (l *Launcher) Close() error {
	if l.browser != nil {
		_ = l.browser.Close()
	}
	if l.profileDir != "" {
		_ = os.RemoveAll(l.profileDir)
	}
	if l.pw != nil {
		return l.pw.Stop()
	}
	return nil
}

// Tab bundles a page together with the CDP transport bound to it, since
// every command in cmd/browsercli needs both: the transport to act on the
// page, and the page itself only for the handful of Playwright-native
// conveniences (GoBack, GoForward, Reload) that have no lighter CDP equivalent worth
// reimplementing.
type Tab struct {
	Context   playwright.BrowserContext
	Page      playwright.Page
	Transport cdp.Transport
}

// NewTab opens a fresh browser context and page and attaches a CDP session
// to it, wrapped as a cdp.Transport.
func (l *Launcher) NewTab(ctx context.Context, storagePath string) (*Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := playwright.BrowserNewContextOptions{
		IgnoreHttpsErrors: playwright.Bool(true),
	}
	if strings.TrimSpace(storagePath) != "" {
		opts.StorageStatePath = playwright.String(storagePath)
	}
	bctx, err := l.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("new context: %w", err)
	}
	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("new page: %w", err)
	}
	page.SetDefaultTimeout(float64(defaultNavTimeout.Milliseconds()))

	raw, err := bctx.NewCDPSession(page)
	if err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("attach cdp session: %w", err)
	}

	return &Tab{
		Context:   bctx,
		Page:      page,
		Transport: cdp.NewSession(raw, l.log),
	}, nil
}

// Close releases the tab's context (and with it, its page and CDP session).
func (t *Tab) Close() error {
	if t.Context != nil {
		return t.Context.Close()
	}
	return nil
}

// SaveState persists the tab's storage state (cookies, localStorage) to a
// file so a later invocation of the CLI can resume an authenticated
// session, per the teacher's own SaveState convention.
func (t *Tab) SaveState(path string) error {
	state, err := t.Context.StorageState()
	if err != nil {
		return fmt.Errorf("storage state: %w", err)
	}
	return writeJSON(path, state)
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal storage state: %w", err)
	}
	return os.WriteFile(path, b, 0o600)
}

func parseBoolEnv(name string, def bool) bool {
	val := strings.TrimSpace(os.Getenv(name))
	if val == "" {
		return def
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
