package brewfather

import (
	"os"
	"path/filepath"
	"strings"
)

// dumpName derives the debug file name for a request URL: the path below
// the base URL with the query stripped and separators replaced.
func (c *Client) dumpName(rawURL string) string {
	rel := strings.TrimPrefix(rawURL, c.baseURL)
	rel = strings.TrimPrefix(rel, "/")
	rel, _, _ = strings.Cut(rel, "?")
	rel = strings.NewReplacer("/", "_", ":", "_").Replace(rel)
	return rel + ".json"
}

// dump writes a GET response body to the debug directory. Failures are
// logged and never affect the request.
func (c *Client) dump(rawURL string, body []byte) {
	if c.debugDir == "" {
		return
	}
	if err := os.MkdirAll(c.debugDir, 0o755); err != nil {
		c.log.Warn().Err(err).Str("dir", c.debugDir).Msg("Failed to create debug directory")
		return
	}
	path := filepath.Join(c.debugDir, c.dumpName(rawURL))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("Failed to write debug dump")
	}
}
