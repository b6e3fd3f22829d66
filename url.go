package maygo

import (
	"fmt"
	"net/url"
)

// OpenURL opens rawURL in the user's browser. It needs an absolute URL.
func (s *Session) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("invalid url %q: missing scheme", rawURL)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform.OpenURL(u.String())
}
