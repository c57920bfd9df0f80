package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"trivia-quiz/internal/domain"
)

// CookieJar is a file-backed app.KeyValueStore. Each line of the file is a
// Set-Cookie header (`name=value; Path=/; Expires=...`), values are
// percent-escaped like encodeURIComponent.
type CookieJar struct {
	path string
	mu   sync.Mutex
}

func NewCookieJar(path string) *CookieJar {
	return &CookieJar{path: path}
}

func (j *CookieJar) Get(_ context.Context, name string) (string, time.Time, bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	cookies, err := j.load()
	if err != nil {
		return "", time.Time{}, false, err
	}
	c, ok := cookies[name]
	if !ok {
		return "", time.Time{}, false, nil
	}
	value, err := url.PathUnescape(c.Value)
	if err != nil {
		return "", time.Time{}, false, fmt.Errorf("%w: cookie %s: %v", domain.ErrPersistenceRead, name, err)
	}
	return value, c.Expires, true, nil
}

func (j *CookieJar) Set(_ context.Context, name, value string, expiresAt time.Time) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	cookies, err := j.load()
	if errors.Is(err, domain.ErrPersistenceRead) {
		cookies = make(map[string]*http.Cookie)
	} else if err != nil {
		return err
	}
	cookies[name] = &http.Cookie{
		Name:    name,
		Value:   url.PathEscape(value),
		Path:    "/",
		Expires: expiresAt.UTC(),
	}
	return j.save(cookies)
}

func (j *CookieJar) Delete(_ context.Context, name string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	cookies, err := j.load()
	if errors.Is(err, domain.ErrPersistenceRead) {
		cookies = make(map[string]*http.Cookie)
	} else if err != nil {
		return err
	}
	if _, ok := cookies[name]; !ok && err == nil {
		return nil
	}
	delete(cookies, name)
	return j.save(cookies)
}

func (j *CookieJar) load() (map[string]*http.Cookie, error) {
	cookies := make(map[string]*http.Cookie)
	data, err := os.ReadFile(j.path)
	if errors.Is(err, os.ErrNotExist) {
		return cookies, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cookie jar: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := http.ParseSetCookie(line)
		if err != nil {
			return nil, fmt.Errorf("%w: cookie jar %s: %v", domain.ErrPersistenceRead, j.path, err)
		}
		cookies[c.Name] = c
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: cookie jar %s: %v", domain.ErrPersistenceRead, j.path, err)
	}
	return cookies, nil
}

func (j *CookieJar) save(cookies map[string]*http.Cookie) error {
	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	for _, name := range names {
		line := cookies[name].String()
		if line == "" {
			return fmt.Errorf("invalid cookie name %q", name)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return writeAtomic(j.path, buf.Bytes())
}
