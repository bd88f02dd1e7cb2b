package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
	"github.com/fredcamaral/revealdeck/internal/test/builders"
)

// fakeMarkdown wraps its input in a paragraph, like a markdown renderer
// does for a single line
type fakeMarkdown struct {
	err error
}

func (f *fakeMarkdown) ToHTML(src string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "<p>" + strings.TrimSpace(src) + "</p>\n", nil
}

type fakeFetcher struct {
	files map[string][]byte
	calls []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{files: map[string][]byte{}}
}

func (f *fakeFetcher) Fetch(_ context.Context, src string) ([]byte, error) {
	f.calls = append(f.calls, src)
	data, ok := f.files[src]
	if !ok {
		return nil, &entities.FetchError{Source: src, Err: os.ErrNotExist}
	}
	return data, nil
}

type fakeWriter struct {
	path string
	data []byte
	err  error
}

func (f *fakeWriter) WriteDocument(_ context.Context, path string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.path = path
	f.data = append([]byte(nil), data...)
	return nil
}

type testDeck struct {
	*Deck
	fetcher *fakeFetcher
	writer  *fakeWriter
}

func newTestDeck(cfg entities.DeckConfig) (*testDeck, error) {
	fetcher := newFakeFetcher()
	writer := &fakeWriter{}
	deck, err := NewDeck(cfg, &fakeMarkdown{}, fetcher, writer)
	if err != nil {
		return nil, err
	}
	return &testDeck{Deck: deck, fetcher: fetcher, writer: writer}, nil
}

func mustTestDeck(cfg entities.DeckConfig) *testDeck {
	d, err := newTestDeck(cfg)
	if err != nil {
		panic(fmt.Sprintf("creating test deck: %v", err))
	}
	return d
}

func defaultTestDeck() *testDeck {
	return mustTestDeck(builders.NewDeckConfigBuilder().Build())
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	_ ports.MarkdownConverter = (*fakeMarkdown)(nil)
	_ ports.MediaFetcher      = (*fakeFetcher)(nil)
	_ ports.DocumentWriter    = (*fakeWriter)(nil)
	_ ports.Logger            = nopLogger{}
)
