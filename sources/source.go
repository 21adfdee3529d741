package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/nets"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var ErrNotText = errors.New("not a text file")

type Source struct {
	Name    string
	Program string
}

func Inline(program string) *Source {
	return &Source{
		Name:    "-e",
		Program: program,
	}
}

// Load reads program text from a file path, an http(s) URL, or stdin when name is "-".
type Load func(ctx context.Context, name string) (*Source, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, name string) (*Source, error) {
		var content []byte
		var err error
		switch {
		case name == "-":
			content, err = io.ReadAll(stdin)
		case strings.HasPrefix(name, "http://"), strings.HasPrefix(name, "https://"):
			content, err = fetch(ctx, client, name)
		default:
			content, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, wrap(err)
		}

		if mtype, ok := isText(content); !ok {
			return nil, fmt.Errorf("%s: %w: %s", name, ErrNotText, mtype)
		}

		logger.DebugContext(ctx, "source loaded",
			"name", name,
			"bytes", len(content),
		)
		return &Source{
			Name:    name,
			Program: string(content),
		}, nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func isText(content []byte) (string, bool) {
	if len(content) == 0 {
		return "", true
	}
	mtype := mimetype.Detect(content)
	for t := mtype; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return mtype.String(), true
		}
	}
	return mtype.String(), false
}
