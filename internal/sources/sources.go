// Package sources wires concrete feed locations to the pipeline's
// Source interface. A source pairs one feed identity with one document
// location (HTTP URL or local file) and the decoder that feed's wire
// format needs.
package sources

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/Diavel78/product-trainer/internal/transport"
	"github.com/Diavel78/product-trainer/pkg/errors"
	"github.com/Diavel78/product-trainer/pkg/feeds"
	"github.com/Diavel78/product-trainer/pkg/logging"
)

// decoder turns one downloaded feed document into records.
type decoder func(io.Reader) ([]feeds.Record, error)

// decoderFor returns the wire-format decoder for a feed. The inventory
// feed is JSON, Google Vehicle Ads is tab-separated, Facebook is CSV.
func decoderFor(id feeds.ID) decoder {
	switch id {
	case feeds.GoogleAdsID:
		return feeds.DecodeTSV
	case feeds.FacebookID:
		return feeds.DecodeCSV
	default:
		return feeds.DecodeJSON
	}
}

// HTTPSource fetches a feed document from a URL.
type HTTPSource struct {
	id     feeds.ID
	url    string
	client *transport.Client
	decode decoder
}

// NewHTTP creates a source downloading the given feed from url. A nil
// client gets the default feed transport.
func NewHTTP(id feeds.ID, url string, client *transport.Client) *HTTPSource {
	if client == nil {
		client = transport.New()
	}
	return &HTTPSource{
		id:     id,
		url:    url,
		client: client,
		decode: decoderFor(id),
	}
}

// ID implements feeds.Source.
func (s *HTTPSource) ID() feeds.ID {
	return s.id
}

// Fetch implements feeds.Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]feeds.Record, error) {
	body, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, errors.WrapFeed(s.id.String(), s.url, err)
	}

	records, err := s.decode(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapFeed(s.id.String(), s.url, err)
	}

	logging.Debug().
		Str("feed", s.id.String()).
		Int("bytes", len(body)).
		Int("records", len(records)).
		Msg("Feed downloaded")
	return records, nil
}

// FileSource reads a feed document from a local file. Used for offline
// runs against saved feed exports.
type FileSource struct {
	id     feeds.ID
	path   string
	decode decoder
}

// NewFile creates a source reading the given feed from a local path.
func NewFile(id feeds.ID, path string) *FileSource {
	return &FileSource{
		id:     id,
		path:   path,
		decode: decoderFor(id),
	}
}

// ID implements feeds.Source.
func (s *FileSource) ID() feeds.ID {
	return s.id
}

// Fetch implements feeds.Source.
func (s *FileSource) Fetch(_ context.Context) ([]feeds.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.WrapIO("read", s.path, err)
	}
	records, err := s.decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapFeed(s.id.String(), s.path, err)
	}
	return records, nil
}

// FromLocation builds a source for the feed from a location string:
// http(s) URLs become HTTP sources, anything else is treated as a file
// path.
func FromLocation(id feeds.ID, location string, client *transport.Client) feeds.Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTP(id, location, client)
	}
	return NewFile(id, location)
}
