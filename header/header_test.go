package header_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/respond"
	"github.com/bjaus/respond/header"
)

func TestHeaders_render(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		header respond.TypedHeader
		name   string
		value  string
	}{
		"content type": {
			header: header.JSON,
			name:   "Content-Type",
			value:  "application/json",
		},
		"location": {
			header: header.Location("/users/42"),
			name:   "Location",
			value:  "/users/42",
		},
		"etag strong": {
			header: header.ETag{Tag: "abc"},
			name:   "ETag",
			value:  `"abc"`,
		},
		"etag weak": {
			header: header.ETag{Tag: "abc", Weak: true},
			name:   "ETag",
			value:  `W/"abc"`,
		},
		"allow": {
			header: header.Allow{"GET", "HEAD"},
			name:   "Allow",
			value:  "GET, HEAD",
		},
		"vary": {
			header: header.Vary{"Accept", "Accept-Encoding"},
			name:   "Vary",
			value:  "Accept, Accept-Encoding",
		},
		"retry after": {
			header: header.RetryAfter(90 * time.Second),
			name:   "Retry-After",
			value:  "90",
		},
		"retry after sub-second": {
			header: header.RetryAfter(400 * time.Millisecond),
			name:   "Retry-After",
			value:  "0",
		},
		"last modified": {
			header: header.LastModified(time.Date(2025, 3, 9, 12, 30, 0, 0, time.UTC)),
			name:   "Last-Modified",
			value:  "Sun, 09 Mar 2025 12:30:00 GMT",
		},
		"cache control directives": {
			header: header.CacheControl{Public: true, MaxAge: 5 * time.Minute, Immutable: true},
			name:   "Cache-Control",
			value:  "public, max-age=300, immutable",
		},
		"cache control zero value": {
			header: header.CacheControl{},
			name:   "Cache-Control",
			value:  "no-cache",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.name, tc.header.HeaderName())
			assert.Equal(t, tc.value, tc.header.String())
		})
	}
}
