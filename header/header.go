// Package header defines typed response-header values for use with
// respond.Builder.Header. Each type knows its canonical field name and
// renders its value as text per RFC 9110; respond validates the rendered
// text at insertion time.
package header

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ContentType is a media type for the Content-Type field.
type ContentType string

// Common media types.
const (
	JSON  ContentType = "application/json"
	Form  ContentType = "application/x-www-form-urlencoded"
	YAML  ContentType = "application/yaml"
	Text  ContentType = "text/plain; charset=utf-8"
	HTML  ContentType = "text/html; charset=utf-8"
	Bytes ContentType = "application/octet-stream"
)

// HeaderName returns "Content-Type".
func (ContentType) HeaderName() string { return "Content-Type" }

func (c ContentType) String() string { return string(c) }

// Location is a redirect or created-resource target URI.
type Location string

// HeaderName returns "Location".
func (Location) HeaderName() string { return "Location" }

func (l Location) String() string { return string(l) }

// ETag is an entity tag, rendered quoted; Weak adds the W/ prefix.
type ETag struct {
	Tag  string
	Weak bool
}

// HeaderName returns "ETag".
func (ETag) HeaderName() string { return "ETag" }

func (e ETag) String() string {
	if e.Weak {
		return `W/"` + e.Tag + `"`
	}
	return `"` + e.Tag + `"`
}

// Allow lists the methods permitted on a resource.
type Allow []string

// HeaderName returns "Allow".
func (Allow) HeaderName() string { return "Allow" }

func (a Allow) String() string { return strings.Join(a, ", ") }

// Vary lists the request fields a response varies on.
type Vary []string

// HeaderName returns "Vary".
func (Vary) HeaderName() string { return "Vary" }

func (v Vary) String() string { return strings.Join(v, ", ") }

// RetryAfter is a delay before the client should retry, rendered in whole
// seconds.
type RetryAfter time.Duration

// HeaderName returns "Retry-After".
func (RetryAfter) HeaderName() string { return "Retry-After" }

func (ra RetryAfter) String() string {
	secs := int64(time.Duration(ra).Round(time.Second) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return strconv.FormatInt(secs, 10)
}

// LastModified is the modification time of the selected representation,
// rendered in IMF-fixdate form.
type LastModified time.Time

// HeaderName returns "Last-Modified".
func (LastModified) HeaderName() string { return "Last-Modified" }

func (lm LastModified) String() string {
	return time.Time(lm).UTC().Format(http.TimeFormat)
}

// CacheControl carries the standard response cache directives. The zero
// value renders "no-cache".
type CacheControl struct {
	MaxAge         time.Duration
	SMaxAge        time.Duration
	NoCache        bool
	NoStore        bool
	Public         bool
	Private        bool
	MustRevalidate bool
	Immutable      bool
}

// HeaderName returns "Cache-Control".
func (CacheControl) HeaderName() string { return "Cache-Control" }

func (cc CacheControl) String() string {
	var dirs []string
	if cc.Public {
		dirs = append(dirs, "public")
	}
	if cc.Private {
		dirs = append(dirs, "private")
	}
	if cc.NoStore {
		dirs = append(dirs, "no-store")
	}
	if cc.NoCache {
		dirs = append(dirs, "no-cache")
	}
	if cc.MaxAge > 0 {
		dirs = append(dirs, "max-age="+strconv.FormatInt(int64(cc.MaxAge/time.Second), 10))
	}
	if cc.SMaxAge > 0 {
		dirs = append(dirs, "s-maxage="+strconv.FormatInt(int64(cc.SMaxAge/time.Second), 10))
	}
	if cc.MustRevalidate {
		dirs = append(dirs, "must-revalidate")
	}
	if cc.Immutable {
		dirs = append(dirs, "immutable")
	}
	if len(dirs) == 0 {
		return "no-cache"
	}
	return strings.Join(dirs, ", ")
}
