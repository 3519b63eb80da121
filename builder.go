package respond

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ajg/form"
	"golang.org/x/net/http/httpguts"
	"gopkg.in/yaml.v3"
)

// TypedHeader is a header value that knows its own canonical field name and
// renders its value as display text. The header subpackage provides
// implementations for common response headers.
type TypedHeader interface {
	HeaderName() string
	fmt.Stringer
}

// Builder accumulates an outbound response through a chain of calls. Every
// method returns the builder it was called on, so a chain threads a single
// response; builders are not safe for use from multiple goroutines.
type Builder struct {
	resp *Response
}

// Ok returns a builder for an empty response with status 200.
func Ok() *Builder { return Status(http.StatusOK) }

// Status returns a builder for an empty response with the given status.
func Status(code int) *Builder { return &Builder{resp: NewResponse(code)} }

// Body sets the response body from a string, []byte, io.Reader, or
// fmt.Stringer and infers the content type from the shape. Body never
// fails; structured payloads that can fail to encode go through JSON,
// Form, or YAML. A reader that cannot be drained indicates a broken body
// source, so Body panics rather than silently truncating.
func (b *Builder) Body(v any) *Builder {
	switch body := v.(type) {
	case string:
		b.resp.SetBody([]byte(body))
		b.resp.Header().Set("Content-Type", contentTypeText)
	case []byte:
		b.resp.SetBody(body)
		b.resp.Header().Set("Content-Type", contentTypeBytes)
	case io.Reader:
		data, err := io.ReadAll(body)
		if err != nil {
			panic(fmt.Sprintf("respond: read body source: %v", err))
		}
		b.resp.SetBody(data)
		b.resp.Header().Set("Content-Type", contentTypeBytes)
	case fmt.Stringer:
		b.resp.SetBody([]byte(body.String()))
		b.resp.Header().Set("Content-Type", contentTypeText)
	default:
		b.resp.SetBody([]byte(fmt.Sprint(v)))
		b.resp.Header().Set("Content-Type", contentTypeText)
	}
	return b
}

// JSON sets the response body to the JSON encoding of v.
func (b *Builder) JSON(v any) (*Builder, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json body: %w", err)
	}
	b.resp.SetBody(data)
	b.resp.Header().Set("Content-Type", contentTypeJSON)
	return b, nil
}

// Form sets the response body to the urlencoded form encoding of v.
func (b *Builder) Form(v any) (*Builder, error) {
	vals, err := form.EncodeToValues(v)
	if err != nil {
		return nil, fmt.Errorf("encode form body: %w", err)
	}
	b.resp.SetBody([]byte(vals.Encode()))
	b.resp.Header().Set("Content-Type", contentTypeForm)
	return b, nil
}

// YAML sets the response body to the YAML encoding of v.
func (b *Builder) YAML(v any) (*Builder, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode yaml body: %w", err)
	}
	b.resp.SetBody(data)
	b.resp.Header().Set("Content-Type", contentTypeYAML)
	return b, nil
}

// Header inserts a typed header, replacing any existing field with the same
// canonical name. A typed header rendering invalid header-value text is a
// bug in the header's construction, not a runtime condition, so Header
// panics rather than returning an error.
func (b *Builder) Header(h TypedHeader) *Builder {
	value := h.String()
	if !httpguts.ValidHeaderFieldValue(value) {
		panic(fmt.Sprintf("respond: header %s rendered invalid value %q", h.HeaderName(), value))
	}
	b.resp.Header().Set(h.HeaderName(), value)
	return b
}

// RawHeader inserts a header from a pre-validated name and one or more
// values, trusting the caller. Existing values under the name are replaced.
func (b *Builder) RawHeader(name string, values ...string) *Builder {
	b.resp.Header().Del(name)
	for _, v := range values {
		b.resp.Header().Add(name, v)
	}
	return b
}

// Unwrap consumes the builder and returns the accumulated response. The
// builder must not be used after Unwrap.
func (b *Builder) Unwrap() *Response { return b.resp }

// Respond returns the builder's response, so a bare *Builder is itself a
// valid handler return value.
func (b *Builder) Respond() (*Response, error) { return b.resp, nil }
