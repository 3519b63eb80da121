package respond

import (
	"errors"
	"fmt"
	"net/http"
)

// Responder is implemented by values that can convert themselves into a
// *Response. ToResponse recognizes it alongside the built-in shapes, so any
// user-defined type can become a handler return value by implementing it.
// Conversion errors must be returned, never swallowed: a nil error
// guarantees a fully formed response ready for transmission.
type Responder interface {
	Respond() (*Response, error)
}

// Content types inferred for the built-in body shapes.
const (
	contentTypeText  = "text/plain; charset=utf-8"
	contentTypeBytes = "application/octet-stream"
	contentTypeJSON  = "application/json"
	contentTypeForm  = "application/x-www-form-urlencoded"
	contentTypeYAML  = "application/yaml"
)

// ToResponse converts a handler return value into a *Response.
//
// Built-in shapes:
//
//	int           status code, empty body
//	string        200, text/plain body
//	[]byte        200, raw bytes
//	*Response     returned unchanged
//	*Builder      unwrapped to its response
//	Responder     converted via Respond (covers With, JSON, Form, YAML)
//	error         propagated as-is, never wrapped
//	nil           200, empty body
//
// Anything else is a conversion error naming the offending type.
func ToResponse(v any) (*Response, error) {
	switch val := v.(type) {
	case nil:
		return NewResponse(http.StatusOK), nil
	case *Response:
		// A typed nil slips past the nil arm; most often a discarded error
		// from a failed builder call.
		if val == nil {
			return nil, errors.New("respond: nil *Response")
		}
		return val, nil
	case *Builder:
		if val == nil {
			return nil, errors.New("respond: nil *Builder")
		}
		return val.Unwrap(), nil
	case Responder:
		return val.Respond()
	case error:
		return nil, val
	case int:
		return NewResponse(val), nil
	case string:
		resp := NewResponse(http.StatusOK)
		resp.SetBody([]byte(val))
		resp.Header().Set("Content-Type", contentTypeText)
		return resp, nil
	case []byte:
		resp := NewResponse(http.StatusOK)
		resp.SetBody(val)
		resp.Header().Set("Content-Type", contentTypeBytes)
		return resp, nil
	default:
		return nil, fmt.Errorf("respond: unsupported response type %T", v)
	}
}

// With pairs a status code with any convertible value: the value converts
// first, and only on success is the resulting status overwritten. Headers
// and body from the inner conversion are preserved verbatim.
func With(status int, v any) Responder {
	return withStatus{status: status, value: v}
}

type withStatus struct {
	status int
	value  any
}

func (ws withStatus) Respond() (*Response, error) {
	resp, err := ToResponse(ws.value)
	if err != nil {
		return nil, err
	}
	resp.SetStatus(ws.status)
	return resp, nil
}

// JSON wraps any JSON-serializable value as a 200 response with a JSON
// body. Serialization failures propagate.
func JSON(v any) Responder { return jsonBody{value: v} }

type jsonBody struct{ value any }

func (j jsonBody) Respond() (*Response, error) {
	b, err := Ok().JSON(j.value)
	if err != nil {
		return nil, err
	}
	return b.Unwrap(), nil
}

// Form wraps any form-serializable value as a 200 response with a
// urlencoded body. Serialization failures propagate.
func Form(v any) Responder { return formBody{value: v} }

type formBody struct{ value any }

func (f formBody) Respond() (*Response, error) {
	b, err := Ok().Form(f.value)
	if err != nil {
		return nil, err
	}
	return b.Unwrap(), nil
}

// YAML wraps any YAML-serializable value as a 200 response with a YAML
// body. Serialization failures propagate.
func YAML(v any) Responder { return yamlBody{value: v} }

type yamlBody struct{ value any }

func (y yamlBody) Respond() (*Response, error) {
	b, err := Ok().YAML(y.value)
	if err != nil {
		return nil, err
	}
	return b.Unwrap(), nil
}
