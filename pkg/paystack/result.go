package paystack

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Result is one parsed processor response.
//
// The processor reports logical failures (unknown customer, rejected input)
// with Status false and a human readable Message, usually along with a 4xx HTTP status.
type Result struct {
	Status     bool   `json:"status"`
	Message    string `json:"message"`
	Data       Data   `json:"data"`
	Meta       Data   `json:"meta"`
	HTTPStatus int    `json:"-"`
}

var (
	errEmptyBody   = errors.New("empty response body")
	errInvalidBody = errors.New("response body is not valid json")
)

// envelope keeps every field raw, so a processor answer with unexpected field types still
// yields whatever can be read from it.
type envelope struct {
	Status  json.RawMessage `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

// parseResult reads a raw response body. Only an empty body or invalid json is an error,
// a well-formed body of any shape becomes a Result.
func parseResult(body []byte, httpStatus int) (Result, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Result{}, errEmptyBody
	}
	if !json.Valid(trimmed) {
		return Result{}, errInvalidBody
	}

	e := envelope{}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &e); err != nil {
			return Result{}, err
		}
	}
	return e.toResult(httpStatus), nil
}

func (e envelope) toResult(httpStatus int) Result {
	return Result{
		Status:     booleanLike(e.Status),
		Message:    stringOrEmpty(e.Message),
		Data:       NewData(e.Data),
		Meta:       NewData(e.Meta),
		HTTPStatus: httpStatus,
	}
}

// booleanLike accepts json booleans, numbers (non-zero is true) and the string
// spellings understood by strconv.ParseBool.
func booleanLike(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, err := strconv.ParseBool(strings.TrimSpace(s))
		return err == nil && parsed
	}
	return false
}

func stringOrEmpty(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Data is the payload of a response, a JSON object or a list.
type Data struct {
	raw   json.RawMessage
	value interface{}
}

// NewData wraps a raw JSON payload. Anything that does not decode counts as empty.
func NewData(raw json.RawMessage) Data {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Data{}
	}

	var value interface{}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	if err := decoder.Decode(&value); err != nil {
		return Data{}
	}
	return Data{raw: trimmed, value: value}
}

func (d Data) IsEmpty() bool {
	return d.value == nil
}

func (d Data) Raw() json.RawMessage {
	return d.raw
}

// Object returns the payload as map, empty if the payload is not a JSON object.
func (d Data) Object() map[string]interface{} {
	if obj, ok := d.value.(map[string]interface{}); ok {
		return obj
	}
	return map[string]interface{}{}
}

// List returns the payload as list, nil if the payload is not a JSON array.
func (d Data) List() []interface{} {
	if list, ok := d.value.([]interface{}); ok {
		return list
	}
	return nil
}

// Get walks nested objects along path.
func (d Data) Get(path ...string) (interface{}, bool) {
	current := d.value
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, current != nil
}

// String renders the value at path, "" when absent. Numbers are rendered in decimal.
func (d Data) String(path ...string) string {
	v, ok := d.Get(path...)
	if !ok {
		return ""
	}
	switch typed := v.(type) {
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	default:
		b, err := json.Marshal(typed)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Decode unmarshals the payload into v, leaving v untouched when there is no payload.
func (d Data) Decode(v interface{}) error {
	if len(d.raw) == 0 {
		return nil
	}
	return json.Unmarshal(d.raw, v)
}

func (d Data) MarshalJSON() ([]byte, error) {
	if len(d.raw) == 0 {
		return []byte("{}"), nil
	}
	return d.raw, nil
}
