package paystack

import (
	"net/url"
	"strings"
)

// resource is the part every resource client shares: its own request context
// and a base url that callers may point elsewhere.
type resource struct {
	ctx *RequestContext
	url string
}

func newResource(opts Options, path string) (resource, error) {
	rc, err := NewRequestContext(opts)
	if err != nil {
		return resource{}, err
	}
	return resource{
		ctx: rc,
		url: rc.APIURL() + path,
	}, nil
}

// Ctx exposes the request context owned by this client.
func (r *resource) Ctx() *RequestContext {
	return r.ctx
}

func (r *resource) URL() string {
	return r.url
}

func (r *resource) SetURL(value string) {
	r.url = strings.TrimSuffix(value, "/")
}

func (r *resource) Status() bool {
	return r.ctx.Status()
}

func (r *resource) Message() string {
	return r.ctx.Message()
}

func (r *resource) Data() Data {
	return r.ctx.Data()
}

func (r *resource) Last() Result {
	return r.ctx.Last()
}

// endpoint appends escaped path segments to the base url.
func (r *resource) endpoint(segments ...string) string {
	return joinPath(r.url, segments...)
}

// field reads a top level string property of the cached data, "" if absent.
func (r *resource) field(key string) string {
	return r.ctx.Data().String(key)
}

func joinPath(base string, segments ...string) string {
	var sb strings.Builder
	sb.WriteString(base)
	for _, s := range segments {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(s))
	}
	return sb.String()
}

// Pagination selects a page of a list endpoint. Zero values use the processor defaults.
type Pagination struct {
	PerPage int
	Page    int
}

func (p Pagination) params() Params {
	return Params{
		"perPage": p.PerPage,
		"page":    p.Page,
	}
}

// merge returns a new map holding the entries of all sets, later sets win.
func merge(sets ...Params) Params {
	result := Params{}
	for _, set := range sets {
		for k, v := range set {
			result[k] = v
		}
	}
	return result
}
