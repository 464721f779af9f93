package handler

import (
	"net/http"
	"net/url"
	"strconv"
)

// queryParams reads typed query parameters and collects parse errors keyed
// by parameter name, in the same shape as validation errors.
type queryParams struct {
	values url.Values
	errs   map[string]string
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query(), errs: map[string]string{}}
}

func (p *queryParams) String(name string) string {
	return p.values.Get(name)
}

// Int returns 0 when the parameter is absent.
func (p *queryParams) Int(name string) int {
	raw := p.values.Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs[name] = name + " must be an integer"
		return 0
	}
	return v
}

func (p *queryParams) Int64(name string) int64 {
	raw := p.values.Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.errs[name] = name + " must be an integer"
		return 0
	}
	return v
}

// OptionalInt returns nil when the parameter is absent or empty.
func (p *queryParams) OptionalInt(name string) *int {
	if p.values.Get(name) == "" {
		return nil
	}
	v := p.Int(name)
	if _, failed := p.errs[name]; failed {
		return nil
	}
	return &v
}

func (p *queryParams) Errors() map[string]string {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs
}
