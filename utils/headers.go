package utils

import (
	"net/textproto"
	"sort"
	"strings"
)

// Headers is a set of canonical HTTP header names.
type Headers map[string]bool

func NewHeaders(names ...string) Headers {
	h := Headers{}
	for _, name := range names {
		h.Add(name)
	}
	return h
}

func (h Headers) Add(header string) {
	canonical_header := textproto.CanonicalMIMEHeaderKey(header)
	h[canonical_header] = true
}

func (h Headers) Contains(header string) bool {
	canonical_header := textproto.CanonicalMIMEHeaderKey(header)
	_, is_present := h[canonical_header]
	return is_present
}

func (h Headers) Strings() []string {
	headers := []string{}
	for header := range h {
		headers = append(headers, header)
	}
	sort.Strings(headers)
	return headers
}

// String renders the set the way Access-Control-Allow-Headers expects it.
func (h Headers) String() string {
	return strings.Join(h.Strings(), ", ")
}
