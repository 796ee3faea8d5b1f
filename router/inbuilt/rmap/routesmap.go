package rmap

import (
	"strings"

	"github.com/indigo-web/atto/http/method"
	"github.com/indigo-web/atto/router"
)

// MethodsMap is a per-path handler table, indexed by the method enum value
type MethodsMap [method.Count + 1]router.Handler

type mapEntry struct {
	methods MethodsMap
	allow   string
}

// Map is a (method, path) -> handler table. Lookup is exact-match only:
// no trailing-slash normalization and no prefix matching is performed
type Map struct {
	entries map[string]mapEntry
}

func New() *Map {
	return &Map{entries: map[string]mapEntry{}}
}

func (m *Map) Add(path string, method_ method.Method, handler router.Handler) {
	entry := m.entries[path]
	entry.methods[method_] = handler
	entry.allow = getAllowString(entry.methods)
	m.entries[path] = entry
}

func (m *Map) Get(path string) (methods MethodsMap, allow string, ok bool) {
	entry, ok := m.entries[path]
	return entry.methods, entry.allow, ok
}

func getAllowString(methods MethodsMap) (allowed string) {
	for i, handler := range methods {
		if handler == nil {
			continue
		}

		allowed += method.Method(i).String() + ","
	}

	return strings.TrimRight(allowed, ",")
}
