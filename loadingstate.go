package main

import (
	"slices"
	"strings"
)

// loadingState tracks which background loads have reported back.
type loadingState map[string]bool

func newLoadingState(keys ...string) loadingState {
	l := make(loadingState, len(keys))
	for _, k := range keys {
		l[k] = false
	}
	return l
}

func (l loadingState) set(key string) {
	l[key] = true
}

func (l loadingState) unset(key string) {
	l[key] = false
}

// pending returns the keys still loading, sorted.
func (l loadingState) pending() []string {
	var keys []string
	for k, done := range l {
		if !done {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

func (l loadingState) allLoaded() bool {
	return len(l.pending()) == 0
}

// String describes the pending loads, e.g. "dashboard, transactions".
func (l loadingState) String() string {
	return strings.Join(l.pending(), ", ")
}
