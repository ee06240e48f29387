package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		name     string
		state    sessionState
		expected string
	}{
		{name: "overview state", state: overviewState, expected: "overview"},
		{name: "transactions state", state: transactions, expected: "transactions"},
		{name: "categorize transaction state", state: categorizeTransaction, expected: "categorize transaction"},
		{name: "insert transaction state", state: insertTransaction, expected: "insert transaction"},
		{name: "edit transaction state", state: editTransaction, expected: "edit transaction"},
		{name: "loading state", state: loading, expected: "loading"},
		{name: "trends state", state: trends, expected: "trends"},
		{name: "budgets state", state: budgets, expected: "budgets"},
		{name: "config view state", state: configView, expected: "configuration"},
		{name: "error state", state: errorState, expected: "error"},
		{name: "unknown state", state: sessionState(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestSessionStateConstants(t *testing.T) {
	states := []sessionState{
		overviewState, transactions, categorizeTransaction, insertTransaction, editTransaction,
		loading, trends, budgets, configView, errorState,
	}
	seen := make(map[sessionState]bool)
	for _, s := range states {
		be.False(t, seen[s])
		seen[s] = true
	}

	// Test that overviewState is 0 (first iota value)
	be.Equal(t, sessionState(0), overviewState)
}
