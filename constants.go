package main

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Layout
const (
	standardMargin = 2
	// chromeHeight is the space taken by the title, period and help lines.
	chromeHeight = 8
)

// Session states
type sessionState int

const (
	overviewState sessionState = iota
	transactions
	categorizeTransaction
	insertTransaction
	editTransaction
	loading
	trends
	budgets
	configView
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case overviewState:
		return "overview"
	case transactions:
		return "transactions"
	case categorizeTransaction:
		return "categorize transaction"
	case insertTransaction:
		return "insert transaction"
	case editTransaction:
		return "edit transaction"
	case loading:
		return "loading"
	case trends:
		return "trends"
	case budgets:
		return "budgets"
	case configView:
		return "configuration"
	case errorState:
		return "error"
	}

	return "unknown"
}
