package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/config"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/Rshep3087/pocketbook/overview"
	"github.com/Rshep3087/pocketbook/trend"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Loading keys tracked until the first render of each view.
const (
	transactionsLoadingKey = "transactions"
	dashboardLoadingKey    = "dashboard"
)

type model struct {
	ctx   context.Context
	store *ledger.Store
	cfg   config.Config
	now   func() time.Time

	// loadingSpinner is a spinner model for the initial loading state
	loadingSpinner spinner.Model
	loadingState   loadingState

	keys   keyMap
	help   help.Model
	theme  Theme
	styles styles

	overview   overview.Model
	trend      trend.Model
	configView config.Model

	// transactions is a bubbletea list model of the transactions in period
	transactions         list.Model
	transactionsListKeys *transactionListKeyMap
	// budgets lists every expense category with its limit and spending
	budgets         list.Model
	budgetsListKeys *budgetListKeyMap

	sessionState         sessionState
	previousSessionState sessionState

	// period is the month or year the transactions view shows
	period analytics.Period

	categoryForm          *huh.Form
	insertTransactionForm *huh.Form
	budgetForm            *huh.Form
	transactionValues     *transactionFormValues
	// editing is the transaction the open form edits, nil when adding
	editing *ledger.Transaction
	// budgetTarget is the budget the open budget form sets
	budgetTarget budgetItem
	budgetAmount *string

	currency string
	errorMsg string
}

// newModel builds the dashboard around an open store.
func newModel(ctx context.Context, a *app) model {
	settings := a.store.Settings()
	theme := newTheme(a.cfg.Colors, settings.Theme)
	st := createStyles(theme)

	m := model{
		ctx:            ctx,
		store:          a.store,
		cfg:            a.cfg,
		now:            a.now,
		loadingSpinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		loadingState:   newLoadingState(transactionsLoadingKey, dashboardLoadingKey),
		keys:           initializeKeyMap(),
		help:           createHelpModel(theme),
		theme:          theme,
		styles:         st,
		overview: overview.New(
			overview.WithStyles(createOverviewStyles(theme)),
			overview.WithCurrency(settings.Currency),
		),
		trend:        trend.New(trend.Colors{Primary: string(theme.Primary)}),
		configView:   config.New(),
		sessionState: loading,
		period:       analytics.NewPeriod(a.now(), analytics.PeriodMonth),
		currency:     settings.Currency,
	}
	m.configView.SetConfig(a.cfg)

	m.transactionsListKeys = newTransactionListKeyMap()
	m.transactions = createTransactionList(m.newItemDelegate(newDeleteKeyMap()), m.transactionsListKeys)

	m.budgetsListKeys = newBudgetListKeyMap()
	m.budgets = createBudgetList(m.newBudgetDelegate(), m.budgetsListKeys)

	m.loadingSpinner.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.getTransactions,
		m.getDashboard,
		m.loadingSpinner.Tick,
	)
}

// checkIfLoading returns the loading state until every loading key has
// reported, then the view the user was on.
func (m model) checkIfLoading() sessionState {
	if !m.loadingState.allLoaded() {
		return loading
	}
	if m.sessionState == loading {
		if m.previousSessionState == loading {
			return overviewState
		}
		return m.previousSessionState
	}
	return m.sessionState
}

// runDashboard starts the terminal UI and blocks until it exits.
func runDashboard(ctx context.Context, a *app) error {
	if a.debug {
		f, err := tea.LogToFile("pocketbook.log", "pocketbook")
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
		defer log.SetOutput(os.Stderr)
	}

	p := tea.NewProgram(newModel(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
