package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-backtest/internal/indicator"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

const (
	emaPeriod = 20
	rsiPeriod = 14
)

// securityItem implements list.Item for the security list.
type securityItem struct {
	security types.Security
}

func (i securityItem) Title() string {
	return fmt.Sprintf("%s %s", i.security.Code, i.security.Name)
}
func (i securityItem) Description() string { return string(i.security.Exchange) }
func (i securityItem) FilterValue() string { return i.security.Code + " " + i.security.Name }

func securityItems(securities []types.Security) []list.Item {
	items := make([]list.Item, len(securities))
	for i, security := range securities {
		items[i] = securityItem{security: security}
	}

	return items
}

// NewSecurityList creates a filterable list of securities.
func NewSecurityList(securities []types.Security) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true

	l := list.New(securityItems(securities), delegate, 0, 0)
	l.Title = "Select Security"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	return l
}

// NewDateInput creates a new text input for jumping to a trading day.
func NewDateInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "20240102"
	ti.CharLimit = 8
	ti.Width = 20
	ti.Prompt = "> "

	return ti
}

// ParseDate parses the date input, tolerating dashes.
func ParseDate(input string) (types.TradeDate, error) {
	return types.ParseTradeDate(strings.ReplaceAll(input, "-", ""))
}

// NewBarTable creates a new table for displaying daily bars.
func NewBarTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Open", Width: 10},
		{Title: "High", Width: 10},
		{Title: "Low", Width: 10},
		{Title: "Close", Width: 12},
		{Title: "Change", Width: 9},
		{Title: "Volume", Width: 14},
		{Title: fmt.Sprintf("EMA%d", emaPeriod), Width: 10},
		{Title: fmt.Sprintf("RSI%d", rsiPeriod), Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t.SetStyles(s)

	return t
}

// BarRows renders every bar of s with its EMA and RSI readings, oldest first.
func BarRows(s *series.Series) []table.Row {
	ema := indicator.CalculateMA(s, indicator.MAConfig{
		Period: emaPeriod,
		Type:   indicator.MATypeExponential,
		Source: indicator.PriceSourceClose,
	})
	rsi := indicator.CalculateRSI(s, rsiPeriod)

	rows := make([]table.Row, 0, s.Len())

	for i, bar := range s.Bars() {
		rows = append(rows, table.Row{
			bar.TradeDate.String(),
			fmt.Sprintf("%.3f", bar.Open),
			fmt.Sprintf("%.3f", bar.High),
			fmt.Sprintf("%.3f", bar.Low),
			FormatCloseWithArrow(bar.Close, bar.PreClose),
			FormatChangePercent(bar.Change, bar.PreClose),
			fmt.Sprintf("%.0f", bar.Volume),
			lineValue(ema, i, "%.3f"),
			lineValue(rsi, i, "%.2f"),
		})
	}

	return rows
}

func lineValue(line indicator.Line, index int, format string) string {
	value, ok := line.At(index)
	if !ok {
		return "-"
	}

	return fmt.Sprintf(format, value)
}
