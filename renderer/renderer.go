// Package renderer turns the simulator state into the text shown to the player.
//
// Renderers are pure functions over the state, they never mutate it.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/stocksim"
)

//go:embed templates/*.txt
var templates embed.FS

// MarketView is the data of a market listing.
type MarketView struct {
	Stocks []*stocksim.Stock
}

// PortfolioView is the data of a portfolio report.
type PortfolioView struct {
	Cash     stocksim.Money
	Holdings []stocksim.Holding
	Total    stocksim.Money
}

// NewPortfolioView captures the state of p.
func NewPortfolioView(p *stocksim.Portfolio) *PortfolioView {
	return &PortfolioView{
		Cash:     p.Cash(),
		Holdings: p.Holdings(),
		Total:    p.TotalValue(),
	}
}

// Market renders the roster listing, one stock per line with a two decimals price.
func Market(m *stocksim.Market) string {
	return renderTemplate("market", "market.txt", nil, &MarketView{Stocks: m.Stocks()})
}

// Portfolio renders the portfolio report, money with thousands separators.
func Portfolio(p *stocksim.Portfolio) string {
	partials := map[string]string{
		"portfolio_holdings": "portfolio_holdings.txt",
	}
	return renderTemplate("portfolio", "portfolio.txt", partials, NewPortfolioView(p))
}

// Outcome renders the result of a trade.
func Outcome(o stocksim.Outcome) string { return o.String() }

// renderTemplate renders a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
