// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package visualizer renders the frequencies drawn by a weighted sampler as
// charts, either into an HTML file or on a local web server.
package visualizer

import (
	"fmt"
	"net/http"
	"os"

	"github.com/0xsoniclabs/aida-randomgen/summary"
	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTML references for the rendered pages.
const frequencyRef = "frequency"
const chiSquaredRef = "chi-squared"
const deviationRef = "deviation"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Weighted Random Generator</title>
  </head>
  <body>
    <h1>Weighted Random Generator</h1>
    <ul>
    <li> <h3> <a href="/` + frequencyRef + `"> Expected and Observed Frequencies </a> </h3> </li>
    <li> <h3> <a href="/` + chiSquaredRef + `"> Chi-Squared Contributions </a> </h3> </li>
    <li> <h3> <a href="/` + deviationRef + `"> Deviations </a> </h3> </li>
    </ul>
</body>
</html>
`

func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// globalOptions are shared by all charts.
func globalOptions(pageTitle, title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: pageTitle,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
	}
}

func convertLabels(data []outcomeDatum) []string {
	items := make([]string, len(data))
	for i, d := range data {
		items[i] = d.label
	}
	return items
}

func convertBarData(data []outcomeDatum, value func(outcomeDatum) float64) []opts.BarData {
	items := make([]opts.BarData, len(data))
	for i, d := range data {
		items[i] = opts.BarData{Value: value(d)}
	}
	return items
}

func newFrequencyChart(title string, view *viewState) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions("Frequencies", fmt.Sprintf("%v (n=%d)", title, view.draws))...)
	bar.SetXAxis(convertLabels(view.outcomes)).
		AddSeries("Expected", convertBarData(view.outcomes, func(d outcomeDatum) float64 { return d.expected })).
		AddSeries("Observed", convertBarData(view.outcomes, func(d outcomeDatum) float64 { return d.observed }))
	return bar
}

// NewFrequencyChart creates a bar chart comparing the probability of every
// outcome with its observed relative frequency.
func NewFrequencyChart(title string, rows []summary.Row) (*charts.Bar, error) {
	view, err := buildViewState(rows)
	if err != nil {
		return nil, err
	}
	return newFrequencyChart(title, view), nil
}

func newChiSquaredChart(view *viewState) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions("Chi-Squared", "Chi-squared contribution per outcome")...)
	bar.SetXAxis(convertLabels(view.outcomes)).
		AddSeries("(pi*n-Oi)^2/(pi*n)", convertBarData(view.outcomes, func(d outcomeDatum) float64 { return d.chiSquared }))
	return bar
}

func convertLineData(data []outcomeDatum) []opts.LineData {
	items := make([]opts.LineData, len(data))
	for i, d := range data {
		items[i] = opts.LineData{Value: d.deviation}
	}
	return items
}

func newDeviationChart(view *viewState) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions("Deviations", "Deviation |pi - Oi/n| per outcome")...)
	line.SetXAxis(convertLabels(view.outcomes)).
		AddSeries("Deviation", convertLineData(view.outcomes))
	return line
}

func renderFrequency(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = newFrequencyChart("Expected and observed frequencies", view).Render(w)
}

func renderChiSquared(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = newChiSquaredChart(view).Render(w)
}

func renderDeviation(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = newDeviationChart(view).Render(w)
}

// RenderFile writes the chart as a standalone HTML page.
func RenderFile(path string, chart *charts.Bar) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create chart file %v", path)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return chart.Render(f)
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", renderMain)
	mux.HandleFunc("/"+frequencyRef, renderFrequency)
	mux.HandleFunc("/"+chiSquaredRef, renderChiSquared)
	mux.HandleFunc("/"+deviationRef, renderDeviation)
	return mux
}

// FireUpWeb serves the charts of the given rows on a local web server
// listening on the given port.
func FireUpWeb(rows []summary.Row, addr string) error {
	if err := setViewState(rows); err != nil {
		return err
	}
	return http.ListenAndServe(":"+addr, newMux())
}
