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

package summary

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

const separator = "========================================================================="

// Report returns a text summary. With showBreakdown every outcome is listed
// with its probability, occurrences, chi-squared contribution and deviation;
// otherwise only the totals are given.
func (s *Summarizer) Report(showBreakdown bool) (string, error) {
	var b strings.Builder
	b.WriteString(separator)

	if showBreakdown {
		fmt.Fprintf(&b, "\n %-6s | %-11s | %-18s | %-18s | %-10s",
			"Random", "Probability", "Actual Occurrences", "Chi squared", "Deviation")
		fmt.Fprintf(&b, "\n %-6s | %-11s | %-18s | %-18s | %-10s\n",
			"Number", " pi ", " Oi ", "(pi*n-Oi)^2/(pi*n)", " |pi - Oi/n| ")
		b.WriteString(separator)
	}

	rows, err := s.Rows()
	if err != nil {
		return "", err
	}
	totalChi2 := 0.0
	totalDev := 0.0
	for _, r := range rows {
		totalChi2 += r.ChiSquared
		totalDev += r.Deviation
		if showBreakdown {
			fmt.Fprintf(&b, "\n %-6d", r.Value)
			fmt.Fprintf(&b, " | %-11.4f", r.Probability)
			fmt.Fprintf(&b, " | %9d times   ", r.Occurrences)
			fmt.Fprintf(&b, " | %-17.4f ", r.ChiSquared)
			fmt.Fprintf(&b, " | %-12.4f ", r.Deviation)
		}
	}

	fmt.Fprintf(&b, "\nFor an array of k=%d integers, after n=%d attempts: chi squared "+
		"statistic= %5.4f, total root squared deviation=%5.4f, std error of mean= %5.4f \n",
		len(rows), s.count, totalChi2, totalDev, s.StandardErrorOfMean())
	return b.String(), nil
}

// Table renders the same content as Report as a box-drawn table.
func (s *Summarizer) Table(showBreakdown bool) (string, error) {
	rows, err := s.Rows()
	if err != nil {
		return "", err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Weighted random generator, k=%d, n=%d", len(rows), s.count)
	tw.AppendHeader(table.Row{"Number", "Probability", "Occurrences", "Expected", "Chi squared", "Deviation"})

	totalChi2 := 0.0
	totalDev := 0.0
	for _, r := range rows {
		totalChi2 += r.ChiSquared
		totalDev += r.Deviation
		if showBreakdown {
			tw.AppendRow(table.Row{
				r.Value,
				fmt.Sprintf("%.4f", r.Probability),
				r.Occurrences,
				fmt.Sprintf("%.1f", r.Expected),
				fmt.Sprintf("%.4f", r.ChiSquared),
				fmt.Sprintf("%.4f", r.Deviation),
			})
		}
	}
	tw.AppendFooter(table.Row{"Total", "", s.count, "", fmt.Sprintf("%.4f", totalChi2), fmt.Sprintf("%.4f", totalDev)})
	tw.SetCaption("std error of mean= %.4f", s.StandardErrorOfMean())
	return tw.Render(), nil
}
