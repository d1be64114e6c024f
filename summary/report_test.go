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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSummary = "\nFor an array of k=5 integers, after n=1000 attempts: chi squared statistic= " +
	"5.9757, total root squared deviation=0.0540, std error of mean= 0.0039 \n"

func TestReport_WithoutBreakdown(t *testing.T) {
	sum := mustSummarize(t, exampleSnapshot())
	report, err := sum.Report(false)
	require.NoError(t, err)
	assert.Equal(t, separator+exampleSummary, report)
	assert.Equal(t, report, sum.String())
}

func TestReport_WithBreakdown(t *testing.T) {
	sum := mustSummarize(t, exampleSnapshot())

	want := separator +
		"\n Random | Probability | Actual Occurrences | Chi squared        | Deviation " +
		"\n Number |  pi         |  Oi                | (pi*n-Oi)^2/(pi*n) |  |pi - Oi/n| " +
		"\n" + separator +
		"\n -1     | 0.0100      |        12 times    | 0.4000             | 0.0020       " +
		"\n 0      | 0.3000      |       322 times    | 1.6133             | 0.0220       " +
		"\n 1      | 0.5800      |       570 times    | 0.1724             | 0.0100       " +
		"\n 2      | 0.1000      |        83 times    | 2.8900             | 0.0170       " +
		"\n 3      | 0.0100      |        13 times    | 0.9000             | 0.0030       " +
		exampleSummary

	report, err := sum.Report(true)
	require.NoError(t, err)
	assert.Equal(t, want, report)
}

func TestReport_Table(t *testing.T) {
	sum := mustSummarize(t, exampleSnapshot())

	full, err := sum.Table(true)
	require.NoError(t, err)
	assert.Contains(t, full, "k=5, n=1000")
	assert.Contains(t, full, "2.8900")
	assert.Contains(t, full, "0.0170")
	assert.Contains(t, full, "5.9757")
	assert.Contains(t, full, "std error of mean= 0.0039")

	short, err := sum.Table(false)
	require.NoError(t, err)
	assert.NotContains(t, short, "2.8900")
	assert.Contains(t, short, "5.9757")
}
