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

package utils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrinter_NewPrinter(t *testing.T) {
	p := NewPrinters()
	assert.Empty(t, p.printers)
}

func TestPrinter_AddPrinter(t *testing.T) {
	p := NewPrinters()
	p.AddPrinter(&PrinterToWriter{}).AddPrinter(&PrinterToWriter{})
	assert.Equal(t, 2, len(p.printers))
}

func TestPrinter_Print(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockErr := errors.New("mock error")

	first := NewMockPrinter(ctrl)
	second := NewMockPrinter(ctrl)
	p := NewPrinters().AddPrinter(first).AddPrinter(second)

	first.EXPECT().Print().Return(nil)
	second.EXPECT().Print().Return(nil)
	assert.NoError(t, p.Print())

	// a failing printer does not stop the others
	first.EXPECT().Print().Return(mockErr)
	second.EXPECT().Print().Return(nil)
	assert.ErrorIs(t, p.Print(), mockErr)
}

func TestPrinter_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPrinter := NewMockPrinter(ctrl)
	p := NewPrinters().AddPrinter(mockPrinter)

	mockPrinter.EXPECT().Close().Return(nil)
	assert.NoError(t, p.Close())
}

func TestPrinterToWriter_Print(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinters().AddPrinterToWriter(&buf, func() string { return "Hello, World!" })
	require.NoError(t, p.Print())
	require.NoError(t, p.Print())
	assert.Equal(t, "Hello, World!Hello, World!", buf.String())
	assert.NoError(t, p.Close())
}

func TestPrinterToFile_Print(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	count := 0
	p := NewPrinters().AddPrinterToFile(path, func() string {
		count++
		return "run\n"
	})
	require.NoError(t, p.Print())
	require.NoError(t, p.Print())
	assert.Equal(t, 2, count)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "run\nrun\n", string(content))
}

func TestPrinterToFile_EmptyPathIsSkipped(t *testing.T) {
	p := NewPrinters().AddPrinterToFile("", func() string { return "" })
	assert.Empty(t, p.printers)
}

func TestPrinterToFile_PrintError(t *testing.T) {
	p := NewPrinterToFile(filepath.Join(t.TempDir(), "missing", "report.txt"), func() string { return "" })
	assert.ErrorContains(t, p.Print(), "unable to print to file")
	assert.NoError(t, p.Close())
}
