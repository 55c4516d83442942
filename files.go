/*
 * files.go, part of ocelot.
 *
 * Copyright 2019 The ocelot authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ocelot

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// multiCloser closes the (de)compressor, then the file under it.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openFile opens name for reading. Files ending in .gz or .zst are
// decompressed on the fly.
func openFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("ocelot: %w", err)
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("ocelot: %s: %w", name, err)
		}
		return &multiCloser{Reader: r, closers: []func() error{r.Close, f.Close}}, nil
	case strings.HasSuffix(name, ".zst"):
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("ocelot: %s: %w", name, err)
		}
		rc := r.IOReadCloser()
		return &multiCloser{Reader: rc, closers: []func() error{rc.Close, f.Close}}, nil
	}
	return f, nil
}

// createFile creates (or truncates) name for writing. Files ending in .gz
// or .zst are compressed on the fly.
func createFile(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("ocelot: %w", err)
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		w := gzip.NewWriter(f)
		return &multiCloser{Writer: w, closers: []func() error{w.Close, f.Close}}, nil
	case strings.HasSuffix(name, ".zst"):
		w, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("ocelot: %s: %w", name, err)
		}
		return &multiCloser{Writer: w, closers: []func() error{w.Close, f.Close}}, nil
	}
	return f, nil
}

func readFile(name string, read func(io.Reader) error) error {
	r, err := openFile(name)
	if err != nil {
		return err
	}
	defer r.Close()
	return read(r)
}

// writeFile renders with write first, so a failed write leaves any
// existing file name untouched.
func writeFile(name string, write func(io.Writer) error) error {
	var b bytes.Buffer
	if err := write(&b); err != nil {
		return err
	}
	w, err := createFile(name)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("ocelot: %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("ocelot: %s: %w", name, err)
	}
	return nil
}

// ReadXYZFile replaces the atoms of the molecule with those in the XYZ file name.
func (M *Molecule) ReadXYZFile(name string) error {
	return readFile(name, M.ReadXYZ)
}

// WriteXYZFile writes the molecule to the XYZ file name.
func (M *Molecule) WriteXYZFile(name string) error {
	return writeFile(name, M.WriteXYZ)
}

// ReadXYZFile replaces the atoms of the material with those in the XYZ file name.
func (M *Material) ReadXYZFile(name string) error {
	return readFile(name, M.ReadXYZ)
}

// WriteXYZFile writes the material to the XYZ file name.
func (M *Material) WriteXYZFile(name string) error {
	return writeFile(name, M.WriteXYZ)
}

// WritePOSCARFile writes the material to the POSCAR file name.
func (M *Material) WritePOSCARFile(name string) error {
	return writeFile(name, M.WritePOSCAR)
}

// WriteYAMLFile writes the material to the YAML file name.
func (M *Material) WriteYAMLFile(name string) error {
	return writeFile(name, M.WriteYAML)
}
