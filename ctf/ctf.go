/*
 * ctf.go, part of gocharges.
 *
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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
 *
 * goCharges is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package ctf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//CtfW writes tables of partial charges to a compressed file.
type CtfW struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	tables    int
}

//NewWriter creates a file named name and returns a handle to write charge
//tables for natoms atoms to it. The compression is selected from the last
//letter of name, as described in the package documentation. The pairs in
//header, if given, are written as the file's header.
func NewWriter(name string, natoms int, header map[string]string, compressionLevel ...int) (*CtfW, error) {
	var level int = 5
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	S := new(CtfW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	case 'r':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, level) }
	default:
		AnyNewWriter = zstdwriter
	}
	S.h, err = AnyNewWriter(S.f)
	if err != nil {
		return nil, Error{"Can't create compressor " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.natoms = natoms
	S.filename = name
	S.writeable = true
	if header != nil {
		headerstr := ""
		for k, v := range header {
			headerstr += fmt.Sprintf("%s=%s\n", k, v)
		}
		S.h.Write([]byte(headerstr))
	}
	S.h.Write([]byte(fmt.Sprintf("** %d\n", S.natoms)))
	return S, nil
}

func (S *CtfW) Len() int {
	return S.natoms
}

//WNext writes one charge table. symbols and charges must each have one
//element per atom.
func (S *CtfW) WNext(symbols []string, charges []float64) error {
	if !S.writeable {
		return Error{TableUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if charges == nil {
		return Error{NilCharges, S.filename, []string{"WNext"}, true}
	}
	if len(charges) != S.natoms || len(symbols) != S.natoms {
		return Error{fmt.Sprintf("%d charges and %d symbols given, but %d expected", len(charges), len(symbols), S.natoms), S.filename, []string{"WNext"}, true}
	}
	for i, q := range charges {
		str := fmt.Sprintf("%d %s %.6f\n", i, symbols[i], q)
		if _, err := S.h.Write([]byte(str)); err != nil {
			return Error{"Can't write table " + err.Error(), S.filename, []string{"WNext"}, true}
		}
	}
	S.h.Write([]byte("*\n"))
	S.tables++
	return nil
}

func (S *CtfW) Close() {
	if !S.writeable {
		return
	}
	S.h.Close()
	S.f.Close()
	S.writeable = false
}

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	close func()
	*zstd.Decoder
}

func (q *stdql) Close() error {
	q.close()
	return nil
}

//CtfR reads tables of partial charges from a compressed file.
type CtfR struct {
	f          *os.File
	z          io.ReadCloser
	h          *bufio.Reader
	natoms     int
	filename   string
	readable   bool
	tablesread int
}

//New opens a CTF file for reading and returns a handle, a map with the
//header metadata (empty if none was found) and error or nil.
func New(name string) (*CtfR, map[string]string, error) {
	S := new(CtfR)
	S.natoms = -1 //just so we know if things don't work
	var err error
	S.filename = name
	S.f, err = os.Open(S.filename)
	if err != nil {
		return nil, nil, err
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return &stdql{r.Close, r}, nil
	}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	case 'r':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return flate.NewReader(a), nil }
	default:
		AnyNewReader = zstdreader
	}
	S.z, err = AnyNewReader(bufio.NewReader(S.f))
	if err != nil {
		return nil, nil, Error{"Can't open compressed stream " + err.Error(), S.filename, []string{"New"}, true}
	}
	S.h = bufio.NewReader(S.z)
	m := make(map[string]string)
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header " + err.Error(), S.filename, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s'", str), S.filename, []string{"New"}, true}
			}
			S.natoms, err = strconv.Atoi(nat[1])
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s': %s", nat[1], err.Error()), S.filename, []string{"New"}, true}
			}
			break
		}
		kv := strings.Split(str, "=")
		if len(kv) != 2 {
			return nil, nil, Error{"Malformed header line: " + str, S.filename, []string{"New"}, true}
		}
		m[kv[0]] = kv[1]
	}
	S.readable = true
	return S, m, nil
}

func (S *CtfR) Len() int {
	return S.natoms
}

//Readable returns true if it is possible to call Next on the handle.
func (S *CtfR) Readable() bool {
	return S.readable
}

//Next reads the next charge table in the file, returning the charges and
//the atomic symbols. After the last table, it returns io.EOF and closes
//the handle.
func (S *CtfR) Next() ([]float64, []string, error) {
	if !S.readable {
		return nil, nil, Error{TableUnIniRead, S.filename, []string{"Next"}, true}
	}
	charges := make([]float64, 0, S.natoms)
	symbols := make([]string, 0, S.natoms)
	for i := 0; i < S.natoms; i++ {
		str, err := S.h.ReadString('\n')
		if err != nil {
			if err == io.EOF && i == 0 {
				//nothing bad happened here, the file just ended.
				S.Close()
				return nil, nil, io.EOF
			}
			return nil, nil, Error{"Can't read table " + err.Error(), S.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(str)
		//This also catches a premature end-of-table line, i.e. "*", which has 1 field.
		if len(fields) != 3 {
			return nil, nil, Error{"Wrong number of fields in line: " + str, S.filename, []string{"Next"}, true}
		}
		index, err := strconv.Atoi(fields[0])
		if err != nil || index != i {
			return nil, nil, Error{"Wrong atom index in line: " + str, S.filename, []string{"Next"}, true}
		}
		q, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, nil, Error{"Charge unparseable in line: " + str + " " + err.Error(), S.filename, []string{"Next"}, true}
		}
		symbols = append(symbols, fields[1])
		charges = append(charges, q)
	}
	term, err := S.h.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, nil, Error{"Can't read table terminator " + err.Error(), S.filename, []string{"Next"}, true}
	}
	if !strings.HasPrefix(term, "*") {
		return nil, nil, Error{"Missing table terminator, got: " + term, S.filename, []string{"Next"}, true}
	}
	S.tablesread++
	return charges, symbols, nil
}

func (S *CtfR) Close() {
	if !S.readable {
		return
	}
	S.z.Close()
	S.f.Close()
	S.readable = false
}

//Error is the general structure for CTF file errors.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("ctf file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing handle was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "ctf") associated to the error
func (err Error) Format() string { return "ctf" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TableUnIniRead  = "Table object uninitialized to read"
	TableUnIniWrite = "Table object uninitialized to write"
	NilCharges      = "Given nil charges"
)
