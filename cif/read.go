/*
 * read.go, part of biostruct.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * biostruct is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package cif

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var tl func(string) string = strings.ToLower

// ReadFile reads a CIF file. Files ending in .gz are gunzipped, files ending
// in .zst or .zstd are zstd-decompressed, anything else is read as is.
func ReadFile(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{message: err.Error(), filename: name, deco: []string{"ReadFile"}}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	lname := tl(name)
	switch {
	case strings.HasSuffix(lname, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, &Error{message: "Can't open gzip stream: " + err.Error(), filename: name, deco: []string{"ReadFile"}}
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(lname, ".zst"), strings.HasSuffix(lname, ".zstd"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, &Error{message: "Can't open zstd stream: " + err.Error(), filename: name, deco: []string{"ReadFile"}}
		}
		defer zr.Close()
		r = zr
	}
	file, err := read(r, name)
	if err != nil {
		err.(*Error).Decorate("ReadFile")
		return nil, err
	}
	return file, nil
}

// Read reads a CIF from an io.Reader.
func Read(r io.Reader) (*File, error) {
	file, err := read(r, "reader")
	if err != nil {
		err.(*Error).Decorate("Read")
		return nil, err
	}
	return file, nil
}

// the state while going through the tokens.
type parser struct {
	file      *File
	block     *Block
	inLoop    bool
	loopHead  bool
	loopNames []string //full data names
	loopCols  [][]string
	loopCount int
	pending   string //data name waiting for its value
	name      string
	line      int
}

func (p *parser) fail(msg string) error {
	return &Error{message: msg, filename: p.name, line: p.line, deco: []string{"read"}}
}

func (p *parser) currentBlock() *Block {
	if p.block == nil {
		p.block = newBlock("")
		p.file.Blocks = append(p.file.Blocks, p.block)
	}
	return p.block
}

// finishLoop stores the loop being read, if any, in its category.
func (p *parser) finishLoop() error {
	if !p.inLoop {
		return nil
	}
	p.inLoop = false
	if len(p.loopNames) == 0 {
		return nil
	}
	if p.loopCount%len(p.loopNames) != 0 {
		return p.fail("number of values in loop is not a multiple of the number of fields")
	}
	cat := ""
	fields := make([]string, 0, len(p.loopNames))
	for _, v := range p.loopNames {
		c, f, err := splitName(v)
		if err != nil {
			return p.fail(err.Error())
		}
		if cat != "" && c != cat {
			return p.fail("loop mixes categories " + cat + " and " + c)
		}
		cat = c
		fields = append(fields, f)
	}
	if err := p.currentBlock().category(cat).add(fields, p.loopCols); err != nil {
		return p.fail(err.Error())
	}
	p.loopNames = nil
	p.loopCols = nil
	p.loopCount = 0
	return nil
}

func (p *parser) value(t string) error {
	if p.inLoop {
		if len(p.loopNames) == 0 {
			return p.fail("loop_ without data names")
		}
		p.loopHead = false
		p.loopCols[p.loopCount%len(p.loopNames)] = append(p.loopCols[p.loopCount%len(p.loopNames)], t)
		p.loopCount++
		return nil
	}
	if p.pending == "" {
		return p.fail("value without data name: " + t)
	}
	c, f, err := splitName(p.pending)
	if err != nil {
		return p.fail(err.Error())
	}
	p.pending = ""
	if err := p.currentBlock().category(c).add([]string{f}, [][]string{{t}}); err != nil {
		return p.fail(err.Error())
	}
	return nil
}

func (p *parser) token(t token) error {
	if t.quoted {
		return p.value(t.text)
	}
	l := tl(t.text)
	switch {
	case strings.HasPrefix(l, "data_"):
		if err := p.finishLoop(); err != nil {
			return err
		}
		if p.pending != "" {
			return p.fail("data name without value: " + p.pending)
		}
		p.block = newBlock(t.text[5:])
		p.file.Blocks = append(p.file.Blocks, p.block)
	case l == "loop_":
		if err := p.finishLoop(); err != nil {
			return err
		}
		p.inLoop = true
		p.loopHead = true
	case strings.HasPrefix(t.text, "_"):
		if p.inLoop && p.loopHead {
			p.loopNames = append(p.loopNames, t.text)
			p.loopCols = append(p.loopCols, nil)
			return nil
		}
		if err := p.finishLoop(); err != nil {
			return err
		}
		if p.pending != "" {
			return p.fail("data name without value: " + p.pending)
		}
		p.pending = t.text
	default:
		return p.value(t.text)
	}
	return nil
}

func read(r io.Reader, name string) (*File, error) {
	p := &parser{file: new(File), name: name}
	br := bufio.NewReader(r)
	var inText bool
	var text []string
	toks := make([]token, 0, 32)
	var err error
	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, p.fail(rerr.Error())
		}
		if line == "" && rerr == io.EOF {
			break
		}
		p.line++
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, ";") {
			if inText {
				inText = false
				if err := p.token(token{text: strings.TrimSpace(strings.Join(text, "\n")), quoted: true}); err != nil {
					return nil, err
				}
				text = text[:0]
			} else {
				inText = true
				text = append(text[:0], line[1:])
			}
			if rerr == io.EOF {
				break
			}
			continue
		}
		if inText {
			text = append(text, line)
			if rerr == io.EOF {
				break
			}
			continue
		}
		toks, err = splitLine(line, toks)
		if err != nil {
			return nil, p.fail(err.Error())
		}
		for _, t := range toks {
			if err := p.token(t); err != nil {
				return nil, err
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	if inText {
		return nil, p.fail("unterminated text field")
	}
	if err := p.finishLoop(); err != nil {
		return nil, err
	}
	if p.pending != "" {
		return nil, p.fail("data name without value: " + p.pending)
	}
	return p.file, nil
}
