/*
 * tokens.go, part of biostruct.
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

import "fmt"

type token struct {
	text   string
	quoted bool //quoted and text-field tokens are always values
}

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

func iswhite(b byte) bool {
	return asciiSpace[b]
}

// splitLine breaks a line into words separated by white space and matching
// quotes. A quote only closes a value when followed by white space, so
// primed atom names such as `O5'` work both unquoted and quoted.
// An unquoted '#' at the start of a word starts a comment.
func splitLine(line string, ret []token) ([]token, error) {
	ret = ret[:0]
	i := 0
	n := len(line)
	for i < n {
		for i < n && iswhite(line[i]) {
			i++
		}
		if i >= n {
			break
		}
		c := line[i]
		switch {
		case c == '#':
			return ret, nil
		case c == '\'' || c == '"':
			start := i + 1
			j := start
			closed := false
			for ; j < n; j++ {
				if line[j] == c && (j+1 == n || iswhite(line[j+1])) {
					closed = true
					break
				}
			}
			if !closed {
				return ret, fmt.Errorf("unterminated quote in line: %s", line)
			}
			ret = append(ret, token{text: line[start:j], quoted: true})
			i = j + 1
		default:
			start := i
			for i < n && !iswhite(line[i]) {
				i++
			}
			ret = append(ret, token{text: line[start:i]})
		}
	}
	return ret, nil
}
