/*
 * doc.go, part of biostruct.
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
 */

// Package chemjson serializes the derived properties of structures as JSON, one
// report per line, so biostruct programs can pass them to independent programs,
// written in any language with a JSON library, for instance through UNIX pipes.
package chemjson
