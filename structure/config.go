/*
 * config.go, part of biostruct.
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

package structure

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// BondingParams are the parameters of the distance criterion used to find bonds
// between units. Distances are in A.
type BondingParams struct {
	//Pairs closer than this are never bonded.
	TooClose float64 `yaml:"too_close" validate:"gte=0"`
	//Added to the sum of the covalent radii of both atoms.
	Tolerance float64 `yaml:"tolerance" validate:"gte=0"`
	//Radius of the search for bond partners around each atom.
	MaxRadius         float64 `yaml:"max_radius" validate:"gt=0,gtfield=TooClose"`
	EnforceValence    bool    `yaml:"enforce_valence"`
	SkipHydrogenPairs bool    `yaml:"skip_hydrogen_pairs"`
}

// DefaultBondingParams returns the default parameters.
func DefaultBondingParams() BondingParams {
	return BondingParams{
		TooClose:          0.63,
		Tolerance:         0.45,
		MaxRadius:         4.0,
		EnforceValence:    true,
		SkipHydrogenPairs: true,
	}
}

var validate = validator.New()

// Validate returns an error if the parameters are not usable.
func (P BondingParams) Validate() error {
	if err := validate.Struct(P); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %s%s", e.Field(), e.Tag(), paramSuffix(e.Param())))
			}
			return fmt.Errorf("invalid bonding parameters: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

// LoadBondingParams reads YAML parameters from r, on top of the defaults, and
// validates the result. An empty input gives the defaults.
func LoadBondingParams(r io.Reader) (BondingParams, error) {
	p := DefaultBondingParams()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return p, errDecorate(fmt.Errorf("decoding bonding parameters: %w", err), "LoadBondingParams")
	}
	if err := p.Validate(); err != nil {
		return p, errDecorate(err, "LoadBondingParams")
	}
	return p, nil
}

// LoadBondingParamsFile is like LoadBondingParams, reading from the named file.
func LoadBondingParamsFile(name string) (BondingParams, error) {
	f, err := os.Open(name)
	if err != nil {
		return DefaultBondingParams(), errDecorate(err, "LoadBondingParamsFile")
	}
	defer f.Close()
	return LoadBondingParams(f)
}
