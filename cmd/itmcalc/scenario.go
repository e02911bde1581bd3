// Copyright (c) 2023, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/openthread/ot-ns/itm"
	"github.com/openthread/ot-ns/itmtypes"
)

// ScenarioFile is the top-level shape of a YAML scenario file passed to
// -scenario.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one propagation-loss prediction request: either a
// point-to-point path (Profile set) or an area-mode path (Area set), never
// both.
type Scenario struct {
	Name   string          `yaml:"name"`
	Input  InputYAML       `yaml:"input"`
	Profile *ProfileYAML   `yaml:"profile,omitempty"`
	Area    *AreaYAML      `yaml:"area,omitempty"`
}

// InputYAML mirrors itm.InputParameters in a YAML-friendly shape.
type InputYAML struct {
	TxHeight_m     float64 `yaml:"txHeight_m"`
	RxHeight_m     float64 `yaml:"rxHeight_m"`
	Frequency_MHz  float64 `yaml:"frequency_MHz"`
	Polarization   string  `yaml:"polarization"`
	Permittivity   float64 `yaml:"permittivity"`
	Conductivity   float64 `yaml:"conductivity"`
	Refractivity_N float64 `yaml:"refractivity_N"`
	Climate        string  `yaml:"climate"`
	VarMode        string  `yaml:"varMode"`
	TimePct        float64 `yaml:"timePct"`
	LocationPct    float64 `yaml:"locationPct"`
	SituationPct   float64 `yaml:"situationPct"`
}

// ProfileYAML is the point-to-point terrain profile for a scenario.
type ProfileYAML struct {
	Heights_m          []float64 `yaml:"heights_m"`
	SampleResolution_m float64   `yaml:"sampleResolution_m"`
}

// AreaYAML is the area-mode inputs for a scenario.
type AreaYAML struct {
	Dist_km  float64 `yaml:"dist_km"`
	DeltaH_m float64 `yaml:"deltaH_m"`
	TxSiting string  `yaml:"txSiting"`
	RxSiting string  `yaml:"rxSiting"`
}

// LoadScenarioFile reads and parses a scenario YAML file.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario file %q", path)
	}

	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing scenario file %q", path)
	}
	return &file, nil
}

// Run executes this scenario's ComputeP2P or ComputeArea call.
func (s Scenario) Run() (itm.Result, error) {
	in, err := s.Input.toInputParameters()
	if err != nil {
		return itm.Result{}, err
	}

	switch {
	case s.Profile != nil:
		profile := itm.TerrainProfile{
			Heights_m:          s.Profile.Heights_m,
			SampleResolution_m: s.Profile.SampleResolution_m,
		}
		return itm.ComputeP2P(in, profile)
	case s.Area != nil:
		txSiting, err := parseSiting(s.Area.TxSiting)
		if err != nil {
			return itm.Result{}, err
		}
		rxSiting, err := parseSiting(s.Area.RxSiting)
		if err != nil {
			return itm.Result{}, err
		}
		return itm.ComputeArea(in, s.Area.Dist_km, s.Area.DeltaH_m, txSiting, rxSiting)
	default:
		return itm.Result{}, errors.Errorf("scenario %q has neither profile nor area inputs", s.Name)
	}
}

func (in InputYAML) toInputParameters() (itm.InputParameters, error) {
	pol, err := parsePolarization(in.Polarization)
	if err != nil {
		return itm.InputParameters{}, err
	}
	climate, err := parseClimate(in.Climate)
	if err != nil {
		return itm.InputParameters{}, err
	}
	varMode, err := parseVarMode(in.VarMode)
	if err != nil {
		return itm.InputParameters{}, err
	}

	return itm.InputParameters{
		TxHeight_m:     in.TxHeight_m,
		RxHeight_m:     in.RxHeight_m,
		Frequency_MHz:  in.Frequency_MHz,
		Polarization:   pol,
		Permittivity:   in.Permittivity,
		Conductivity:   in.Conductivity,
		Refractivity_N: in.Refractivity_N,
		Climate:        climate,
		VarMode:        varMode,
		TimePct:        in.TimePct,
		LocationPct:    in.LocationPct,
		SituationPct:   in.SituationPct,
	}, nil
}

func parsePolarization(s string) (itmtypes.Polarization, error) {
	switch s {
	case "horizontal":
		return itmtypes.Horizontal, nil
	case "vertical":
		return itmtypes.Vertical, nil
	default:
		return 0, errors.Errorf("unknown polarization %q", s)
	}
}

func parseClimate(s string) (itmtypes.RadioClimate, error) {
	switch s {
	case "equatorial":
		return itmtypes.Equatorial, nil
	case "continentalSubtropical":
		return itmtypes.ContinentalSubtropical, nil
	case "maritimeSubtropical":
		return itmtypes.MaritimeSubtropical, nil
	case "desert":
		return itmtypes.Desert, nil
	case "continentalTemperate":
		return itmtypes.ContinentalTemperate, nil
	case "maritimeTemperateOverLand":
		return itmtypes.MaritimeTemperateOverLand, nil
	case "maritimeTemperateOverSea":
		return itmtypes.MaritimeTemperateOverSea, nil
	default:
		return 0, errors.Errorf("unknown climate %q", s)
	}
}

func parseVarMode(s string) (itmtypes.VariabilityMode, error) {
	switch s {
	case "singleMessage":
		return itmtypes.SingleMessageMode, nil
	case "accidental":
		return itmtypes.AccidentalMode, nil
	case "mobile":
		return itmtypes.MobileMode, nil
	case "broadcast":
		return itmtypes.BroadcastMode, nil
	default:
		return 0, errors.Errorf("unknown variability mode %q", s)
	}
}

func parseSiting(s string) (itmtypes.SitingCriteria, error) {
	switch s {
	case "random":
		return itmtypes.Random, nil
	case "careful":
		return itmtypes.Careful, nil
	case "veryCareful":
		return itmtypes.VeryCareful, nil
	default:
		return 0, errors.Errorf("unknown siting criteria %q", s)
	}
}
