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

// Command itmcalc runs one or more ITM propagation-loss scenarios loaded
// from a YAML file and prints the resulting loss, regime, and warnings for
// each to stdout as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mitchellh/go-wordwrap"

	"github.com/openthread/ot-ns/itm"
	"github.com/openthread/ot-ns/logger"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario YAML file (required)")
	logLevel := flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "itmcalc: -scenario is required")
		os.Exit(2)
	}

	setLogLevel(*logLevel)

	file, err := LoadScenarioFile(*scenarioPath)
	logger.FatalIfError(err, "loading scenario file: %v", err)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	exitCode := 0
	for _, sc := range file.Scenarios {
		logger.Infof("running scenario %q", sc.Name)

		result, err := sc.Run()
		if err != nil {
			logger.Errorf("scenario %q failed: %v", sc.Name, err)
			exitCode = 1
			continue
		}

		if names := result.Warnings.Names(); len(names) > 0 {
			summary := fmt.Sprintf("scenario %q warnings: %v", sc.Name, names)
			logger.Warnf(wordwrap.WrapString(summary, 100))
		}

		out := struct {
			Name   string      `json:"name"`
			Result itm.Result  `json:"result"`
		}{Name: sc.Name, Result: result}
		if err := enc.Encode(out); err != nil {
			logger.FatalIfError(err, "encoding result: %v", err)
		}
	}

	os.Exit(exitCode)
}

func setLogLevel(name string) {
	switch name {
	case "trace":
		logger.SetLevel(logger.TraceLevel)
	case "debug":
		logger.SetLevel(logger.DebugLevel)
	case "info":
		logger.SetLevel(logger.InfoLevel)
	case "warn":
		logger.SetLevel(logger.WarnLevel)
	case "error":
		logger.SetLevel(logger.ErrorLevel)
	default:
		logger.Panicf("unknown log level: %s", name)
	}
}
