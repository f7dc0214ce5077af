// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	osuser "os/user"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/seqlab/nucseg"
	"github.com/seqlab/nucseg/hmm"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	appName    = "nucseg"
	appVersion = "0.1"
)

var config *nucseg.Config

var (
	app         = kingpin.New(appName, "Nucleotide sequence annotation with a two-state hidden Markov model.")
	logToStderr = app.Flag("log-stderr", "Logs are written to standard error instead of files.").Default("true").Bool()
	vLevel      = app.Flag("log-level", "Enable V-leveled logging at the specified level.").Default("0").Short('v').String()
	logDir      = app.Flag("log", "Log output dir.").Default("").String()

	preset    = app.Flag("preset", "Built-in model preset.").Short('p').Enum("base-composition", "coding-regions")
	modelFile = app.Flag("model-in", "Read model parameters from a JSON file instead of a preset.").Short('i').String()

	eval    = app.Command("eval", "Compute the log probability of a sequence.")
	evalSeq = eval.Arg("sequence", "Nucleotide sequence (A, C, G, T).").Required().String()

	annotate     = app.Command("annotate", "Label each position with its most probable hidden state.")
	annotateSeq  = annotate.Arg("sequence", "Nucleotide sequence (A, C, G, T).").Required().String()
	threshold    = annotate.Flag("threshold", "Posterior probability threshold for state 1.").Default("0.5").Float64()
	withSegments = annotate.Flag("segments", "Also print the state-1 segments.").Bool()

	viterbi    = app.Command("viterbi", "Compute the most probable hidden state path.")
	viterbiSeq = viterbi.Arg("sequence", "Nucleotide sequence (A, C, G, T).").Required().String()

	rand     = app.Command("rand", "Generate a random sequence using the model.")
	randLen  = rand.Flag("length", "Sequence length.").Default("100").Int()
	randSeed = rand.Flag("seed", "Seed for the random number generator.").Default("33").Int64()

	export    = app.Command("export", "Write the selected model parameters to a JSON file.")
	exportOut = export.Arg("file", "Output filename.").Required().String()
)

func init() {
	currDir, e1 := os.Getwd()
	nucseg.Fatal(e1)
	propPath := currDir
	u, e2 := osuser.Current()
	if e2 == nil {
		propPath = filepath.Join(u.HomeDir, ".config", "nucseg")
	}
	propPath = filepath.Join(propPath, "properties.toml")
	propEnvVar := os.Getenv("NUCSEG_PROPERTIES")
	if len(propEnvVar) > 0 {
		propPath = propEnvVar
	}

	c, e3 := nucseg.ReadConfig(propPath)
	if e3 != nil {
		config = &nucseg.Config{
			Model: "hmm",
			HMM: nucseg.HMM{
				Preset:       "base-composition",
				Threshold:    0.5,
				GeneratorLen: 100,
			},
		}
		return
	}
	config = c
}

func main() {
	app.Version(appVersion)
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	initGlog()
	defer glog.Flush()
	printAppValues()

	m := selectModel()

	switch cmd {

	case eval.FullCommand():
		glog.V(3).Info("start eval command")
		printResult(nucseg.Result{
			Sequence: *evalSeq,
			LogProb:  m.LogProb(*evalSeq),
		})

	case annotate.FullCommand():
		glog.V(3).Info("start annotate command")
		doAnnotate(m)

	case viterbi.FullCommand():
		glog.V(3).Info("start viterbi command")
		path, logProb := m.ViterbiDecode(*viterbiSeq)
		printResult(nucseg.Result{
			Sequence:   *viterbiSeq,
			Annotation: pathString(m, path),
			LogProb:    logProb,
		})

	case rand.FullCommand():
		glog.V(3).Info("start rand command")
		s, states := hmm.NewGenerator(m, *randSeed).Next(*randLen)
		printResult(nucseg.Result{
			Sequence:   s,
			Annotation: pathString(m, states),
			LogProb:    m.LogProb(s),
		})

	case export.FullCommand():
		glog.V(3).Info("start export command")
		nucseg.Fatal(m.WriteFile(*exportOut))

	default:
		app.Usage(os.Args[1:])
	}
}

// selectModel loads the model named by flags, falling back to the
// properties file.
func selectModel() *hmm.Model {

	fn := config.HMM.ModelFile
	if len(*modelFile) > 0 {
		fn = *modelFile
	}
	if len(fn) > 0 {
		m, e := hmm.ReadFile(fn)
		nucseg.Fatal(e)
		return m
	}

	name := config.HMM.Preset
	if len(*preset) > 0 {
		name = *preset
	}
	switch name {
	case "coding-regions":
		return hmm.NewCodingRegions()
	default:
		return hmm.NewBaseComposition()
	}
}

func doAnnotate(m *hmm.Model) {

	th := config.HMM.Threshold
	if *threshold != 0.5 {
		th = *threshold
	}
	labels := m.Decode(*annotateSeq, th)
	out := make([]byte, len(labels))
	for i, label := range labels {
		out[i] = m.StateSymbols[label]
	}
	printResult(nucseg.Result{
		Sequence:   *annotateSeq,
		Annotation: string(out),
		LogProb:    m.LogProb(*annotateSeq),
	})
	if *withSegments {
		for _, seg := range hmm.Segments(labels) {
			fmt.Printf("%c %d-%d %s\n", m.StateSymbols[1], seg.Start, seg.End,
				(*annotateSeq)[seg.Start:seg.End+1])
		}
	}
}

func pathString(m *hmm.Model, states []int) string {

	out := make([]byte, len(states))
	for i, s := range states {
		out[i] = m.StateSymbols[s]
	}
	return string(out)
}

func printResult(r nucseg.Result) {

	b, e := json.Marshal(r)
	nucseg.Fatal(e)
	fmt.Println(string(b))
}

// Creates dir if it doesn't exist.
func checkDir(path string) {

	if len(path) == 0 {
		return
	}
	e := os.MkdirAll(path, 0755)
	if e != nil {
		glog.Fatal(e)
	}
}

func initGlog() {

	checkDir(*logDir)
	if *logToStderr {
		flag.Set("alsologtostderr", "true")
	}
	flag.Set("v", *vLevel)
	if len(*logDir) > 0 {
		flag.Set("log_dir", *logDir)
	}
}

func printAppValues() {
	glog.Info("app version: ", appVersion)
	glog.Info("app config: ", *config)
	glog.Info("app log to std err: ", *logToStderr)
	glog.Info("app log level: ", *vLevel)
}
