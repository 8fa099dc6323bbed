// Command xor trains a network on the XOR truth table, reports its progress
// and writes the trained network as JSON.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/techarch/brain"
)

var xor = []brain.Example{
	{Input: brain.Vector([]float32{0, 0}), Output: brain.Vector([]float32{0})},
	{Input: brain.Vector([]float32{0, 1}), Output: brain.Vector([]float32{1})},
	{Input: brain.Vector([]float32{1, 0}), Output: brain.Vector([]float32{1})},
	{Input: brain.Vector([]float32{1, 1}), Output: brain.Vector([]float32{0})},
}

func main() {
	iterations := flag.Int("iterations", brain.DefaultIterations, "maximum number of epochs")
	threshold := flag.Float64("threshold", brain.DefaultErrorThreshold, "error to stop training at")
	hidden := flag.String("hidden", "", "comma separated hidden layer sizes; empty grows the hidden layer with the inputs")
	rate := flag.Float64("rate", float64(brain.DefaultLearningRate), "learning rate")
	seed := flag.Int64("seed", 0, "seed for initial weights; 0 picks one")
	resolution := flag.Int("resolution", 1000, "epochs between progress reports")
	out := flag.String("out", "", "file to write the trained network to; empty writes to stdout")
	verbose := flag.Bool("v", false, "log network growth")
	flag.Parse()

	sizes, err := parseSizes(*hidden)
	if err != nil {
		log.Fatalln("error:", err)
	}
	opts := brain.Options{
		LearningRate: float32(*rate),
		Hidden:       sizes,
		Seed:         *seed,
	}
	if *verbose {
		opts.Logger = log.Default()
	}
	net, err := brain.NewNetwork(opts)
	if err != nil {
		log.Fatalln("error:", err)
	}

	res := net.Train(xor, brain.TrainOptions{
		Iterations:     *iterations,
		ErrorThreshold: float32(*threshold),
		Resolution:     *resolution,
		OnProgress: func(p brain.Progress) {
			log.Printf("epoch %d: error %g", p.Iterations, p.Error)
		},
	})
	log.Printf("done after %d epochs: error %g", res.Iterations, res.Error)

	run := net.Compile()
	for _, ex := range xor {
		got := run(ex.Input)
		log.Printf("%v %v -> %.4f (want %v)", ex.Input["0"], ex.Input["1"], got["0"], ex.Output["0"])
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalln("error:", err)
		}
		defer f.Close()
		w = f
	}
	if err := net.Save(w); err != nil {
		log.Fatalln("error:", err)
	}
}

// parseSizes parses a comma separated list of hidden layer sizes
func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, errors.Wrapf(err, "bad hidden layer size %q", field)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
