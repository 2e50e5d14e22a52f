// Package main provides the tensorlab CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"k8s.io/klog/v2"

	"github.com/born-ml/tensorlab/nn"
	"github.com/born-ml/tensorlab/tensor"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("tensorlab %s\n", version)
	case "xor":
		err := runXOR(os.Args[2:], os.Stdout)
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if err != nil {
			klog.Fatalf("xor: %v", err)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "tensorlab - strided tensors and a small feedforward network")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  xor        Train a network on XOR and print its predictions")
}

// xorConfig holds the flags of the xor command.
type xorConfig struct {
	epochs int
	lr     float64
	hidden int
	seed   int64
}

func parseXORFlags(args []string) (xorConfig, error) {
	var cfg xorConfig
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	fs.IntVar(&cfg.epochs, "epochs", 5000, "training epochs")
	fs.Float64Var(&cfg.lr, "lr", 0.1, "learning rate")
	fs.IntVar(&cfg.hidden, "hidden", 8, "hidden layer width")
	fs.Int64Var(&cfg.seed, "seed", 42, "weight initialization seed")
	klog.InitFlags(fs)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.epochs <= 0 || cfg.hidden <= 0 {
		return cfg, fmt.Errorf("epochs and hidden must be positive, got %d and %d", cfg.epochs, cfg.hidden)
	}
	return cfg, nil
}

func xorData() (*nn.DataSource, error) {
	data := nn.NewDataSource()
	for _, c := range [][3]float64{{0, 0, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 0}} {
		in, err := tensor.Column([]float64{c[0], c[1]})
		if err != nil {
			return nil, err
		}
		out, err := tensor.Column([]float64{c[2]})
		if err != nil {
			return nil, err
		}
		data.Push(in, out)
	}
	return data, nil
}

func runXOR(args []string, w io.Writer) error {
	cfg, err := parseXORFlags(args)
	if err != nil {
		return err
	}
	defer klog.Flush()

	data, err := xorData()
	if err != nil {
		return err
	}

	init := nn.Xavier(rand.New(rand.NewSource(cfg.seed)))
	network := nn.NewFeedforwardNetwork(
		nn.NewDense(2, cfg.hidden, init),
		nn.Tanh(),
		nn.NewDense(cfg.hidden, 1, init),
		nn.Tanh(),
	)

	klog.Infof("training XOR: epochs=%d lr=%g hidden=%d seed=%d", cfg.epochs, cfg.lr, cfg.hidden, cfg.seed)
	loss, err := network.Train(data, nn.TrainConfig{Epochs: cfg.epochs, LearningRate: cfg.lr})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "error after %d epochs: %.6f\n", cfg.epochs, loss)

	for _, s := range data.Samples() {
		out, err := network.Eval(s.Input)
		if err != nil {
			return err
		}
		in := s.Input.Values()
		fmt.Fprintf(w, "%v XOR %v = %.4f\n", in[0], in[1], out.Values()[0])
	}
	return nil
}
