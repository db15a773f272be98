// Package main provides the Neura ML Framework CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/neura-ml/neura/tensor"
)

const version = "v0.1.0-dev"

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Neura ML Framework - N-dimensional tensors for Go")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Usage: neura [flags] <command> [command flags]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  matmul     Multiply two filled tensors, e.g. matmul -a 2,3,4 -b 4,5")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Printf("Neura ML Framework %s\n", version)
	case "matmul":
		err = exceptions.TryCatch[error](func() {
			must.M(runMatMul(os.Stdout, args[1:]))
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()
		os.Exit(2)
	}
	if err != nil {
		klog.Fatalf("Failed with error: %+v", err)
	}
}

// runMatMul parses the matmul subcommand flags, multiplies two filled operands
// and reports the result on w.
func runMatMul(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("matmul", flag.ContinueOnError)
	fs.SetOutput(w)
	flagA := fs.String("a", "2,3,4", "Shape of the left operand, comma-separated.")
	flagB := fs.String("b", "4,5", "Shape of the right operand, comma-separated.")
	flagFill := fs.Float64("fill", 1, "Value of every operand element.")
	flagSeed := fs.Int64("seed", -1, "If >= 0, fill the operands with N(0, 1) samples from this seed instead of -fill.")
	flagShow := fs.Int("show", 8, "Number of leading result values to print.")
	flagWorkers := fs.Int("workers", 0, "Number of worker goroutines; 0 keeps the configured default.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	shapeA, err := parseShape(*flagA)
	if err != nil {
		return errors.WithMessage(err, "-a")
	}
	shapeB, err := parseShape(*flagB)
	if err != nil {
		return errors.WithMessage(err, "-b")
	}

	if *flagWorkers > 0 {
		cfg := tensor.CurrentParallelConfig()
		cfg.NumWorkers = *flagWorkers
		cfg.Enabled = *flagWorkers > 1
		tensor.SetParallelConfig(cfg)
	}

	a, err := newOperand(shapeA, float32(*flagFill), *flagSeed)
	if err != nil {
		return err
	}
	seedB := *flagSeed
	if seedB >= 0 {
		seedB++
	}
	b, err := newOperand(shapeB, float32(*flagFill), seedB)
	if err != nil {
		return err
	}
	klog.V(1).Infof("operands: %s @ %s", a, b)

	start := time.Now()
	c, err := a.MatMul(b)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(w, "%v @ %v -> %v\n", shapeA, shapeB, c.Shape())
	fmt.Fprintf(w, "%s elements (%s) in %s\n",
		humanize.Comma(int64(c.NumElements())), humanize.Bytes(uint64(c.ByteSize())), elapsed)
	data := c.Data()
	fmt.Fprintf(w, "values: %v\n", data[:min(max(*flagShow, 0), len(data))])
	return nil
}

// newOperand creates a float32 tensor of the given shape, filled with value or,
// if seed >= 0, with seeded normal samples.
func newOperand(shape tensor.Shape, value float32, seed int64) (*tensor.Tensor[float32], error) {
	method := tensor.InitFull(value)
	if seed >= 0 {
		method = tensor.InitRandn[float32](seed)
	}
	return tensor.NewBuilder[float32]().Shape(shape...).Init(method).Build()
}
