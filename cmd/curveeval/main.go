package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sgostarter/i/l"
	"github.com/tdewolff/argp"
	"honnef.co/go/animcurve/keyframe"
)

type Eval struct {
	Track     string `short:"t" desc:"Track name, all tracks if empty"`
	Format    string `short:"f" default:"points" desc:"Output format: points, csv or svg"`
	Precision int    `short:"p" default:"0" desc:"Maximum number of decimals, 0 for exact"`
	Depth     int    `short:"d" desc:"Flattening depth of tracks without their own"`
	Verbose   bool   `short:"v" desc:"Log evaluation progress"`
	Input     string `index:"0" desc:"Keyframe document"`
}

type Sample struct {
	Track     string `short:"t" desc:"Track name, all tracks if empty"`
	N         int    `short:"n" default:"11" desc:"Number of samples per track"`
	Format    string `short:"f" default:"points" desc:"Output format: points or csv"`
	Precision int    `short:"p" default:"0" desc:"Maximum number of decimals, 0 for exact"`
	Input     string `index:"0" desc:"Keyframe document"`
}

func main() {
	root := argp.NewCmd(&Eval{}, "Keyframe curve evaluator")
	root.AddCmd(&Sample{}, "sample", "Sample tracks at evenly spaced times")
	root.Parse()
	root.PrintHelp()
}

// load builds the bank of the document at path and returns the selected
// tracks.
func load(path, track string, depth int, logger l.Wrapper) ([]*keyframe.Track, error) {
	doc, err := keyframe.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if depth != 0 {
		doc.Config.Depth = depth
	}

	bank, err := doc.Bank(logger)
	if err != nil {
		return nil, err
	}
	if track != "" {
		t, err := bank.Track(track)
		if err != nil {
			return nil, err
		}
		return []*keyframe.Track{t}, nil
	}
	if err := bank.EvaluateAll(context.Background()); err != nil {
		return nil, err
	}
	return bank.Tracks(), nil
}

func (cmd *Eval) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	format, err := parseFormat(cmd.Format, true)
	if err != nil {
		return err
	}

	var logger l.Wrapper
	if cmd.Verbose {
		logger = l.NewConsoleLoggerWrapper()
	}
	tracks, err := load(cmd.Input, cmd.Track, cmd.Depth, logger)
	if err != nil {
		return err
	}

	w := newWriter(os.Stdout, format, cmd.Precision)
	for _, t := range tracks {
		pts, err := t.Evaluate()
		if err != nil {
			return err
		}
		w.Track(t.Name(), pts)
	}
	return w.Flush()
}

func (cmd *Sample) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	if cmd.N < 1 {
		return fmt.Errorf("number of samples must be positive, got %d", cmd.N)
	}
	format, err := parseFormat(cmd.Format, false)
	if err != nil {
		return err
	}

	tracks, err := load(cmd.Input, cmd.Track, 0, nil)
	if err != nil {
		return err
	}

	w := newWriter(os.Stdout, format, cmd.Precision)
	for _, t := range tracks {
		pts, err := t.Sample(cmd.N)
		if err != nil {
			return err
		}
		w.Track(t.Name(), pts)
	}
	return w.Flush()
}
