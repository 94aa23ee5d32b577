package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"geigermarsden/internal/config"
	"geigermarsden/internal/foil"
	"geigermarsden/internal/util"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("geigermarsden: ")
	if err := run(os.Args[1:], os.Stdout, log.Default()); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("geigermarsden", flag.ContinueOnError)
	fs.SetOutput(logger.Writer())
	def := config.Default()
	var cfgPath string
	var verbose bool
	area := fs.Float64("area", def.FoilArea, "foil area in square meters")
	nuclei := fs.Int("nuclei", def.NumNuclei, "number of nuclei in the foil")
	particles := fs.Int("particles", def.NumParticles, "number of particles to emit")
	nucleusR := fs.Float64("nucleus-radius", def.NucleusRadius, "nucleus radius in meters")
	particleR := fs.Float64("particle-radius", def.ParticleRadius, "particle radius in meters")
	seed := fs.Uint64("seed", 0, "random seed (default: clock)")
	runs := fs.Int("runs", def.Runs, "number of independent runs")
	fs.StringVar(&cfgPath, "config", "", "YAML experiment preset; explicit flags override it")
	fs.BoolVar(&verbose, "v", false, "log simulation events")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ec := def
	if cfgPath != "" {
		loaded, err := config.LoadExperiment(cfgPath)
		if err != nil {
			return err
		}
		ec = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "area":
			ec.FoilArea = *area
		case "nuclei":
			ec.NumNuclei = *nuclei
		case "particles":
			ec.NumParticles = *particles
		case "nucleus-radius":
			ec.NucleusRadius = *nucleusR
		case "particle-radius":
			ec.ParticleRadius = *particleR
		case "seed":
			ec.Seed = *seed
		case "runs":
			ec.Runs = *runs
		}
	})
	if ec.Seed == 0 {
		ec.Seed = uint64(time.Now().UnixNano())
	}

	var opts []foil.Option
	if verbose {
		opts = append(opts, foil.WithObserver(func(ev foil.Event) {
			logger.Printf("event %d %s %v", ev.Seq, ev.Type, ev.Payload)
		}))
	}

	p := foil.ParamsFromConfig(ec)
	if ec.Runs != 1 {
		sum, err := foil.RunBatch(p, ec.Runs, ec.Seed, opts...)
		if err != nil {
			return fmt.Errorf("simulate batch: %w", err)
		}
		return foil.WriteBatchReport(stdout, sum)
	}
	res, err := foil.Run(p, util.New(ec.Seed), opts...)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	return foil.WriteReport(stdout, res)
}
