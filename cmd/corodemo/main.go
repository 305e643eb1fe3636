// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command corodemo runs a YAML coroutine scenario on a coro App.
//
//	corodemo [-v] [-tick 100ms] [-realtime] [-max 0] [-timeout 0] scenario.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"code.hybscloud.com/coro"
	"code.hybscloud.com/coro/internal/scenario"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		verbose  = flag.Bool("v", false, "log scheduler activity at debug level")
		tick     = flag.Duration("tick", 0, "override the scenario tick length")
		realtime = flag.Bool("realtime", false, "sleep one tick length between updates")
		maxTicks = flag.Uint64("max", 0, "stop after this many ticks (0 = no limit)")
		timeout  = flag.Duration("timeout", 0, "stop after this much wall time (0 = no limit)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scenario.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	sc, err := scenario.Load(flag.Arg(0))
	if err != nil {
		log.WithError(err).Error("failed to load scenario")
		return 1
	}
	step := sc.Tick
	if *tick > 0 {
		step = *tick
	}
	if step == 0 {
		step = 100 * time.Millisecond
	}

	var b *scenario.Builder
	var launchErr error
	app := coro.New(
		coro.WithLogger(log.WithField("scenario", sc.Name)),
		coro.WithStartup(func(app *coro.App) {
			if launchErr = b.Launch(sc); launchErr != nil {
				app.Exit()
			}
		}),
	)
	defer app.Close()
	b = scenario.NewBuilder(app, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	opts := []coro.RunnerOption{coro.WithFixedDelta(step), coro.UntilIdle(), coro.WithMaxTicks(*maxTicks)}
	if *realtime {
		opts = append(opts, coro.WithInterval(step))
	}
	start := time.Now()
	runErr := coro.NewRunner(app, opts...).Run(ctx)
	if launchErr != nil {
		log.WithError(launchErr).Error("failed to build scenario")
		return 1
	}

	fields := logrus.Fields{
		"ticks":      app.Time().Ticks(),
		"elapsed":    app.Time().Elapsed(),
		"wall":       time.Since(start).Round(time.Millisecond),
		"coroutines": app.Coroutines(),
	}
	for _, err := range b.State().Errors {
		log.WithError(err).Warn("predicate error")
	}
	if runErr != nil {
		log.WithError(runErr).WithFields(fields).Warn("scenario interrupted")
		return 1
	}
	log.WithFields(fields).Info("scenario finished")
	return 0
}
