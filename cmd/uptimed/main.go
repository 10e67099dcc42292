package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/jeffypooo/uptimed/internal/config"
	"github.com/jeffypooo/uptimed/internal/metrics"
	"github.com/jeffypooo/uptimed/internal/sched"
	"github.com/jeffypooo/uptimed/internal/statsd"
)

const samplePeriod = 60 * time.Second

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "load settings from a YAML file instead of positional arguments")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	} else {
		cfg, err = config.FromArgs(flag.Args())
		if err != nil {
			usage()
			os.Exit(1)
		}
	}

	src := metrics.NewSystemSource()
	snap, err := metrics.NewSnapshot(src, cfg.Namespace, cfg.Interface, cfg.Filesystem)
	if err != nil {
		log.Fatalf("Error reading initial metrics: %v", err)
	}
	emitter := statsd.NewEmitter(cfg.Destination)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("reporting to %s:%d as %s.%s every %s", cfg.Destination, statsd.Port, cfg.Namespace, snap.Hostname, samplePeriod)

	loop := sched.Loop{Period: samplePeriod}
	err = loop.Run(ctx, func() error {
		if err := snap.Sample(src); err != nil {
			return err
		}
		return emitter.Emit(snap.Gauges().Encode())
	})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func usage() {
	fmt.Println(`Usage: uptimed statsd-server namespace filesystem network-interface

The following stats are gathered once per minute and sent as statsd
gauges to the server listed above on UDP port 8125, each named
<namespace>.<hostname>.<stat>:

  net-rx    Bytes received in the last minute
  net-tx    Bytes transmitted in the last minute
  uptime    Seconds of uptime. Alert if not seen in the last 5 minutes
  availmem  Percent of memory available. Alert if < 20
  diskfree  Percent of disk free. Alert if < 10
  load      Load average, scaled 100x (to get an int) and divided by the
            number of cores. 100 is generally saturation. Alert if > 100

Pass -config <file.yaml> to load the same settings from a file instead.`)
}
