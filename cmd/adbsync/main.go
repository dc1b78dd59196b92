package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"logcat/internal/adb"
	"logcat/internal/devsync"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("adbsync: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	adbFlag := flag.String("adb", "adb", "Path to the adb binary")
	serialFlag := flag.String("s", "", "Device serial (passed to adb -s)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] SOURCE DEST\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		return fmt.Errorf("expected SOURCE and DEST, got %d arguments", flag.NArg())
	}

	var globals []string
	if *serialFlag != "" {
		globals = append(globals, "-s", *serialFlag)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	syncer := devsync.Syncer{
		Device: adb.New(*adbFlag, globals...),
		Out:    os.Stdout,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	sum, err := syncer.Sync(ctx, flag.Arg(0), flag.Arg(1))
	if err != nil {
		return err
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d files failed to push", sum.Failed, sum.Checked)
	}
	return nil
}
