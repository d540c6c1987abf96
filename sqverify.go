package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/wilphi/sqverify/sqcap"
	"github.com/wilphi/sqverify/sqcheck"
)

var engine *string

func init() {
	// setup logging
	logFile, err := os.Create("sqverify.log")
	if err != nil {
		panic(err)
	}
	log.SetOutput(logFile)

	log.SetLevel(log.InfoLevel)
}

func main() {
	engine = flag.String("engine", "duckdb", "Database engine to verify")
	flag.Parse()

	id := sqcap.EngineID(*engine)
	cap, ok := sqcap.Get(id)
	if !ok || !cap.HasMemoryMode {
		fmt.Fprintf(os.Stderr, "Unknown engine %q. Valid engines: %v\n", *engine, sqcap.MemoryIDs())
		os.Exit(1)
	}

	chk := sqcheck.NewChecker(os.Stdout, id)
	if !chk.Run(context.Background()) {
		os.Exit(1)
	}
}
