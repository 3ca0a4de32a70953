package main

import (
	"log"
	"os"
	"runtime"

	"github.com/ekovalev/ladoga/pkg/engine"
	"github.com/ekovalev/ladoga/pkg/eval"
	"github.com/ekovalev/ladoga/pkg/uci"
)

const (
	name   = "Ladoga"
	author = "Egor Kovalev"
)

var versionName = "dev"

func main() {
	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	var eng = engine.NewEngine(eval.NewEvaluationService())
	eng.Hash = 64

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Hash", Min: 1, Max: 1024, Value: &eng.Hash},
		},
	)
	protocol.Run(logger)
}
