package main

import (
	"flag"
	"io"
	"os"

	"git.fiblab.net/sim/transitcat/internal/catalogue"
	"git.fiblab.net/sim/transitcat/internal/iodoc"
	"git.fiblab.net/sim/transitcat/internal/maprender"
	"git.fiblab.net/sim/transitcat/internal/requesthandler"
	"git.fiblab.net/sim/transitcat/internal/transit"
	"github.com/sirupsen/logrus"
)

var logLevel = flag.String("log-level", "info", "log level [debug, info, warn, error, fatal, panic]")

func main() {
	flag.Parse()
	setupLogging(*logLevel)

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		logrus.Fatalf("reading input document: %s", err)
	}

	doc, err := iodoc.ParseInputDocument(input)
	if err != nil {
		logrus.Fatalf("parsing input document: %s", err)
	}

	cat := catalogue.New()
	if err := ingestBaseRequests(cat, doc.BaseRequests); err != nil {
		logrus.Fatalf("ingesting base requests: %s", err)
	}

	renderSettings := maprender.Settings{}
	if doc.RenderSettings != nil {
		renderSettings = doc.RenderSettings.ToMapRenderSettings()
	}
	if err := renderSettings.Validate(); err != nil {
		logrus.Fatalf("invalid render settings: %s", err)
	}
	renderer := maprender.New(renderSettings)

	router := transit.New(cat)
	if doc.RoutingSettings != nil {
		if err := router.SetRoutingSettings(doc.RoutingSettings.ToTransitSettings()); err != nil {
			logrus.Fatalf("invalid routing settings: %s", err)
		}
	}

	handler := requesthandler.New(cat, renderer, router)

	responses, err := serveStatRequests(handler, doc.StatRequests)
	if err != nil {
		logrus.Fatalf("serving stat requests: %s", err)
	}

	output, err := iodoc.EncodeOutputDocument(responses)
	if err != nil {
		logrus.Fatalf("encoding output document: %s", err)
	}
	os.Stdout.Write(output)
}
