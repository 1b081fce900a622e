package main

import (
	"flag"
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"github.com/scylladb/termtables"

	"github.com/normdate/normdate"
)

type config struct {
	Timezone string `default:"UTC"`
	Format   string `default:"2006-01-02T15:04:05.999999999Z07:00"`
}

func main() {
	var cfg config
	if err := envconfig.Process("normdate", &cfg); err != nil {
		log.Fatal(err)
	}

	timezone := flag.String("timezone", cfg.Timezone, "Timezone aka `America/Los_Angeles` for a second interpretation of offset-less input")
	format := flag.String("format", cfg.Format, "Output layout, defaults to RFC 3339")
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Println(`Must pass a date string:   ./normdate "Mon, 6 Jul 1970 15:30:00 PDT"`)
		return
	}
	datestr := flag.Args()[0]

	table := termtables.CreateTable()
	table.AddHeaders("Input", "Location", "Normalized")

	locations := []*time.Location{time.Local, time.UTC}
	if *timezone != "" {
		loc, err := time.LoadLocation(*timezone)
		if err != nil {
			panic(err.Error())
		}
		locations = []*time.Location{time.Local, loc, time.UTC}
	}

	for _, loc := range locations {
		p := normdate.New(normdate.WithLocation(loc))
		t, err := p.Parse(datestr)
		if err != nil {
			log.Fatalf("%s: %v", datestr, err)
		}
		table.AddRow(datestr, loc.String(), t.Format(*format))
	}

	fmt.Println(table.Render())
}
