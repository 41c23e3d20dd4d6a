package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"edtsync/internal/ical"

	ics "github.com/arran4/golang-ical"
)

func main() {
	// Define arguments
	inPtr := flag.String("in", "edt_global.ics", "Path of the merged global calendar")
	outDirPtr := flag.String("outdir", ".", "Directory where the per-group calendars are written")
	flag.Parse()

	// Load the global calendar
	file, err := os.Open(*inPtr)
	if err != nil {
		log.Fatalf("cannot open global calendar: %v", err)
	}
	global, err := ics.ParseCalendar(file)
	file.Close()
	if err != nil {
		log.Fatalf("cannot parse global calendar: %v", err)
	}

	// Split and write one calendar per group combination
	calendars := ical.SplitByGroup(global)
	for combination, calendar := range calendars {
		path := filepath.Join(*outDirPtr, fmt.Sprintf("edt_%v.ics", combination))
		if err := os.WriteFile(path, []byte(calendar.Serialize()), 0666); err != nil {
			log.Fatalf("cannot write %v: %v", path, err)
		}
	}

	fmt.Printf("%v calendars written to %v\n", len(calendars), *outDirPtr)
}
