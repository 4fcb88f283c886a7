package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	EWFLogger "github.com/aarsakian/EWF_Reader/logger"

	"github.com/rowingdude/analyzeMFT-sub000/config"
	"github.com/rowingdude/analyzeMFT-sub000/exporter"
	"github.com/rowingdude/analyzeMFT-sub000/filtermanager"
	"github.com/rowingdude/analyzeMFT-sub000/filters"
	"github.com/rowingdude/analyzeMFT-sub000/img"
	MFTLogger "github.com/rowingdude/analyzeMFT-sub000/logger"
	"github.com/rowingdude/analyzeMFT-sub000/reporter"
	"github.com/rowingdude/analyzeMFT-sub000/scanner"
)

func checkErr(err error, msg string) {
	if err != nil {
		log.Fatalln(msg, err)
	}
}

func main() {
	inputfile := flag.String("MFT", "", "absolute path to the MFT file")
	evidencefile := flag.String("evidence", "", "path to image file (EWF formats are supported)")
	vmdkfile := flag.String("vmdk", "", "path to vmdk file (Sparse formats are supported)")
	device := flag.String("device", "", "path to a raw device e.g. \\\\.\\PhysicalDrive0 or /dev/sda")
	profileFile := flag.String("profile", "", "path to a YAML configuration profile")

	recordSize := flag.Int("recordsize", 0, "MFT record size in bytes, default 1024")
	workers := flag.Int("workers", 0, "number of decode workers, default number of CPUs")
	hash := flag.String("hash", "", "integrity hash over raw record bytes: md5, sha256, sha512 or crc32")
	anomaly := flag.Bool("anomaly", false, "detect timestomping indicators")

	csvfile := flag.String("csv", "", "path of the CSV output")
	jsonfile := flag.String("json", "", "path of the JSON lines output")
	xmlfile := flag.String("xml", "", "path of the XML output")
	bodyfile := flag.String("bodyfile", "", "path of the mactime body file output")
	timelinefile := flag.String("timeline", "", "path of the timeline CSV output")
	sqlitefile := flag.String("sqlite", "", "path of the SQLite output")

	fullPaths := flag.Bool("fullpaths", false, "write resolved paths instead of bare names")
	bodyfileFN := flag.Bool("bodyfilefn", false, "use FILE_NAME timestamps in the body file instead of STANDARD_INFORMATION")
	localtz := flag.Bool("localtz", false, "render timestamps in the local timezone instead of UTC")

	showAttributes := flag.String("attributes", "", "show attributes (write any for all attributes)")
	showTimestamps := flag.Bool("timestamps", false, "show all timestamps")
	showPath := flag.Bool("showpath", false, "show the full path of the selected records")
	showFull := flag.Bool("showfull", false, "show full information about record")

	orphans := flag.Bool("orphans", false, "keep only orphan records")
	deleted := flag.Bool("deleted", false, "keep only deleted records")
	anomalous := flag.Bool("anomalous", false, "keep only records with timestomping indicators")
	fileExtensions := flag.String("extensions", "", "search MFT records by extensions use , for each extension")
	pathPrefix := flag.String("path", "", "keep only records whose resolved path starts with the prefix")

	logactive := flag.Bool("log", false, "enable logging")

	flag.Parse()

	profile := config.Default()
	if *profileFile != "" {
		var err error
		profile, err = config.Load(*profileFile)
		checkErr(err, "profile")
	}
	// command line flags win over profile values
	if *recordSize > 0 {
		profile.RecordSize = *recordSize
	}
	if *workers > 0 {
		profile.Workers = *workers
	}
	if *hash != "" {
		profile.Hash = *hash
	}
	if *anomaly {
		profile.DetectAnomalies = true
	}
	if *fullPaths {
		profile.FullPaths = true
	}
	if *bodyfileFN {
		profile.BodyFileUseFN = true
	}
	if *localtz {
		profile.LocalTimezone = true
	}
	if *logactive {
		profile.Logging = true
	}

	if profile.Logging {
		now := time.Now()
		logfilename := "logs" + now.Format("2006-01-02T15_04_05") + ".txt"
		MFTLogger.InitializeLogger(true, logfilename)
		EWFLogger.InitializeLogger(true, logfilename)
	}

	pathToSource := ""
	for _, candidate := range []string{*inputfile, *evidencefile, *vmdkfile, *device} {
		if candidate != "" {
			pathToSource = candidate
			break
		}
	}
	if pathToSource == "" {
		fmt.Println("provide a source with -MFT, -evidence, -vmdk or -device")
		flag.Usage()
		os.Exit(2)
	}

	handler, err := img.GetHandler(pathToSource)
	checkErr(err, "source")
	defer handler.CloseHandler()

	sc, err := scanner.NewScanner(scanner.Options{
		RecordSize:      profile.RecordSize,
		Workers:         profile.Workers,
		Hash:            profile.Hash,
		DetectAnomalies: profile.DetectAnomalies,
	})
	checkErr(err, "scanner")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mfttable, scanErr := sc.Scan(ctx, handler)
	if mfttable == nil {
		checkErr(scanErr, "scan")
		return
	}
	if scanErr != nil {
		// interrupted, the records decoded so far are still written out
		fmt.Printf("scan interrupted: %v\n", scanErr)
	}

	flm := filtermanager.FilterManager{}
	if *fileExtensions != "" {
		flm.Register(filters.ExtensionsFilter{Extensions: strings.Split(*fileExtensions, ",")})
	}
	if *pathPrefix != "" {
		flm.Register(filters.PathFilter{NamePath: *pathPrefix})
	}
	if *orphans {
		flm.Register(filters.OrphansFilter{Include: *orphans})
	}
	if *deleted {
		flm.Register(filters.DeletedFilter{Include: *deleted})
	}
	if *anomalous {
		flm.Register(filters.AnomaliesFilter{Include: *anomalous})
	}
	records := flm.ApplyFilters(mfttable.Records)

	location := time.UTC
	if profile.LocalTimezone {
		location = time.Local
	}
	exp := exporter.Exporter{
		CSVFile:       *csvfile,
		JSONFile:      *jsonfile,
		XMLFile:       *xmlfile,
		BodyFile:      *bodyfile,
		TimelineFile:  *timelinefile,
		SqliteFile:    *sqlitefile,
		FullPaths:     profile.FullPaths,
		BodyFileUseFN: profile.BodyFileUseFN,
		Location:      location,
	}
	checkErr(exp.ExportRecords(records), "export")

	rp := reporter.Reporter{
		ShowAttributes: *showAttributes,
		ShowTimestamps: *showTimestamps,
		ShowPath:       *showPath,
		ShowAnomalies:  profile.DetectAnomalies,
		ShowFull:       *showFull,
	}
	if *showAttributes != "" || *showTimestamps || *showPath || *showFull {
		rp.Show(records)
	}
	rp.ShowSummary(os.Stdout, mfttable.Summarize())
}
