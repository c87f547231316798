package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	"boascrape/lib/configutil"
	"boascrape/lib/fetch"
	"boascrape/lib/restyutil"
	"boascrape/lib/scrapers/boa"
	"boascrape/lib/serviceutil"
	"boascrape/lib/sheet"
	"boascrape/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const defaultOutput = "us_can_taxa.xlsx"
const defaultUrl = "https://www.butterfliesofamerica.com/US-Can-images.htm"

var sheetHeader = []string{"Species", "Subspecies", "Common Name"}

// Config holds optional overrides read from config.json5. Positional
// arguments take precedence over it.
type Config struct {
	Output   string `json:"output"`
	Url      string `json:"url"`
	Strategy string `json:"strategy"`
}

func runScrape(cmd *cobra.Command, args []string) {
	telemetry.InitSlog(*verbose)

	ctx := serviceutil.SignalContext()
	tel, err := telemetry.SetupFromEnv(ctx, "boascrape")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	output := defaultOutput
	if cfg.Output != "" {
		output = cfg.Output
	}
	link := defaultUrl
	if cfg.Url != "" {
		link = cfg.Url
	}
	if len(args) >= 1 {
		output = args[0]
	}
	if len(args) >= 2 {
		link = args[1]
	}

	strategy := *strategyName
	if !cmd.Flags().Changed("strategy") && cfg.Strategy != "" {
		strategy = cfg.Strategy
	}
	extractor, err := boa.StrategyByName(strategy)
	if err != nil {
		serviceutil.Fatal("select extraction strategy", err)
	}

	client := fetch.NewClient()
	if *verbose {
		client.SetInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/boascrape"))
	}

	slog.Info("fetching listing", "url", link, "strategy", extractor.Name())
	t1 := time.Now()

	document, err := client.GetDocument(ctx, link)
	if err != nil {
		serviceutil.Fatal("failed to fetch listing page", err)
	}

	extraction, err := extractor.Extract(ctx, document)
	if err != nil {
		serviceutil.Fatal("failed to extract taxa", err)
	}
	if len(extraction.Items) == 0 {
		slog.Error("no taxa found, the page markup may have changed upstream")
		os.Exit(2)
	}

	rows := boa.BuildRows(extraction.Items, extraction.CommonNames)
	if len(rows) == 0 {
		slog.Error("no rows produced after processing taxa")
		os.Exit(2)
	}

	err = sheet.WriteRows(output, sheetHeader, rowCells(rows))
	if err != nil {
		serviceutil.Fatal("failed to write spreadsheet", err)
	}

	slog.Info(
		"wrote rows",
		"count", len(rows),
		"path", output,
		"seconds", time.Since(t1).Seconds(),
	)

	if *preview {
		renderPreview(rows)
	}
}

func rowCells(rows []boa.Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{r.Species, r.Subspecies, r.CommonName}
	}
	return out
}

func renderPreview(rows []boa.Row) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{sheetHeader[0], sheetHeader[1], sheetHeader[2]})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Species, r.Subspecies, r.CommonName})
	}
	t.Render()
}
