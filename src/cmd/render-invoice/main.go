package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"invoice-studio/src/pkg/config"
	"invoice-studio/src/pkg/invoicedata"
	"invoice-studio/src/pkg/pdf"
	"invoice-studio/src/pkg/render"
	"invoice-studio/src/pkg/util"
)

/*
main renders one invoice from a raw-records JSON file.

-input is a JSON file holding {invoice, client, business, template}
records (the same shape the HTTP service accepts).

-target picks the output:
  - screen:   preview markup for embedding in the app UI
  - document: standalone print HTML
  - pdf:      converted PDF (document target + conversion chain)

Output lands in a timestamped run directory under -out,
e.g. ./out/2025-08-26_14-02-11/INV-1042.html
*/
func main() {
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	inputPath := flag.String("input", "", "Path to a JSON file with {invoice, client, business, template} records.")
	target := flag.String("target", "document", "Output target: screen, document or pdf.")
	outputDirPath := flag.String("out", "./out", "Directory where rendered output will be stored.")

	flag.Parse()
	util.RequiredFlag(inputPath, "input")
	util.EnsureFlags()
	config.InitializeConfig(*configPath)
	pdf.InitializeConfig()

	tl.Log(
		tl.Notice, palette.BlueBold, "%s entrypoint. Input: '%s', target: '%s'",
		"Running invoice render", *inputPath, *target,
	)

	request, e := loadRenderRequest(*inputPath)
	e.QuitIf("error")

	runDirPath, e := prepareRunDirectory(*outputDirPath)
	e.QuitIf("error")

	outputPath, e := renderToFile(request, *target, runDirPath)
	e.QuitIf("error")

	tl.Log(tl.Notice1, palette.GreenBold, "%s. Output stored in '%s'", "Render completed", outputPath)
}

/*
loadRenderRequest reads and unmarshals the raw-records JSON file.
*/
func loadRenderRequest(inputPath string) (request render.Request, e *xerr.Error) {
	fileBytes, readErr := os.ReadFile(inputPath)
	if readErr != nil {
		e = xerr.NewError(readErr, "read render input file", inputPath)
		return request, e
	}

	unmarshalErr := json.Unmarshal(fileBytes, &request)
	if unmarshalErr != nil {
		e = xerr.NewError(unmarshalErr, "unmarshal render input JSON", inputPath)
		return request, e
	}

	return request, e
}

/*
prepareRunDirectory creates a per-run directory under the output root,
named by timestamp. Example: ./out/2025-08-26_14-02-11
*/
func prepareRunDirectory(outputDirPath string) (runDirPath string, e *xerr.Error) {
	normalizedOutputDirPath := strings.TrimSpace(outputDirPath)
	if normalizedOutputDirPath == "" {
		normalizedOutputDirPath = "./out"
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	runDirPath = filepath.Join(normalizedOutputDirPath, timestamp)

	mkdirErr := os.MkdirAll(runDirPath, 0o755)
	if mkdirErr != nil {
		e = xerr.NewError(mkdirErr, "create run directory", runDirPath)
		return runDirPath, e
	}

	return runDirPath, e
}

/*
renderToFile renders the requested target and writes it into the run
directory, named by invoice number.
*/
func renderToFile(request render.Request, target string, runDirPath string) (outputPath string, e *xerr.Error) {
	inv, e := invoicedata.Normalize(request.Invoice, request.Client, request.Business, request.Template)
	if e != nil {
		return "", e
	}

	baseName := inv.InvoiceNumber
	if baseName == "" {
		baseName = "invoice"
	}

	switch strings.ToLower(strings.TrimSpace(target)) {
	case "screen":
		markup, renderErr := render.Preview(request)
		if renderErr != nil {
			return "", renderErr
		}
		outputPath = filepath.Join(runDirPath, baseName+".preview.html")
		e = writeOutputFile(outputPath, []byte(markup))

	case "document":
		document, renderErr := render.DocumentWithEmbeddedLogo(request)
		if renderErr != nil {
			return "", renderErr
		}
		outputPath = filepath.Join(runDirPath, baseName+".html")
		e = writeOutputFile(outputPath, []byte(document))

	case "pdf":
		document, renderErr := render.DocumentWithEmbeddedLogo(request)
		if renderErr != nil {
			return "", renderErr
		}
		pdfBytes, convertErr := pdf.Convert(document, inv)
		if convertErr != nil {
			return "", convertErr
		}
		outputPath = filepath.Join(runDirPath, baseName+".pdf")
		e = writeOutputFile(outputPath, pdfBytes)

	default:
		err := fmt.Errorf("unknown target '%s'", target)
		e = xerr.NewError(err, "select render target", target)
	}

	return outputPath, e
}

func writeOutputFile(outputPath string, content []byte) (e *xerr.Error) {
	writeErr := os.WriteFile(outputPath, content, 0o644)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write rendered output file", outputPath)
		return e
	}

	tl.Log(tl.Info1, palette.Green, "Saved rendered output to '%s'", outputPath)
	return e
}
