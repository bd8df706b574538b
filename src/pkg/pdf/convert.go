// Package pdf turns an assembled invoice document into PDF bytes. The
// conversion tooling varies by host, so it tries a headless
// Chrome/Chromium first, then wkhtmltopdf, then falls back to a plain
// gofpdf rendering built straight from the normalized invoice. Slow or
// missing tools degrade down the chain; only exhausting every method is
// an error.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"invoice-studio/src/pkg/config"
	"invoice-studio/src/pkg/invoicedata"
)

/*
Config selects the conversion binaries and the per-attempt timeout.
*/
type Config struct {
	ChromePath      string `json:"chrome_path,omitempty"`
	WkhtmltopdfPath string `json:"wkhtmltopdf_path,omitempty"`
	TimeoutSeconds  int    `json:"timeout_seconds,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		ChromePath:      "chromium",
		WkhtmltopdfPath: "wkhtmltopdf",
		TimeoutSeconds:  30,
	}
}

// create config with default values before config gets initialized
var Cfg Config = DefaultValueConfig()

/*
InitializeConfig replaces the package defaults with the "pdf" section of
the shared configuration file, when present.
*/
func InitializeConfig() {
	localConfig := DefaultValueConfig()
	if !config.SectionInto("pdf", &localConfig) {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "pdf", "not provided", "default pdf config")
		return
	}

	defaultConfig := DefaultValueConfig()
	Cfg = localConfig

	tl.ApplyDefaults(&Cfg, defaultConfig, func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in %s configuration. Using default value: %v",
			field, "missing", config.GetPackageName(), tl.PrettyForStderr(defVal),
		)
	})

	tl.Log(tl.Info, palette.Green, "%s config was %s, using %s", "pdf", "provided", "local pdf config")
}

/*
Convert produces PDF bytes from the assembled document, validating that
whatever a method returned actually starts with a PDF header before
accepting it.
*/
func Convert(documentHTML string, inv invoicedata.Invoice) (pdfBytes []byte, e *xerr.Error) {
	methods := []struct {
		name string
		run  func(string, invoicedata.Invoice) ([]byte, *xerr.Error)
	}{
		{name: "chrome", run: convertWithChrome},
		{name: "wkhtmltopdf", run: convertWithWkhtmltopdf},
		{name: "gofpdf", run: convertWithGofpdf},
	}

	for _, method := range methods {
		candidate, methodErr := method.run(documentHTML, inv)
		if methodErr != nil {
			tl.Log(
				tl.Info1, palette.Cyan, "PDF method '%s' unavailable for invoice '%s': %s",
				method.name, inv.InvoiceNumber, methodErr,
			)
			continue
		}

		if len(candidate) < 4 || string(candidate[:4]) != "%PDF" {
			tl.Log(
				tl.Warning, palette.PurpleBright, "PDF method '%s' returned %s, trying next method",
				method.name, "non-PDF content",
			)
			continue
		}

		tl.Log(
			tl.Info1, palette.Green, "Converted invoice '%s' to PDF via '%s' (%d bytes)",
			inv.InvoiceNumber, method.name, len(candidate),
		)
		return candidate, e
	}

	err := fmt.Errorf("all conversion methods failed")
	e = xerr.NewError(err, "convert invoice document to PDF", inv.InvoiceNumber)
	return nil, e
}

/*
convertWithChrome shells out to headless Chrome/Chromium. The document is
staged as a temp file because --print-to-pdf needs a URL.
*/
func convertWithChrome(documentHTML string, inv invoicedata.Invoice) (pdfBytes []byte, e *xerr.Error) {
	workDir, tempErr := os.MkdirTemp("", "invoice-pdf-*")
	if tempErr != nil {
		e = xerr.NewError(tempErr, "create PDF work directory", inv.InvoiceNumber)
		return nil, e
	}
	defer func() {
		_ = os.RemoveAll(workDir)
	}()

	htmlPath := filepath.Join(workDir, "invoice.html")
	pdfPath := filepath.Join(workDir, "invoice.pdf")

	writeErr := os.WriteFile(htmlPath, []byte(documentHTML), 0o644)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write staged invoice HTML", htmlPath)
		return nil, e
	}

	command := exec.Command(
		Cfg.ChromePath,
		"--headless",
		"--disable-gpu",
		"--no-sandbox",
		"--no-pdf-header-footer",
		"--print-to-pdf="+pdfPath,
		"file://"+htmlPath,
	)

	e = runWithTimeout(command, "chrome", inv.InvoiceNumber)
	if e != nil {
		return nil, e
	}

	pdfBytes, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		e = xerr.NewError(readErr, "read chrome PDF output", pdfPath)
		return nil, e
	}

	return pdfBytes, e
}

/*
convertWithWkhtmltopdf pipes the document through wkhtmltopdf on stdin
and collects the PDF from stdout.
*/
func convertWithWkhtmltopdf(documentHTML string, inv invoicedata.Invoice) (pdfBytes []byte, e *xerr.Error) {
	command := exec.Command(
		Cfg.WkhtmltopdfPath,
		"--quiet",
		"--print-media-type",
		"--enable-local-file-access",
		"--page-size", "A4",
		"-", "-",
	)
	command.Stdin = bytes.NewReader([]byte(documentHTML))

	var stdout bytes.Buffer
	command.Stdout = &stdout

	e = runWithTimeout(command, "wkhtmltopdf", inv.InvoiceNumber)
	if e != nil {
		return nil, e
	}

	return stdout.Bytes(), e
}

/*
runWithTimeout starts the command and kills it if it exceeds the
configured per-attempt timeout.
*/
func runWithTimeout(command *exec.Cmd, methodName string, invoiceNumber string) (e *xerr.Error) {
	startErr := command.Start()
	if startErr != nil {
		e = xerr.NewError(startErr, "start "+methodName, invoiceNumber)
		return e
	}

	done := make(chan error, 1)
	go func() {
		done <- command.Wait()
	}()

	timeout := time.Duration(Cfg.TimeoutSeconds) * time.Second
	select {
	case waitErr := <-done:
		if waitErr != nil {
			e = xerr.NewError(waitErr, methodName+" exited with error", invoiceNumber)
			return e
		}
		return e
	case <-time.After(timeout):
		_ = command.Process.Kill()
		err := fmt.Errorf("timed out after %s", timeout)
		e = xerr.NewError(err, methodName+" conversion timed out", invoiceNumber)
		return e
	}
}
