package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"invoice-studio/src/pkg/config"
	echomw "invoice-studio/src/pkg/echo-middleware"
	"invoice-studio/src/pkg/invoicedata"
	"invoice-studio/src/pkg/pdf"
	"invoice-studio/src/pkg/render"
)

/*
main runs the invoice rendering service.

Routes:

	GET  /healthz          liveness probe
	POST /render/preview   screen-target markup for the app UI
	POST /render/document  standalone print HTML
	POST /render/pdf       converted PDF (attachment)

Every render route takes the same JSON body: the raw {invoice, client,
business, template} records. Render routes sit behind the bearer-token
middleware; the token comes from INVOICE_RENDER_BEARER_TOKEN.
*/
func main() {
	config.CheckIfEnvVarsPresent(echomw.EnvRenderBearerToken)

	// common flags
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")
	// parse and init config
	flag.Parse()
	config.InitializeConfig(*configPath)
	echomw.InitializeConfig()
	pdf.InitializeConfig()

	echomw.UpdateRateLimits(echomw.Cfg.MiddlewareRateLimit, echomw.Cfg.MiddlewareBurst)

	server := echo.New()
	server.HideBanner = true

	server.Use(echomw.RouteAccessLoggerMiddleware)
	server.Use(echomw.RateLimiterMiddleware)

	server.GET("/healthz", handleHealthz)

	renderGroup := server.Group("/render", echomw.RequireBearerToken)
	renderGroup.POST("/preview", handlePreview)
	renderGroup.POST("/document", handleDocument)
	renderGroup.POST("/pdf", handlePDF)

	address := fmt.Sprintf("%s:%d", echomw.Cfg.Address, echomw.Cfg.Port)
	tl.Log(tl.Notice, palette.BlueBold, "%s invoice rendering service on '%s'", "Starting", address)

	startErr := server.Start(address)
	if startErr != nil {
		tl.Log(tl.Error, palette.RedBold, "Server stopped: '%s'", startErr)
	}
}

func handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

/*
bindRequest reads the raw render records from the request body. A body
that does not parse is the caller's fault, not a render failure.
*/
func bindRequest(c echo.Context) (request render.Request, ok bool) {
	bindErr := c.Bind(&request)
	if bindErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Rejecting render request: '%s'", bindErr)
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed render request body"})
		return request, false
	}
	return request, true
}

/*
errorText flattens a *xerr.Error into the message returned to the caller,
joining whichever of its parts are populated.
*/
func errorText(e *xerr.Error) string {
	if e == nil {
		return ""
	}

	parts := make([]string, 0, 3)
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if e.ErrStr != "" && (e.Err == nil || e.Err.Error() != e.ErrStr) {
		parts = append(parts, e.ErrStr)
	}

	return strings.Join(parts, ": ")
}

func errorBody(e *xerr.Error) map[string]string {
	return map[string]string{"error": errorText(e)}
}

/*
attachmentFilename builds a header-safe filename from the invoice number:
quotes, backslashes and control characters would corrupt the
Content-Disposition header, so they are stripped.
*/
func attachmentFilename(invoiceNumber string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, invoiceNumber)

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "invoice"
	}
	return cleaned
}

func handlePreview(c echo.Context) error {
	request, ok := bindRequest(c)
	if !ok {
		return nil
	}

	markup, e := render.Preview(request)
	if e != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorBody(e))
	}

	return c.HTML(http.StatusOK, markup)
}

func handleDocument(c echo.Context) error {
	request, ok := bindRequest(c)
	if !ok {
		return nil
	}

	document, e := render.DocumentWithEmbeddedLogo(request)
	if e != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorBody(e))
	}

	return c.HTML(http.StatusOK, document)
}

func handlePDF(c echo.Context) error {
	request, ok := bindRequest(c)
	if !ok {
		return nil
	}

	inv, e := invoicedata.Normalize(request.Invoice, request.Client, request.Business, request.Template)
	if e != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorBody(e))
	}

	document, e := render.DocumentWithEmbeddedLogo(request)
	if e != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorBody(e))
	}

	pdfBytes, e := pdf.Convert(document, inv)
	if e != nil {
		return c.JSON(http.StatusBadGateway, errorBody(e))
	}

	fileName := attachmentFilename(inv.InvoiceNumber)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fileName+`.pdf"`)

	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}
