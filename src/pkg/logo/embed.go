// Package logo prepares template logos for the static document target.
// The print document must be self-contained, so a logo referenced by URL
// is fetched, scaled down to its rendered size and inlined as a PNG data
// URI before assembly. Any failure here degrades to the no-logo header
// layout; a missing logo is never a render failure.
package logo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// fetchTimeout bounds the logo download so a slow host cannot stall a
// render request.
const fetchTimeout = 10 * time.Second

// maxLogoBytes caps the download size; anything larger is not a logo.
const maxLogoBytes = 5 * 1024 * 1024

/*
EmbedDataURI loads the logo at logoURL (http(s) URL or local file path),
scales it down so its height is at most maxHeightPx, re-encodes it as PNG
and returns it as a "data:image/png;base64,..." URI.

Logos already small enough are not upscaled, only re-encoded.
*/
func EmbedDataURI(logoURL string, maxHeightPx int) (dataURI string, e *xerr.Error) {
	trimmedURL := strings.TrimSpace(logoURL)
	if trimmedURL == "" {
		err := fmt.Errorf("logo URL is empty")
		e = xerr.NewError(err, "embed logo", logoURL)
		return "", e
	}

	rawBytes, e := loadLogoBytes(trimmedURL)
	if e != nil {
		return "", e
	}

	decodedImage, decodeErr := imaging.Decode(bytes.NewReader(rawBytes))
	if decodeErr != nil {
		e = xerr.NewError(decodeErr, "decode logo image", trimmedURL)
		return "", e
	}

	if decodedImage.Bounds().Dy() > maxHeightPx {
		decodedImage = imaging.Resize(decodedImage, 0, maxHeightPx, imaging.Lanczos)
	}

	var pngBuffer bytes.Buffer
	encodeErr := imaging.Encode(&pngBuffer, decodedImage, imaging.PNG)
	if encodeErr != nil {
		e = xerr.NewError(encodeErr, "encode logo as PNG", trimmedURL)
		return "", e
	}

	tl.Log(
		tl.Info1, palette.Green, "Embedded logo '%s' (%d bytes as PNG, max height %dpx)",
		trimmedURL, pngBuffer.Len(), maxHeightPx,
	)

	dataURI = "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBuffer.Bytes())
	return dataURI, e
}

/*
loadLogoBytes reads the logo source: an HTTP(S) fetch with a hard timeout
for URLs, a plain file read for anything else.
*/
func loadLogoBytes(logoURL string) (rawBytes []byte, e *xerr.Error) {
	if strings.HasPrefix(logoURL, "http://") || strings.HasPrefix(logoURL, "https://") {
		client := http.Client{Timeout: fetchTimeout}

		response, fetchErr := client.Get(logoURL)
		if fetchErr != nil {
			e = xerr.NewError(fetchErr, "fetch logo over HTTP", logoURL)
			return nil, e
		}
		defer func() {
			_ = response.Body.Close()
		}()

		if response.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status %d", response.StatusCode)
			e = xerr.NewError(err, "fetch logo over HTTP", logoURL)
			return nil, e
		}

		rawBytes, readErr := io.ReadAll(io.LimitReader(response.Body, maxLogoBytes))
		if readErr != nil {
			e = xerr.NewError(readErr, "read logo response body", logoURL)
			return nil, e
		}

		return rawBytes, e
	}

	rawBytes, readErr := os.ReadFile(logoURL)
	if readErr != nil {
		e = xerr.NewError(readErr, "read logo file", logoURL)
		return nil, e
	}

	return rawBytes, e
}
