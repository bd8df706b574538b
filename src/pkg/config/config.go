// Package config loads the shared JSON configuration file and hands each
// package its own section. Packages keep their own Config structs and
// defaults; this package only parses and dispatches.
package config

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

// sections holds the raw JSON config sections keyed by section name.
var sections = map[string]json.RawMessage{}

/*
InitializeConfig reads the JSON configuration file at configPath and stores
its top-level sections for later retrieval via SectionInto.

A missing or unreadable file is not fatal: every package ships with default
values, so we log a warning and keep going.
*/
func InitializeConfig(configPath string) {
	fileBytes, readErr := os.ReadFile(configPath)
	if readErr != nil {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Config file '%s' is %s, using %s",
			configPath, "not readable", "default values everywhere",
		)
		return
	}

	unmarshalErr := json.Unmarshal(fileBytes, &sections)
	if unmarshalErr != nil {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Config file '%s' is %s, using %s",
			configPath, "not valid JSON", "default values everywhere",
		)
		return
	}

	tl.Log(tl.Info, palette.Green, "Loaded configuration from '%s' (%d sections)", configPath, len(sections))
}

/*
SectionInto unmarshals the named config section into target.

Returns false when the section is absent (caller keeps its defaults).
*/
func SectionInto(sectionName string, target any) bool {
	raw, exists := sections[sectionName]
	if !exists {
		return false
	}

	unmarshalErr := json.Unmarshal(raw, target)
	if unmarshalErr != nil {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Config section '%s' is %s, keeping %s",
			sectionName, "malformed", "default values",
		)
		return false
	}

	return true
}

/*
CheckIfEnvVarsPresent logs every missing environment variable and exits(1)
if any were missing. Call it first thing in main for env vars the program
cannot run without.
*/
func CheckIfEnvVarsPresent(envVarNames ...string) {
	missing := false
	for _, envVarName := range envVarNames {
		if strings.TrimSpace(os.Getenv(envVarName)) == "" {
			tl.Log(tl.Warning, palette.YellowBold, "%s environment variable is %s", envVarName, "required")
			missing = true
		}
	}
	if missing {
		os.Exit(1)
	}
}

/*
GetPackageName returns the package name of the caller, for use in log lines
that mention which package's configuration is being initialized.
*/
func GetPackageName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}

	fullName := runtime.FuncForPC(pc).Name() // e.g. invoice-studio/src/pkg/emit.InitializeConfig
	lastSlash := strings.LastIndex(fullName, "/")
	tail := fullName[lastSlash+1:]
	dot := strings.Index(tail, ".")
	if dot < 0 {
		return tail
	}
	return tail[:dot]
}
