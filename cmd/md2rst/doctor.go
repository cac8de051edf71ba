package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/alnah/go-md2rst/internal/fileutil"
	"github.com/alnah/go-md2rst/internal/pipeline"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Pandoc   pandocInfo `json:"pandoc"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// pandocInfo holds converter binary detection results.
type pandocInfo struct {
	Found   bool   `json:"found"`
	Binary  string `json:"binary"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Container bool   `json:"container"`
	CI        bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// lookPath and runPandoc are swappable in tests.
var (
	lookPath  = exec.LookPath
	runPandoc = func(path string, args ...string) (string, error) {
		out, err := exec.Command(path, args...).Output() // #nosec G204 -- path comes from LookPath
		return string(out), err
	}
)

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env.Config.Pandoc.Binary)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(binary string) *doctorResult {
	if binary == "" {
		binary = pipeline.DefaultPandocBinary
	}

	result := &doctorResult{
		Status: "ready",
		Pandoc: pandocInfo{Binary: binary},
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkPandoc(result)
	checkEnvironment(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkPandoc resolves the converter binary and grabs its version line.
func checkPandoc(result *doctorResult) {
	path, err := lookPath(result.Pandoc.Binary)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("converter binary %q not found on PATH", result.Pandoc.Binary))
		return
	}
	result.Pandoc.Found = true
	result.Pandoc.Path = path

	out, err := runPandoc(path, "--version")
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s --version failed: %v", result.Pandoc.Binary, err))
		return
	}
	if line, _, ok := strings.Cut(out, "\n"); ok {
		result.Pandoc.Version = line
	} else {
		result.Pandoc.Version = out
	}
}

// checkEnvironment detects CI and container environments.
func checkEnvironment(result *doctorResult) {
	result.Env.CI = os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
	result.Env.Container = fileutil.FileExists("/.dockerenv")
}

// checkSystem verifies the temp directory is writable (pandoc input goes
// through a temp file).
func checkSystem(result *doctorResult) {
	tmp, err := os.CreateTemp("", "md2rst-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, "temp directory is not writable")
		return
	}
	_ = tmp.Close()
	_ = os.Remove(tmp.Name())
	result.System.TempWritable = true
}

// printDoctorResult renders the human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "Status: %s\n\n", result.Status)

	if result.Pandoc.Found {
		fmt.Fprintf(w, "pandoc: %s (%s)\n", result.Pandoc.Path, result.Pandoc.Version)
	} else {
		fmt.Fprintf(w, "pandoc: NOT FOUND (looked for %q)\n", result.Pandoc.Binary)
	}

	fmt.Fprintf(w, "environment: %s/%s", result.Env.OS, result.Env.Arch)
	if result.Env.CI {
		fmt.Fprint(w, ", CI")
	}
	if result.Env.Container {
		fmt.Fprint(w, ", container")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "temp writable: %v\n", result.System.TempWritable)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(w, "error: %s\n", e)
	}
}
