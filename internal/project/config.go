// Package project implements the line-oriented `config.snc` project
// configuration format (spec 6.4) and project-root discovery (spec
// 6.2), grounded on the original implementation's runtime project
// state (sonic::config's project_name/project_root/target_platform
// globals, core/config.h) and its project scaffolding routine
// (core/startup.cpp's generate_project_folder/setProjectRoot).
package project

import (
	"bufio"
	"fmt"
	"strings"
)

// Dependency is one `@use <package>@<version>` line.
type Dependency struct {
	Package string
	Version string
}

// Config holds the directives recognized from a config.snc file (spec
// 6.4). The core "treats this file opaquely; only the target triple
// is consumed" — the remaining fields are carried for cmd/sonicc's
// `--author`/`--license` surface and for round-tripping `new`.
type Config struct {
	Name        string
	Version     string
	Author      string
	Description string
	License     string
	Target      string
	Uses        []Dependency
}

// Parse reads config.snc's `@key value` directive lines out of src.
// Blank lines and `//`-prefixed line comments are skipped; unknown
// directives are ignored (spec 6.4: "The core treats this file
// opaquely").
func Parse(src []byte) (*Config, error) {
	cfg := &Config{}
	sc := bufio.NewScanner(strings.NewReader(string(src)))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			continue
		}

		key, value, _ := strings.Cut(line[1:], " ")
		value = strings.TrimSpace(value)

		switch key {
		case "name":
			cfg.Name = value
		case "version":
			cfg.Version = value
		case "author":
			cfg.Author = value
		case "description":
			cfg.Description = value
		case "license":
			cfg.License = value
		case "target":
			cfg.Target = value
		case "use":
			dep, err := parseDependency(value)
			if err != nil {
				return cfg, fmt.Errorf("config.snc:%d: %w", lineNo, err)
			}
			cfg.Uses = append(cfg.Uses, dep)
		}
	}
	return cfg, sc.Err()
}

func parseDependency(value string) (Dependency, error) {
	pkg, version, ok := strings.Cut(value, "@")
	if !ok || pkg == "" || version == "" {
		return Dependency{}, fmt.Errorf("malformed @use directive %q, want <package>@<version>", value)
	}
	return Dependency{Package: pkg, Version: version}, nil
}

// Scaffold renders a fresh config.snc for a new project named name,
// targeting triple (spec 6.4 directive set), matching the original
// generate_project_folder's emitted template.
func Scaffold(name, author, license, triple string) string {
	if author == "" {
		author = "..."
	}
	if license == "" {
		license = "MIT License"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "// APP CONFIGURATION\n")
	fmt.Fprintf(&b, "@name %s\n", name)
	fmt.Fprintf(&b, "@version 1.0.0\n")
	fmt.Fprintf(&b, "@author %s\n", author)
	fmt.Fprintf(&b, "@description ...\n")
	fmt.Fprintf(&b, "@license %s\n\n", license)
	fmt.Fprintf(&b, "// TARGET PLATFORM\n")
	fmt.Fprintf(&b, "@target %s\n\n", triple)
	fmt.Fprintf(&b, "// DEPENDENCIES\n")
	fmt.Fprintf(&b, "@use stdlib@latest\n")
	return b.String()
}

// ScaffoldMain renders the starter src/main.sn a new project begins
// with.
func ScaffoldMain() string {
	return "// @file    main.sn\n\nfunc main() {\n\tprintln(\"Hello, World!\");\n}\n"
}
