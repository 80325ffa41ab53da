package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/driver"
	"aero/interpreter-go/pkg/interpreter"
)

// runEntry compiles and executes a file, a manifest target, or the
// manifest's default target.
func (c *cli) runEntry(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(c.stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}
	entryPath, err := c.resolveEntry(args)
	if err != nil {
		c.reportError(err)
		return 1
	}
	program, ok := c.compile(entryPath)
	if !ok {
		return 1
	}
	interp := interpreter.New()
	interp.SetOutput(c.stdout)
	c.logger.Printf("execute %s", entryPath)
	if err := interp.Execute(program); err != nil {
		c.reportErrorAt(entryPath, err)
		return 1
	}
	c.logger.Printf("done (%d globals)", interp.Environment().Len())
	return 0
}

func (c *cli) runCheck(args []string) int {
	path, ok := c.singleFile("check", args)
	if !ok {
		return 1
	}
	if _, ok := c.compile(path); !ok {
		return 1
	}
	c.println("check: ok")
	return 0
}

func (c *cli) runTokens(args []string) int {
	path, ok := c.singleFile("tokens", args)
	if !ok {
		return 1
	}
	tokens, err := driver.Tokens(path)
	if err != nil {
		c.reportErrorAt(path, err)
		return 1
	}
	for _, tok := range tokens {
		c.println(tok.String())
	}
	return 0
}

func (c *cli) runAST(args []string) int {
	path, ok := c.singleFile("ast", args)
	if !ok {
		return 1
	}
	program, ok := c.compile(path)
	if !ok {
		return 1
	}
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		c.reportErrorAt(path, err)
		return 1
	}
	c.println(string(data))
	return 0
}

func (c *cli) compile(path string) (*ast.Program, bool) {
	c.logger.Printf("compile %s", path)
	program, err := driver.Compile(path)
	if err != nil {
		c.reportErrorAt(path, err)
		return nil, false
	}
	c.logger.Printf("parsed %d top-level statements", len(program.Body))
	return program, true
}

func (c *cli) singleFile(command string, args []string) (string, bool) {
	if len(args) != 1 {
		fmt.Fprintf(c.stderr, "aero %s expects exactly one file\n", command)
		return "", false
	}
	return args[0], true
}

// resolveEntry maps run arguments to a source path. An argument naming an
// existing file wins over a manifest target of the same name.
func (c *cli) resolveEntry(args []string) (string, error) {
	if len(args) == 1 && fileExists(args[0]) {
		return args[0], nil
	}
	manifest, err := c.loadManifest()
	if err != nil {
		if errors.Is(err, driver.ErrManifestNotFound) && len(args) == 1 {
			// No project around; let the compile step report the missing file.
			return args[0], nil
		}
		return "", err
	}
	target := ""
	if len(args) == 1 {
		target = args[0]
	} else if target, err = manifest.DefaultTarget(); err != nil {
		return "", err
	}
	c.logger.Printf("target %s from %s", target, manifest.Path)
	return manifest.TargetPath(target)
}

func (c *cli) loadManifest() (*driver.Manifest, error) {
	path, err := driver.FindManifest(".")
	if err != nil {
		return nil, err
	}
	return driver.LoadManifest(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
