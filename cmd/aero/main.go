package main

import (
	"io"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
)

const cliToolVersion = "aero-cli 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return newCLI(os.Stdin, os.Stdout, os.Stderr).run(args)
}

// cli carries the process streams so commands can be driven from tests.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: log.New(io.Discard, "aero: ", 0),
	}
}

func (c *cli) run(args []string) int {
	// getopt expects argv with the program name in front.
	argv := append([]string{"aero"}, args...)
	opts, optind, err := getopt.Getopts(argv, "hVvn")
	if err != nil {
		c.reportError(err)
		c.printUsage()
		return 1
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			c.printUsage()
			return 0
		case 'V':
			c.println(cliToolVersion)
			return 0
		case 'v':
			c.logger.SetOutput(c.stderr)
		case 'n':
			color.NoColor = true
		}
	}
	remaining := argv[optind:]
	if len(remaining) == 0 {
		c.printUsage()
		return 1
	}

	switch remaining[0] {
	case "help":
		c.printUsage()
		return 0
	case "version":
		c.println(cliToolVersion)
		return 0
	case "run":
		return c.runEntry(remaining[1:])
	case "check":
		return c.runCheck(remaining[1:])
	case "tokens":
		return c.runTokens(remaining[1:])
	case "ast":
		return c.runAST(remaining[1:])
	case "repl":
		return c.runRepl(remaining[1:])
	default:
		return c.runEntry(remaining)
	}
}
