package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli"

	"github.com/c2fo/tmppath"
	"github.com/c2fo/tmppath/utils"
)

func main() {
	app := cli.NewApp()
	app.Name = "tmprun"
	app.Usage = "Runs a command inside a scratch directory that is deleted when the command exits"
	app.ArgsUsage = "command [args...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "dir",
			Usage:  "base directory for the scratch directory (defaults to the system temp dir)",
			EnvVar: "TMPRUN_DIR",
		},
		cli.BoolFlag{
			Name:  "keep",
			Usage: "keep the scratch directory instead of deleting it",
		},
	}
	app.Action = func(c *cli.Context) error {
		if err := checkArgs(c.Args().First()); err != nil {
			return err
		}

		p, err := scratchPath(c.String("dir"))
		if err != nil {
			return err
		}
		if err := os.MkdirAll(p.String(), 0700); err != nil {
			return err
		}
		if c.Bool("keep") {
			fmt.Printf("keeping scratch directory %s\n", p)
		} else {
			defer func() { _ = p.Close() }()
		}

		return runIn(p.String(), c.Args())
	}

	if err := app.Run(os.Args); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func checkArgs(command string) error {
	if command == "" {
		return errors.New("tmprun requires a command to run")
	}
	return nil
}

// scratchPath returns a scoped path under base, or under the system temp
// directory when base is empty. A leading "~" in base is expanded.
func scratchPath(base string) (*tmppath.Path, error) {
	if base == "" {
		return tmppath.New(), nil
	}
	expanded, err := utils.ExpandHome(base)
	if err != nil {
		return nil, err
	}
	return tmppath.NewIn(expanded), nil
}

func runIn(dir string, args cli.Args) error {
	cmd := exec.Command(args.First(), args.Tail()...) //nolint:gosec
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "TMPDIR="+dir)
	return cmd.Run()
}
