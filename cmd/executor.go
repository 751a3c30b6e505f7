package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"shellconf/internal/bashconf"
	"shellconf/internal/config"
	"shellconf/internal/constants"
	"shellconf/internal/logger"
	"shellconf/internal/version"
)

// Execute dispatches the parsed command line. It returns an error for the
// caller to report; help and version exit through the normal path.
func Execute(ctx context.Context, conf config.AppConfig) error {
	if *opts.help {
		PrintUsage()
		return nil
	}
	if *opts.version {
		fmt.Printf("%s %s (%s, built %s)\n", version.ApplicationName, version.Version, version.Commit, version.BuildDate)
		return nil
	}
	if *opts.verbose {
		logger.SetLevel(logger.LevelInfo)
	}
	if *opts.debug {
		logger.SetLevel(logger.LevelDebug)
	}

	if *opts.initConfig {
		if err := config.Save(config.Defaults()); err != nil {
			return err
		}
		logger.Notice(ctx, "Wrote default configuration to '%s'.", config.Path())
		return nil
	}

	file := *opts.file
	if file == "" {
		file = conf.DefaultFile
	}
	if file == "" {
		return fmt.Errorf("no file given: use --file or set default_file in '%s'", config.Path())
	}

	mutating := *opts.set != "" || *opts.unset != ""
	if mutating && !*opts.diff {
		// One writer at a time. A Document is owned by a single caller,
		// so the whole load/mutate/save sequence runs under a file lock.
		lk := flock.New(file + constants.LockSuffix)
		locked, err := lk.TryLock()
		if err != nil {
			return err
		}
		if !locked {
			return fmt.Errorf("'%s' is locked by another process", file)
		}
		defer lk.Unlock()
	}

	doc, err := bashconf.Load(file)
	if err != nil {
		return err
	}
	doc.Backup = conf.Backup && !*opts.noBackup

	switch {
	case *opts.get != "":
		return printLookup(doc.Get(*opts.get))
	case *opts.getLiteral != "":
		return printLookup(doc.Literal(*opts.getLiteral))
	case *opts.getLine != "":
		return printLookup(doc.Line(*opts.getLine))
	case *opts.list:
		for _, name := range doc.Names() {
			fmt.Println(name)
		}
		return nil
	case *opts.dump:
		out, err := yaml.Marshal(doc.Vars())
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	case *opts.set != "":
		name, value, err := splitAssignment(*opts.set)
		if err != nil {
			return err
		}
		if err := doc.Set(name, value); err != nil {
			return err
		}
		return finishMutation(ctx, doc, file)
	case *opts.unset != "":
		if err := doc.Unset(*opts.unset); err != nil {
			return err
		}
		return finishMutation(ctx, doc, file)
	}

	PrintUsage()
	return errors.New("no operation given")
}

// printLookup prints a lookup result to stdout as a bare value, suitable
// for shell command substitution.
func printLookup(value string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func finishMutation(ctx context.Context, doc *bashconf.Document, file string) error {
	if *opts.diff {
		diff, err := doc.Diff()
		if err != nil {
			return err
		}
		fmt.Print(diff)
		return nil
	}
	if err := doc.Save(ctx, ""); err != nil {
		return err
	}
	logger.Info(ctx, "Wrote '%s'.", file)
	return nil
}

// splitAssignment splits a --set argument into name and value at the first
// equals sign.
func splitAssignment(arg string) (string, string, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("invalid --set argument %q: expected NAME=VALUE", arg)
	}
	return name, value, nil
}
