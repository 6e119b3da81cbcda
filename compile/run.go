package compile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"csb/state"
)

// Run is the "build" subcommand action: read a selector sheet, compile it
// and write the resulting mapping to the destination (or stdout).
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no selector sheet has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// command line supplements configuration defaults
	env.Overwrite = cmd.Bool("overwrite") || env.Cfg.Build.Overwrite
	env.KeepGoing = cmd.Bool("keep-going") || env.Cfg.Build.KeepGoing

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read selector sheet %q: %w", src, err)
	}
	env.Rpt.StoreData(fmt.Sprintf("input/%s", filepath.Base(src)), data)

	sheet, err := ParseSheet(data)
	if err != nil {
		return err
	}

	res, err := NewCompiler(log).Compile(sheet)
	if err != nil {
		if !env.KeepGoing {
			return err
		}
		log.Warn("Some selectors failed to compile, continuing", zap.Error(err))
	}

	out, err := res.Encode()
	if err != nil {
		return err
	}
	env.Rpt.StoreData("output/selectors.yaml", out)

	if len(dst) == 0 {
		if _, err := os.Stdout.Write(out); err != nil {
			return fmt.Errorf("unable to write to stdout: %w", err)
		}
		log.Info("Selectors written", zap.Int("count", len(res.Selectors)), zap.String("file", "STDOUT"))
		return nil
	}

	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination %q already exists, use --overwrite to replace it", dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	if err := os.WriteFile(dst, out, 0644); err != nil {
		return fmt.Errorf("unable to write destination %q: %w", dst, err)
	}

	log.Info("Selectors written", zap.Int("count", len(res.Selectors)), zap.String("file", dst))
	return nil
}
