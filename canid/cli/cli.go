// Package cli provides a line-oriented decoder for CAN identifiers.
package cli

// Originally from https://github.com/canboat/canboat (Apache License, Version 2.0)
// (C) 2009-2023, Kees Verruijt, Harlingen, The Netherlands.

// This file is part of CANboat.

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.viam.com/rdk/logging"

	"github.com/erh/gocanid/canid"
	"github.com/erh/gocanid/common"
)

// A CLI lets a user decode identifiers in a CLI environment.
type CLI struct {
	config  *Config
	in      io.Reader
	out     io.Writer
	capture *CaptureWriter
}

// Config carries the decode settings of one CLI run.
type Config struct {
	Logger logging.Logger

	Standard    bool // input is 11-bit base frame identifiers
	ShowJSON    bool
	Interactive bool
	ShowVersion bool

	SrcFilter []int64
	DstFilter []int64
	PGNFilter []int64

	CapturePath string
}

// NewConfig returns the default configuration: 29-bit input from stdin,
// text output, no filters.
func NewConfig(logger logging.Logger) *Config {
	return &Config{
		Logger:      logger,
		Standard:    false,
		ShowJSON:    false,
		Interactive: false,
		ShowVersion: false,
	}
}

// New builds a CLI from command line arguments.
func New(args []string) (*CLI, error) {
	conf, inFile, err := parseCLIArgs(args)
	if err != nil {
		return nil, err
	}
	common.IsCLI.Store(true)
	return NewWithConfig(conf, inFile, os.Stdout)
}

// NewWithConfig builds a CLI against explicit streams. Tests and embedders
// use this directly.
func NewWithConfig(conf *Config, in io.Reader, out io.Writer) (*CLI, error) {
	if conf.Logger == nil {
		conf.Logger = common.NewLogger(os.Stderr)
	}
	c := &CLI{config: conf, in: in, out: out}
	if conf.CapturePath != "" {
		w, err := NewCaptureWriter(conf.CapturePath)
		if err != nil {
			return nil, err
		}
		c.capture = w
	}
	return c, nil
}

// parseCLIArgs parses the args of a CLI program into a Config.
func parseCLIArgs(args []string) (*Config, *os.File, error) {
	progNameAsExeced := args[0]

	conf := NewConfig(common.NewLogger(os.Stderr))

	logLevel := zapcore.InfoLevel
	inFile := os.Stdin
	var configPath string
	onlySrc := int64(-1)
	onlyDst := int64(-1)
	onlyPgn := int64(0)
	stdFlag := false
	jsonFlag := false

	for argIdx := 1; argIdx < len(args); argIdx++ {
		arg := args[argIdx]
		hasNext := argIdx < len(args)-1

		//nolint:gocritic
		if strings.EqualFold(arg, "-std") {
			stdFlag = true
		} else if strings.EqualFold(arg, "-json") {
			jsonFlag = true
		} else if strings.EqualFold(arg, "-i") {
			conf.Interactive = true
		} else if strings.EqualFold(arg, "-version") {
			conf.ShowVersion = true
		} else if strings.EqualFold(arg, "-d") {
			logging.GlobalLogLevel.SetLevel(zapcore.DebugLevel)
			logLevel = zapcore.DebugLevel
		} else if strings.EqualFold(arg, "-q") {
			logging.GlobalLogLevel.SetLevel(zapcore.ErrorLevel)
			logLevel = zap.ErrorLevel
		} else if strings.EqualFold(arg, "-fixtime") {
			common.UseFixedTimestamp.Store(true)
		} else if hasNext && strings.EqualFold(arg, "-src") {
			//nolint:errcheck
			onlySrc, _ = strconv.ParseInt(args[argIdx+1], 10, 64)
			argIdx++
		} else if hasNext && strings.EqualFold(arg, "-dst") {
			//nolint:errcheck
			onlyDst, _ = strconv.ParseInt(args[argIdx+1], 10, 64)
			argIdx++
		} else if hasNext && strings.EqualFold(arg, "-file") {
			nextArg := args[argIdx+1]
			var err error
			//nolint:gosec
			inFile, err = os.OpenFile(nextArg, os.O_RDONLY, 0)
			if err != nil {
				return nil, nil, fmt.Errorf("Cannot open file %s", nextArg)
			}
			argIdx++
		} else if hasNext && strings.EqualFold(arg, "-capture") {
			conf.CapturePath = args[argIdx+1]
			argIdx++
		} else if hasNext && strings.EqualFold(arg, "-config") {
			configPath = args[argIdx+1]
			argIdx++
		} else {
			//nolint:errcheck
			onlyPgn, _ = strconv.ParseInt(arg, 10, 64)
			if onlyPgn > 0 {
				conf.Logger.Infof("Only printing PGN %d", onlyPgn)
			} else {
				return nil, nil, cliUsage(progNameAsExeced, arg, os.Stderr)
			}
		}
	}

	if configPath != "" {
		if err := loadFileConfig(configPath, conf); err != nil {
			return nil, nil, err
		}
	}

	// Explicit flags win over the config file.
	if stdFlag {
		conf.Standard = true
	}
	if jsonFlag {
		conf.ShowJSON = true
	}
	if onlySrc >= 0 {
		conf.SrcFilter = []int64{onlySrc}
	}
	if onlyDst >= 0 {
		conf.DstFilter = []int64{onlyDst}
	}
	if onlyPgn > 0 {
		conf.PGNFilter = []int64{onlyPgn}
	}

	zapConf := logging.NewZapLoggerConfig()
	zapConf.Level = zap.NewAtomicLevelAt(logLevel)
	zapConf.OutputPaths = []string{"stderr"}
	zapLogger, err := zapConf.Build(zap.WithClock(common.FixedClock{}))
	if err != nil {
		return nil, nil, err
	}
	conf.Logger = logging.FromZapCompatible(zapLogger.Sugar())

	if common.UseFixedTimestamp.Load() {
		conf.Logger.Info("Timestamp fixed")
	}

	return conf, inFile, nil
}

type fileConfig struct {
	Protocol string       `toml:"protocol"`
	Format   string       `toml:"format"`
	Filter   filterConfig `toml:"filter"`
}

type filterConfig struct {
	Src []int64 `toml:"src"`
	Dst []int64 `toml:"dst"`
	PGN []int64 `toml:"pgn"`
}

func loadFileConfig(path string, conf *Config) error {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	switch strings.ToLower(fc.Protocol) {
	case "", "extended":
	case "standard":
		conf.Standard = true
	default:
		return fmt.Errorf("config %s: unknown protocol %q", path, fc.Protocol)
	}
	switch strings.ToLower(fc.Format) {
	case "", "text":
	case "json":
		conf.ShowJSON = true
	default:
		return fmt.Errorf("config %s: unknown format %q", path, fc.Format)
	}
	conf.SrcFilter = fc.Filter.Src
	conf.DstFilter = fc.Filter.Dst
	conf.PGNFilter = fc.Filter.PGN
	return nil
}

//nolint:lll
func cliUsage(progNameAsExeced, invalidArgName string, writer io.Writer) error {
	fmt.Fprintf(writer, "Unknown or invalid argument %s\n", invalidArgName)
	fmt.Fprintf(writer, "Usage: %s [-std] [-json] [-file <path>] [-config <path.toml>] [-capture <path>] [-i] [-d] [-q] [-fixtime] [-src <src> | -dst <dst> | <pgn>] [-version]\n",
		progNameAsExeced)
	fmt.Fprintf(writer, "     -std              Treat input as 11-bit base frame identifiers\n")
	fmt.Fprintf(writer, "     -json             Output in json format, for program consumption\n")
	fmt.Fprintf(writer, "     -file <path>      Read identifiers from a file instead of stdin\n")
	fmt.Fprintf(writer, "     -config <path>    Load defaults from a TOML config file; explicit flags win\n")
	fmt.Fprintf(writer, "     -capture <path>   Append every decoded record to a CBOR capture log\n")
	fmt.Fprintf(writer, "     -i                Interactive prompt\n")
	fmt.Fprintf(writer, "     -d                Print logging from level ERROR, INFO and DEBUG\n")
	fmt.Fprintf(writer, "     -q                Print logging from level ERROR\n")
	fmt.Fprintf(writer, "     -fixtime          Use a fixed timestamp in logging and captures\n")
	fmt.Fprintf(writer, "     -src <src>        Only print records from the given source address\n")
	fmt.Fprintf(writer, "     -dst <dst>        Only print records to the given destination address\n")
	fmt.Fprintf(writer, "     <pgn>             Only print records carrying the given PGN (decimal)\n")
	fmt.Fprintf(writer, "     -version          Print the version of the program and quit\n")
	fmt.Fprintf(writer, "\n")
	return &common.ExitError{Code: 1}
}

// Run decodes until the input stream ends or, interactively, until the user
// quits.
func (c *CLI) Run() error {
	if c.config.ShowVersion {
		fmt.Fprintf(c.out, "canid %s\n", common.Version)
		return nil
	}
	if c.capture != nil {
		//nolint:errcheck
		defer c.capture.Close()
	}
	if c.config.Interactive {
		return c.runInteractive()
	}
	return c.runStream()
}

func (c *CLI) runStream() error {
	reader := bufio.NewReader(c.in)
	for {
		line, isPrefix, err := reader.ReadLine()
		if err != nil || isPrefix {
			return nil
		}
		input := strings.TrimSpace(string(line))
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		rec, err := c.decode(input)
		if err != nil {
			c.config.Logger.Errorf("skipping %q: %s", input, err)
			continue
		}
		if c.capture != nil {
			c.capture.Write(rec)
		}
		if !c.shouldPrint(rec) {
			continue
		}
		if err := c.printRecord(c.out, rec); err != nil {
			return err
		}
	}
}

func (c *CLI) decode(input string) (Record, error) {
	if c.config.Standard {
		id, err := canid.ParseStandard(input)
		if err != nil {
			return Record{}, err
		}
		return NewStandardRecord(input, id), nil
	}
	id, err := canid.ParseExtended(input)
	if err != nil {
		return Record{}, err
	}
	return NewRecord(input, id), nil
}

func (c *CLI) shouldPrint(rec Record) bool {
	if rec.Standard {
		return len(c.config.SrcFilter)+len(c.config.DstFilter)+len(c.config.PGNFilter) == 0
	}
	if !matchFilter(c.config.SrcFilter, int64(rec.Src)) {
		return false
	}
	if len(c.config.DstFilter) > 0 {
		if rec.Dst == nil || !matchFilter(c.config.DstFilter, int64(*rec.Dst)) {
			return false
		}
	}
	return matchFilter(c.config.PGNFilter, int64(rec.PGN))
}

func matchFilter(want []int64, got int64) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		if w == got {
			return true
		}
	}
	return false
}

func (c *CLI) printRecord(w io.Writer, rec Record) error {
	var out string
	if c.config.ShowJSON {
		md, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		out = string(md)
	} else {
		out = renderText(rec)
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return common.Abort(c.config.Logger, common.IsCLI.Load(), "write output: %s", err)
	}
	return nil
}

func (c *CLI) runInteractive() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "canid> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	//nolint:errcheck
	defer rl.Close()

	printHelp(rl.Stdout())

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if done := c.dispatch(rl.Stdout(), input); done {
			return nil
		}
	}
}

func (c *CLI) dispatch(w io.Writer, input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		printHelp(w)

	case "std":
		if len(args) != 1 {
			fmt.Fprintln(w, "usage: std <hex>")
			return false
		}
		id, err := canid.ParseStandard(args[0])
		if err != nil {
			fmt.Fprintf(w, "%s\n", err)
			return false
		}
		c.emit(w, NewStandardRecord(args[0], id))

	case "name":
		if len(args) != 1 {
			fmt.Fprintln(w, "usage: name <hex>")
			return false
		}
		name, err := canid.ParseName(args[0])
		if err != nil {
			fmt.Fprintf(w, "%s\n", err)
			return false
		}
		fmt.Fprintln(w, renderName(name))

	case "quit", "exit", "q":
		return true

	default:
		id, err := canid.ParseExtended(input)
		if err != nil {
			fmt.Fprintf(w, "%s (type 'help' for commands)\n", err)
			return false
		}
		c.emit(w, NewRecord(input, id))
	}
	return false
}

func (c *CLI) emit(w io.Writer, rec Record) {
	if c.capture != nil {
		c.capture.Write(rec)
	}
	if err := c.printRecord(w, rec); err != nil {
		c.config.Logger.Errorf("print record: %s", err)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `canid commands:
  <hex>         decode a 29-bit identifier
  std <hex>     decode an 11-bit identifier
  name <hex>    decode a 64-bit device name
  help          show this help
  exit          quit`)
}
