// Package main is an example of using canid as a library
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erh/gocanid/canid"
	"github.com/erh/gocanid/canid/cli"
	"github.com/erh/gocanid/common"
)

func main() {
	logger := common.NewLogger(io.Discard)

	inputs := os.Args[1:]
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		handleErr(scanner.Err())
	}

	for _, input := range inputs {
		id, err := canid.ParseExtended(input)
		if err != nil {
			handleErr(common.Error(logger, false, "decode %q: %s", input, err))
		}
		md, err := json.MarshalIndent(cli.NewRecord(input, id), "", "  ")
		handleErr(err)
		fmt.Fprintln(os.Stdout, string(md))
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}
	var exitErr *common.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprint(os.Stderr, err.Error())
	os.Exit(1)
}
