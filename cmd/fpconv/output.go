package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	log "github.com/sirupsen/logrus"

	"github.com/avdva/binfloat"
)

// env is shared by all commands.
type env struct {
	out    io.Writer
	format string
	log    *log.Logger
}

func (e *env) write(results []binfloat.Result) error {
	var v interface{} = results
	if len(results) == 1 {
		v = results[0]
	}
	switch e.format {
	case "json":
		return json.NewEncoder(e.out).Encode(v)
	case "cbor":
		data, err := cbor.Marshal(v)
		if err != nil {
			return err
		}
		_, err = e.out.Write(data)
		return err
	case "", "text":
		if len(results) == 1 {
			return writeText(e.out, results[0])
		}
		return writeTable(e.out, results)
	}
	return fmt.Errorf("unknown format %q", e.format)
}

func writeText(w io.Writer, r binfloat.Result) error {
	if _, err := fmt.Fprintf(w, "Binary: %s\nHex:    %s\n", r.Binary(), r.Hex()); err != nil {
		return err
	}
	if d, ok := r.Decimal(); ok {
		if _, err := fmt.Fprintf(w, "Value:  %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []binfloat.Result) error {
	tw := tabwriter.NewWriter(w, 8, 1, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tBINARY\tHEX\tVALUE")
	for _, r := range results {
		value := "-"
		if d, ok := r.Decimal(); ok {
			value = d.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Mode(), r.Binary(), r.Hex(), value)
	}
	return tw.Flush()
}
