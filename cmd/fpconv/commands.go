package main

import (
	"errors"

	"github.com/avdva/binfloat"
	mu "github.com/avdva/binfloat/internal/mathutil"
)

var errEmptyFraction = errors.New("fraction must not be empty, use 0 for none")

type encodeCmd struct {
	Mode     string `short:"m" help:"Precision: half, single, double, or all." enum:"half,single,double,all" default:"single" env:"FPCONV_MODE"`
	Sign     string `short:"s" help:"Sign bit: 0, 1, + or -." enum:"0,1,+,-" default:"0"`
	Exp      int    `short:"e" help:"Power-of-two exponent. Use --exp=-N for negative values." required:""`
	Whole    string `arg:"" help:"Whole part, binary digits."`
	Fraction string `arg:"" help:"Fraction, binary digits."`
}

func (c *encodeCmd) Run(e *env) error {
	if c.Fraction == "" {
		return errEmptyFraction
	}
	sign, err := binfloat.ParseSign(c.Sign)
	if err != nil {
		return err
	}
	raw, err := binfloat.ParseRaw(sign, c.Whole, c.Fraction, c.Exp)
	if err != nil {
		return err
	}
	modes, err := parseModes(c.Mode)
	if err != nil {
		return err
	}
	results := make([]binfloat.Result, 0, len(modes))
	for _, m := range modes {
		logger := e.log.WithField("mode", m.String())
		if bound := m.MaxExponent(); raw.Exponent > bound || raw.Exponent < -bound {
			logger.Warnf("exponent %d is out of [-%d, %d], the range for %s precision", raw.Exponent, bound, bound, m)
		}
		if n, err := binfloat.Normalize(raw); err == nil {
			logger.Debugf("normalized %s to %s, biased exponent %d", raw, n, mu.AddInt(n.Exponent, m.Bias()))
		} else {
			logger.Debugf("normalizing %s: %v", raw, err)
		}
		r, err := binfloat.ConvertRaw(m, raw)
		if err != nil {
			return err
		}
		logger.Debugf("classified as %s", r.Kind().Name())
		results = append(results, r)
	}
	return e.write(results)
}

type decodeCmd struct {
	Mode    string `short:"m" help:"Precision: half, single or double." enum:"half,single,double" default:"single" env:"FPCONV_MODE"`
	Pattern string `arg:"" help:"Bit pattern, like 0x40A00000."`
}

func (c *decodeCmd) Run(e *env) error {
	m, err := binfloat.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	bits, err := binfloat.ParseBits(m, c.Pattern)
	if err != nil {
		return err
	}
	r, err := binfloat.Decode(m, bits)
	if err != nil {
		return err
	}
	e.log.WithField("mode", m.String()).Debugf("decoded %#x as %s", bits, r.Kind().Name())
	return e.write([]binfloat.Result{r})
}

func parseModes(s string) ([]binfloat.Mode, error) {
	if s == "all" {
		return binfloat.Modes(), nil
	}
	m, err := binfloat.ParseMode(s)
	if err != nil {
		return nil, err
	}
	return []binfloat.Mode{m}, nil
}
