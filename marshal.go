// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// resultWire is the form of a Result in json and cbor.
type resultWire struct {
	Mode   string `json:"mode" cbor:"mode"`
	Kind   string `json:"kind" cbor:"kind"`
	Sign   Sign   `json:"sign" cbor:"sign"`
	Binary string `json:"binary" cbor:"binary"`
	Hex    string `json:"hex" cbor:"hex"`
	Value  string `json:"value,omitempty" cbor:"value,omitempty"`
}

func (r Result) toWire() (resultWire, error) {
	if !r.mode.valid() {
		return resultWire{}, ErrUnknownMode
	}
	w := resultWire{
		Mode:   r.mode.String(),
		Kind:   r.kind.Name(),
		Sign:   r.sign,
		Binary: r.Binary(),
		Hex:    r.Hex(),
	}
	if d, ok := r.Decimal(); ok {
		w.Value = d.String()
	}
	return w, nil
}

func (w resultWire) toResult() (Result, error) {
	m, err := ParseMode(w.Mode)
	if err != nil {
		return Result{}, err
	}
	k, err := ParseKind(w.Kind)
	if err != nil {
		return Result{}, err
	}
	if !w.Sign.valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrMalformedSign, w.Sign)
	}
	if k != Normal {
		return Result{mode: m, kind: k, sign: w.Sign}, nil
	}
	bits, err := ParseBits(m, w.Hex)
	if err != nil {
		return Result{}, err
	}
	r, err := Decode(m, bits)
	if err != nil {
		return Result{}, err
	}
	if r.kind != Normal || r.sign != w.Sign {
		return Result{}, fmt.Errorf("%s does not match %s with sign %s", w.Hex, k.Name(), w.Sign)
	}
	return r, nil
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	w, err := r.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
// Normal values are restored from the "hex" field.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	value, err := w.toResult()
	if err != nil {
		return err
	}
	*r = value
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (r Result) MarshalCBOR() ([]byte, error) {
	w, err := r.toWire()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(w)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (r *Result) UnmarshalCBOR(data []byte) error {
	var w resultWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	value, err := w.toResult()
	if err != nil {
		return err
	}
	*r = value
	return nil
}
