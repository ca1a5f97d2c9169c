// Copyright © 2026 ImaMapleTree. All rights reserved.
// Use of this source code is governed by the MIT license described in the
// LICENSE file.

package cli

import (
	"errors"
	"reflect"
	"testing"
)

var echoSpecs = []Arg{
	Named("--value", String).WithDefault("nothing..."),
	Named("--hide", Bool),
}

func TestBindNamedDefaults(t *testing.T) {
	vals, err := bind(echoSpecs, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{"nothing...", false}) {
		t.Error("wrong:", vals)
	}
}

func TestBindNamedPresent(t *testing.T) {
	vals, err := bind(echoSpecs, "--value text --hide", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{"text", true}) {
		t.Error("wrong:", vals)
	}
}

func TestBindBoolPresenceConsumesNoValue(t *testing.T) {
	specs := []Arg{
		Named("--hide", Bool),
		Positional(0, String),
	}
	vals, err := bind(specs, "--hide keep", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{true, "keep"}) {
		t.Error("wrong:", vals)
	}
}

func TestBindBoolDefaultTrue(t *testing.T) {
	specs := []Arg{Named("--loud", Bool).WithDefault(true)}
	vals, err := bind(specs, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{true}) {
		t.Error("wrong:", vals)
	}
}

func TestBindPositionalInts(t *testing.T) {
	specs := []Arg{Positional(0, Int), Positional(1, Int)}
	vals, err := bind(specs, "5 4", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{5, 4}) {
		t.Error("wrong:", vals)
	}
}

func TestBindFloat(t *testing.T) {
	specs := []Arg{Positional(0, Float)}
	vals, err := bind(specs, "2.5", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{2.5}) {
		t.Error("wrong:", vals)
	}
}

func TestBindSeveralNamedValues(t *testing.T) {
	specs := []Arg{
		Named("--from", String).WithDefault(""),
		Named("--to", String).WithDefault(""),
		Named("--count", Int).WithDefault(0),
	}
	vals, err := bind(specs, "--to b --count 3 --from a", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{"a", "b", 3}) {
		t.Error("wrong:", vals)
	}
}

func TestBindPositionalAfterNamedRemoved(t *testing.T) {
	specs := []Arg{
		Named("--tag", String).WithDefault(""),
		Positional(0, String),
	}
	vals, err := bind(specs, "--tag x alpha", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{"x", "alpha"}) {
		t.Error("wrong:", vals)
	}
}

func TestBindMissingPositional(t *testing.T) {
	specs := []Arg{Positional(0, String)}
	_, err := bind(specs, "", nil)
	var missing *MissingArgumentError
	if !errors.As(err, &missing) {
		t.Error("wrong:", err)
	}
}

func TestBindMissingNamed(t *testing.T) {
	specs := []Arg{Named("--value", String)}
	_, err := bind(specs, "", nil)
	var missing *MissingArgumentError
	if !errors.As(err, &missing) {
		t.Error("wrong:", err)
	}
}

func TestBindBadInt(t *testing.T) {
	specs := []Arg{Positional(0, Int)}
	_, err := bind(specs, "five", nil)
	var bad *ArgumentTypeError
	if !errors.As(err, &bad) {
		t.Error("wrong:", err)
	}
}

func TestBindDeterministic(t *testing.T) {
	raw := "--value text 7"
	specs := []Arg{
		Named("--value", String).WithDefault("nothing..."),
		Positional(0, Int),
	}
	first, err := bind(specs, raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := bind(specs, raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("wrong:", first, second)
	}
}

func TestBindCommandInjection(t *testing.T) {
	node := &Command{name: "n", subcommands: map[*Command]struct{}{}}
	specs := []Arg{{Command: true}, Positional(0, String)}
	vals, err := bind(specs, "tok", node)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != node {
		t.Error("wrong node:", vals[0])
	}
	if vals[1] != "tok" {
		t.Error("wrong:", vals[1])
	}
}

func TestBindSelfInjection(t *testing.T) {
	node := &Command{
		name:        "n",
		subcommands: map[*Command]struct{}{},
		construct:   func() Executor { return new(tally) },
	}
	specs := []Arg{{Self: true}}
	vals, err := bind(specs, "", node)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != node.Instance() {
		t.Error("wrong instance:", vals[0])
	}
}
