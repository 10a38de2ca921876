// Package script exposes the Typogenetics engines to starlark scripts.
//
// Enzymes cross the script boundary in their mnemonic form ("cut-mvr:A").
// Predeclared builtins:
//
//	translate(strand)                      -> list of enzymes
//	bind_sites(enzyme, target)             -> list of positions
//	execute(enzyme, target, position)      -> list of output strands
//	batch(enzymes, targets, positions)     -> list of lists of output strands
//	products(catalyst, target)             -> sorted distinct outputs
//	survivor(strand)                       -> bool
//	complement(strand), reverse_complement(strand) -> strand
package script

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/typo/base"
	"github.com/ezrec/typo/batch"
	"github.com/ezrec/typo/enzyme"
	"github.com/ezrec/typo/machine"
	"github.com/ezrec/typo/reaction"
)

// Script runs starlark programs with the Typogenetics builtins.
type Script struct {
	Batch batch.Config                                     // Capacities for the batch() builtin.
	Print func(msg string)                                 // Destination of print(), discarded if nil.
	Load  func(module string) (starlark.StringDict, error) // Optional load() handler.
}

// Predeclared returns the builtins.
func (sc *Script) Predeclared() starlark.StringDict {
	return starlark.StringDict{
		"translate":          starlark.NewBuiltin("translate", builtinTranslate),
		"bind_sites":         starlark.NewBuiltin("bind_sites", builtinBindSites),
		"execute":            starlark.NewBuiltin("execute", builtinExecute),
		"batch":              starlark.NewBuiltin("batch", sc.builtinBatch),
		"products":           starlark.NewBuiltin("products", builtinProducts),
		"survivor":           starlark.NewBuiltin("survivor", builtinSurvivor),
		"complement":         starlark.NewBuiltin("complement", builtinComplement),
		"reverse_complement": starlark.NewBuiltin("reverse_complement", builtinReverseComplement),
	}
}

// Exec runs a script, and returns its globals.
func (sc *Script) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if sc.Print != nil {
				sc.Print(msg)
			}
		},
	}
	if sc.Load != nil {
		thread.Load = func(_ *starlark.Thread, module string) (starlark.StringDict, error) {
			return sc.Load(module)
		}
	}

	opts := syntax.FileOptions{}
	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, sc.Predeclared())
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			err = ErrScript{Backtrace: evalErr.Backtrace(), Err: err}
		}
		return
	}

	return
}

func parseEnzyme(fn *starlark.Builtin, text string) (e enzyme.Enzyme, err error) {
	e, err = enzyme.ParseEnzyme(text)
	if err != nil {
		err = fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return
}

func stringList(values []string) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for n, v := range values {
		elems[n] = starlark.String(v)
	}
	return starlark.NewList(elems)
}

func builtinTranslate(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var strand string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &strand); err != nil {
		return nil, err
	}

	var names []string
	for _, e := range enzyme.Translate(strand) {
		names = append(names, e.String())
	}
	return stringList(names), nil
}

func builtinBindSites(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text, target string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &text, &target); err != nil {
		return nil, err
	}

	e, err := parseEnzyme(fn, text)
	if err != nil {
		return nil, err
	}

	sites := enzyme.BindSites(e, target)
	elems := make([]starlark.Value, len(sites))
	for n, site := range sites {
		elems[n] = starlark.MakeInt(site)
	}
	return starlark.NewList(elems), nil
}

func builtinExecute(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text, target string
	var position int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 3, &text, &target, &position); err != nil {
		return nil, err
	}

	e, err := parseEnzyme(fn, text)
	if err != nil {
		return nil, err
	}

	outputs, err := machine.Execute(e, target, position)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return stringList(outputs), nil
}

func (sc *Script) builtinBatch(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var texts, targets, positions *starlark.List
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 3, &texts, &targets, &positions); err != nil {
		return nil, err
	}

	var enzymes []enzyme.Enzyme
	for n := range texts.Len() {
		v := texts.Index(n)
		text, ok := starlark.AsString(v)
		if !ok {
			return nil, fmt.Errorf("%s: enzyme %v is not a string", fn.Name(), v)
		}
		e, err := parseEnzyme(fn, text)
		if err != nil {
			return nil, err
		}
		enzymes = append(enzymes, e)
	}

	var strands []string
	for n := range targets.Len() {
		v := targets.Index(n)
		strand, ok := starlark.AsString(v)
		if !ok {
			return nil, fmt.Errorf("%s: target %v is not a string", fn.Name(), v)
		}
		strands = append(strands, strand)
	}

	var binds []int
	for n := range positions.Len() {
		v := positions.Index(n)
		var position int
		if err := starlark.AsInt(v, &position); err != nil {
			return nil, fmt.Errorf("%s: position %v: %w", fn.Name(), v, err)
		}
		binds = append(binds, position)
	}

	results, err := batch.ExecuteConfig(sc.Batch, enzymes, strands, binds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	elems := make([]starlark.Value, len(results))
	for n, outputs := range results {
		elems[n] = stringList(outputs)
	}
	return starlark.NewList(elems), nil
}

func builtinProducts(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var catalyst, target string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &catalyst, &target); err != nil {
		return nil, err
	}

	reactions, err := reaction.Reactions(catalyst, target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return stringList(reaction.Products(reactions)), nil
}

func builtinSurvivor(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var strand string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &strand); err != nil {
		return nil, err
	}

	ok, err := reaction.Survivor(strand)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return starlark.Bool(ok), nil
}

func builtinComplement(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var strand string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &strand); err != nil {
		return nil, err
	}
	if err := base.Validate(strand); err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return starlark.String(base.Complement(strand)), nil
}

func builtinReverseComplement(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var strand string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &strand); err != nil {
		return nil, err
	}
	if err := base.Validate(strand); err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return starlark.String(base.ReverseComplement(strand)), nil
}
