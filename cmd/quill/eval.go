package main

import (
	"fmt"
	"strings"

	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/eval"
	"github.com/quillml/go-quillml/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func quillEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	code := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		y, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := eval.EvalNode(code, y, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		if err := writeResult(cfg, cc, res); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(cfg *EvalConfig, cc *cli.Context, res *ir.Node) error {
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// envFunc sets the dotted key of a=val in env; val is read as YAML so
// "-e n=3" gives a number and "-e g.s=abc" a string.
func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	v = normalizeYAML(v)
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}

// normalizeYAML turns the integer types the YAML decoder produces into int
// so expressions see the same types as document entries.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case uint64:
		return int(x)
	case int64:
		return int(x)
	case []any:
		for i := range x {
			x[i] = normalizeYAML(x[i])
		}
	case map[string]any:
		for k := range x {
			x[k] = normalizeYAML(x[k])
		}
	}
	return v
}
