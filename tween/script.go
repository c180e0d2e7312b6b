package tween

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script is a curve written in tengo. The source reads the global `t` and
// assigns the global `value`.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

// CompileScript compiles src with the tengo math module available.
func CompileScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("tween: script %s: %w", name, err)
	}
	if err := script.Add("value", 0.0); err != nil {
		return nil, fmt.Errorf("tween: script %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("tween: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

// Eval runs the script for input t. Runtime panics inside the VM, such as
// an integer division by zero, come back as errors.
func (s *Script) Eval(t float64) (value float64, err error) {
	if s == nil || s.compiled == nil {
		return 0, fmt.Errorf("tween: nil script")
	}
	defer func() {
		if r := recover(); r != nil {
			value, err = 0, fmt.Errorf("tween: script %s: run: %v", s.name, r)
		}
	}()
	if err := s.compiled.Set("t", t); err != nil {
		return 0, fmt.Errorf("tween: script %s: set t: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("tween: script %s: run: %w", s.name, err)
	}
	return s.compiled.Get("value").Float(), nil
}

// Curve evaluates a script and falls back to a Go curve when the script is
// missing or fails.
type Curve struct {
	Script   *Script
	Fallback func(float64) float64
	failed   bool
}

func (c *Curve) Eval(t float64) float64 {
	if c.Script != nil && !c.failed {
		v, err := c.Script.Eval(t)
		if err == nil {
			return v
		}
		c.failed = true
	}
	if c.Fallback == nil {
		return 0
	}
	return c.Fallback(t)
}

// Failed reports whether the script errored and the fallback took over.
func (c *Curve) Failed() bool {
	return c.failed
}
