/*
File    : olisp/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements OLisp's lexical scope chain: a map of
// variable bindings paired with a pointer to an enclosing Environment.
package environment

import (
	"fmt"

	"github.com/akashmaji946/olisp/object"
)

// Environment is one scope's variable bindings, linked to the scope that
// encloses it. The global environment has a nil Enclosing.
//
// Functions capture the *Environment live at their declaration point,
// not a copy of it, so that later assignments to captured variables are
// visible inside the closure. That's the defining invariant of OLisp's
// closure model.
type Environment struct {
	values    map[string]object.Value
	Enclosing *Environment
}

// New creates an environment enclosed by parent, or a fresh global
// environment when parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]object.Value),
		Enclosing: parent,
	}
}

// Define binds name to value in this environment, always succeeding. A
// name already bound here is overwritten, so redeclaration is legal.
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get returns the value bound to name, walking outward from this
// environment through each Enclosing scope in turn. The first binding
// found wins, so inner declarations shadow outer ones.
func (e *Environment) Get(name string) (object.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable %s", name)
}

// Assign mutates the nearest existing binding of name, walking outward
// the same way Get does. It fails if name is bound nowhere in the
// chain; unlike Define, Assign never creates a new binding.
func (e *Environment) Assign(name string, value object.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return fmt.Errorf("Variable does not exist %s", name)
}
