/*
File    : lox/function/function.go

Function, Class, and Instance are the callable/structured value kinds.
Like the teacher's own Function (akashmaji946-go-mix/function/function.go),
they stay pure data: no Call method lives here, because calling a
function means executing statements, which means depending on the
evaluator, and the evaluator already depends on this package for the
value kinds it dispatches on. The eval package owns every behavior that
would otherwise create that cycle; Bind is the one exception, since
wiring a new closure frame around "this" is pure environment bookkeeping
and never executes Lox code.
*/
package function

import (
	"fmt"

	"lox/environment"
	"lox/lexer"
	"lox/objects"
	"lox/parser"
)

// Function is a closure: a declaration plus the environment it was
// defined in. Name is empty for a lambda, matching the "<lambda fn>"
// stringification rule rather than "<fn >".
type Function struct {
	Name          string
	Params        []lexer.Token
	Body          []parser.Stmt
	Closure       *environment.Environment
	IsInitializer bool
	IsGetter      bool
}

func (f *Function) GetType() objects.LoxType { return objects.FunctionType }

func (f *Function) ToString() string {
	if f.Name == "" {
		return "<lambda fn>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}

func (f *Function) ToObject() string { return f.ToString() }

func (f *Function) Arity() int { return len(f.Params) }

// Bind returns a copy of f whose closure is a new frame enclosing the
// original closure with "this" defined at slot 0, the shape every
// method body's resolver pass already assumes (§4.3 "this" is resolved
// like a local at slot 0 of its own scope).
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewChild(f.Closure)
	env.Define(instance)
	return &Function{
		Name:          f.Name,
		Params:        f.Params,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
		IsGetter:      f.IsGetter,
	}
}

// Class carries its name, direct superclasses, method tables, and its
// precomputed MRO (itself first).
type Class struct {
	Name         string
	Superclasses []*Class
	Methods      map[string]*Function
	ClassMethods map[string]*Function
	MRO          []*Class
}

func (c *Class) GetType() objects.LoxType { return objects.ClassType }
func (c *Class) ToString() string         { return c.Name }
func (c *Class) ToObject() string         { return fmt.Sprintf("<class %s>", c.Name) }

// Arity is the arity of "init" if the class (or an ancestor) defines
// one, else 0: calling a class with no initializer takes no arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// FindMethod walks the MRO in order looking for an instance method.
func (c *Class) FindMethod(name string) (*Function, bool) {
	for _, ancestor := range c.MRO {
		if fn, ok := ancestor.Methods[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// FindClassMethod walks the MRO in order looking for a static method.
func (c *Class) FindClassMethod(name string) (*Function, bool) {
	for _, ancestor := range c.MRO {
		if fn, ok := ancestor.ClassMethods[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Instance is a class instance: its class plus a mutable field map.
// Fields shadow methods of the same name when read through Get (the
// evaluator checks Fields before falling back to FindMethod).
type Instance struct {
	Class  *Class
	Fields map[string]objects.Value
}

// NewInstance creates an instance with an empty field map.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]objects.Value)}
}

func (i *Instance) GetType() objects.LoxType { return objects.InstanceType }
func (i *Instance) ToString() string         { return fmt.Sprintf("%s instance", i.Class.Name) }
func (i *Instance) ToObject() string         { return i.ToString() }
