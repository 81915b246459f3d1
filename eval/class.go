/*
File    : lox/eval/class.go

Class declaration execution, the seven-step process of spec §4.5: define
the name as Nil so methods can reference their own class, typecheck each
superclass, open a closure frame for "super" when there is one, build the
method tables, compute the MRO, and assign the finished Class back into
the reserved slot. The "push/pop" of the super environment is expressed
here as never making that frame current rather than as an explicit pop:
classEnv only exists to be captured by method closures, so there is
nothing to restore once the declaration finishes.
*/
package eval

import (
	"lox/environment"
	"lox/function"
	"lox/objects"
	"lox/parser"
)

// superBinding is the runtime value bound under the synthetic "super"
// slot: the ordered list of a class's direct superclasses, exactly what
// spec §4.5 describes evalSuper as reading "(a list of superclasses) at
// the resolved depth". It is never constructed by user code and never
// observable through print or equality, so its stringification is only a
// debugging aid.
type superBinding struct {
	classes []*function.Class
}

func (superBinding) GetType() objects.LoxType { return objects.NilType }
func (superBinding) ToString() string         { return "<super>" }
func (superBinding) ToObject() string         { return "<super>" }

func (it *Interpreter) execClass(s *parser.ClassStmt) error {
	// (1) define the name as Nil so method bodies can reference the class
	// being built (mutual recursion, self-reference in class methods).
	var slot int
	if it.env == it.globals {
		it.globals.DefineGlobal(s.Name.Lexeme, objects.NilValue)
	} else {
		slot = it.env.Define(objects.NilValue)
	}

	// (2) evaluate superclass variables; each must already be a Class.
	superclasses := make([]*function.Class, 0, len(s.Superclasses))
	for _, superExpr := range s.Superclasses {
		v, err := it.evalExpr(superExpr)
		if err != nil {
			return err
		}
		cls, ok := v.(*function.Class)
		if !ok {
			return objects.NewRuntimeError(superExpr.Name, "Superclass must be a class.")
		}
		superclasses = append(superclasses, cls)
	}

	// (3) methods close over a frame binding "super" when there is one,
	// else they close directly over the declaring environment.
	closureEnv := it.env
	if len(superclasses) > 0 {
		closureEnv = environment.NewChild(it.env)
		closureEnv.Define(superBinding{classes: superclasses})
	}

	// (4) build the method and class-method tables.
	methods := make(map[string]*function.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &function.Function{
			Name:          m.Name.Lexeme,
			Params:        m.Params,
			Body:          m.Body,
			Closure:       closureEnv,
			IsInitializer: m.Name.Lexeme == "init",
			IsGetter:      m.IsGetter,
		}
	}
	// Class methods are resolved inside the same "this" scope as instance
	// methods but are never bound, so they close over a frame whose slot 0
	// stands in for "this" (as Nil) to keep resolver depths aligned.
	classMethodEnv := environment.NewChild(closureEnv)
	classMethodEnv.Define(objects.NilValue)
	classMethods := make(map[string]*function.Function, len(s.ClassMethods))
	for _, m := range s.ClassMethods {
		classMethods[m.Name.Lexeme] = &function.Function{
			Name:    m.Name.Lexeme,
			Params:  m.Params,
			Body:    m.Body,
			Closure: classMethodEnv,
		}
	}

	class := &function.Class{
		Name:         s.Name.Lexeme,
		Superclasses: superclasses,
		Methods:      methods,
		ClassMethods: classMethods,
	}

	// (5) compute the MRO.
	mro, err := function.ComputeMRO(class)
	if err != nil {
		return objects.NewRuntimeError(s.Name, err.Error())
	}
	class.MRO = mro

	// (6) assign the finished class back into the reserved slot.
	if it.env == it.globals {
		it.globals.AssignGlobal(s.Name.Lexeme, class)
	} else {
		it.env.AssignAt(0, slot, class)
	}

	// (7) nothing to pop: closureEnv was never made current.
	return nil
}
