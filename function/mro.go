/*
File : lox/function/mro.go

C3 linearization, mirroring pylox/interpreter.py's mro()/merge() methods
operationally (this corpus already implements full multi-superclass C3;
spec §9(a) adopts that model as authoritative over the single-superclass
variant also present in the original source).
*/
package function

import "fmt"

// ComputeMRO builds class's method resolution order: itself first,
// followed by a C3 merge of its superclasses' MROs and the superclass
// list itself.
func ComputeMRO(class *Class) ([]*Class, error) {
	if len(class.Superclasses) == 0 {
		return []*Class{class}, nil
	}

	lists := make([][]*Class, 0, len(class.Superclasses)+1)
	for _, super := range class.Superclasses {
		lists = append(lists, append([]*Class{}, super.MRO...))
	}
	lists = append(lists, append([]*Class{}, class.Superclasses...))

	merged, err := merge(lists)
	if err != nil {
		return nil, err
	}
	return append([]*Class{class}, merged...), nil
}

// merge repeatedly picks a "good head": the first element of some list
// that does not appear in the tail of any other list. It removes that
// head everywhere it appears at the front, drops emptied lists, and
// appends the head to the result. No good head at any step means the
// hierarchy has no consistent linearization.
func merge(lists [][]*Class) ([]*Class, error) {
	var result []*Class

	for {
		lists = dropEmpty(lists)
		if len(lists) == 0 {
			return result, nil
		}

		var head *Class
		for _, candidate := range lists {
			c := candidate[0]
			if !appearsInAnyTail(c, lists) {
				head = c
				break
			}
		}
		if head == nil {
			return nil, fmt.Errorf("Cannot create a consistent MRO.")
		}

		result = append(result, head)
		for i, list := range lists {
			lists[i] = removeFront(list, head)
		}
	}
}

func dropEmpty(lists [][]*Class) [][]*Class {
	out := lists[:0]
	for _, l := range lists {
		if len(l) > 0 {
			out = append(out, l)
		}
	}
	return out
}

func appearsInAnyTail(c *Class, lists [][]*Class) bool {
	for _, list := range lists {
		for _, other := range list[1:] {
			if other == c {
				return true
			}
		}
	}
	return false
}

func removeFront(list []*Class, head *Class) []*Class {
	if len(list) > 0 && list[0] == head {
		return list[1:]
	}
	return list
}
