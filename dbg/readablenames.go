package dbg

import (
	"fmt"
	"reflect"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names. The
// memo grows without bound, but names are generated lazily, so it
// costs nothing unless you're actually using it. It turns vertex
// pointers into something easier to tell apart than hex addresses
// when staring at a rendered hull.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic as a reminder that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s-%s", petname.Adjective(), petname.Name())
	memo[obj] = r
	return r
}
