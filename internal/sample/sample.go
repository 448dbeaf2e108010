// Package sample produces .NET style exceptions thrown from nested
// namespaces and classes, for demonstrating shy traces without a .NET
// runtime at hand.
package sample

import (
	"fmt"
	"strings"
)

// DefaultRoot is the project folder the sample sources live in.
const DefaultRoot = `C:\Users\dev\source\repos\ShyStackTrace_test\ShyStackTrace_test`

const rootNamespace = "ShyStackTrace_test"

// Exception is a thrown .NET exception together with its captured trace.
type Exception struct {
	Type    string
	Message string
	trace   string
	thrown  bool
}

// Error implements the error interface.
func (e *Exception) Error() string {
	return e.Type + ": " + e.Message
}

// StackTrace returns the captured trace. It reports false for an exception
// that was constructed but never thrown.
func (e *Exception) StackTrace() (string, bool) {
	if e == nil || !e.thrown {
		return "", false
	}
	return e.trace, true
}

type frame struct {
	class  string // relative to the root namespace
	method string
	file   string // relative to the project root, '\' separated
	line   int
}

// thread records the active call chain. Frames are pushed by callers and the
// innermost frame is last.
type thread struct {
	root  string
	stack []frame
}

func (t *thread) call(f frame, body func() error) error {
	t.stack = append(t.stack, f)
	defer func() { t.stack = t.stack[:len(t.stack)-1] }()
	return body()
}

func (t *thread) throw(message string) error {
	lines := make([]string, 0, len(t.stack))
	for i := len(t.stack) - 1; i >= 0; i-- {
		f := t.stack[i]
		lines = append(lines, fmt.Sprintf("   at %s.%s.%s() in %s\\%s:line %d",
			rootNamespace, f.class, f.method, t.root, f.file, f.line))
	}
	return &Exception{
		Type:    "System.Exception",
		Message: message,
		trace:   strings.Join(lines, "\r\n"),
		thrown:  true,
	}
}

// Scenario is one demo case.
type Scenario struct {
	Name string
	Run  func() error
}

// Scenarios returns the demo cases with sources located under root. An empty
// root selects DefaultRoot.
func Scenarios(root string) []Scenario {
	if root == "" {
		root = DefaultRoot
	}
	root = strings.TrimRight(root, `\`)
	t := &thread{root: root}

	programMain := func(line int, body func() error) error {
		return t.call(frame{"Program", "Main", "Program.cs", line}, body)
	}
	class1Test1 := func() error {
		return t.call(frame{"Class1", "Test1", "Class1.cs", 11}, func() error {
			return t.throw("This is a test exception from Class1.")
		})
	}
	class1Test2 := func() error {
		return t.call(frame{"Class1", "Test2", "Class1.cs", 15}, class1Test1)
	}
	class2Test1 := func() error {
		return t.call(frame{"SubComponent.Class2", "Test1", `SubComponent\Class2.cs`, 11}, class1Test2)
	}
	class2Test2 := func() error {
		return t.call(frame{"SubComponent.Class2", "Test2", `SubComponent\Class2.cs`, 15}, class2Test1)
	}
	class3Test1 := func() error {
		return t.call(frame{"SubComponent.SubComponent2.Class3", "Test1", `SubComponent\SubComponent2\Class3.cs`, 11}, class2Test2)
	}
	class3Test2 := func() error {
		return t.call(frame{"SubComponent.SubComponent2.Class3", "Test2", `SubComponent\SubComponent2\Class3.cs`, 15}, class3Test1)
	}

	return []Scenario{
		{Name: "ShyStackTrace Test1", Run: func() error {
			return programMain(10, func() error { return t.throw("This is a test exception.") })
		}},
		{Name: "ShyStackTrace Test2", Run: func() error { return programMain(23, class1Test2) }},
		{Name: "ShyStackTrace Test3", Run: func() error { return programMain(36, class2Test2) }},
		{Name: "ShyStackTrace Test4", Run: func() error { return programMain(49, class3Test2) }},
	}
}
