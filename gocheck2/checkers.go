// Extensions to the go-check unittest framework.
//
// NOTE: see https://github.com/go-check/check/pull/6 for reasons why these
// checkers live here.
package gocheck2

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
	. "gopkg.in/check.v1"
)

// -----------------------------------------------------------------------
// IsTrue / IsFalse checker.

type isBoolValueChecker struct {
	*CheckerInfo
	expected bool
}

func (checker *isBoolValueChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(bool)
	if !ok {
		return false, "Argument to " + checker.Name + " must be bool"
	}

	return obtained == checker.expected, ""
}

// The IsTrue checker verifies that the obtained value is true.
//
// For example:
//
//     c.Assert(value, IsTrue)
//
var IsTrue Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"obtained"}},
	true,
}

// The IsFalse checker verifies that the obtained value is false.
//
// For example:
//
//     c.Assert(value, IsFalse)
//
var IsFalse Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsFalse", Params: []string{"obtained"}},
	false,
}

// -----------------------------------------------------------------------
// MultilineEquals checker.

type multilineEqualsChecker struct {
	*CheckerInfo
}

func (checker *multilineEqualsChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained := renderText(params[0])
	expected := renderText(params[1])
	if obtained == expected {
		return true, ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(obtained),
		FromFile: "expected",
		ToFile:   "obtained",
		Context:  2,
	})
	if err != nil {
		return false, "Failed to diff values: " + err.Error()
	}
	return false, "Values differ:\n" + diff
}

// Text values compare by content: strings as-is, string slices joined,
// Stringers rendered. Anything else goes through spew so the failure
// message stays readable.
func renderText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "")
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return spew.Sdump(value)
	}
}

// The MultilineEquals checker verifies that two multi-line text values
// are equal, and renders a unified diff of the two when they are not.
//
// For example:
//
//     c.Assert(obtainedLines, MultilineEquals, expectedText)
//
var MultilineEquals Checker = &multilineEqualsChecker{
	&CheckerInfo{Name: "MultilineEquals", Params: []string{"obtained", "expected"}},
}
