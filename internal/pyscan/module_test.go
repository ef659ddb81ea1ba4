package pyscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/docshift/pkg/types"
)

func locate(t *testing.T, lines []string) []types.RawCapture {
	t.Helper()
	return NewLocator(lines).Locate()
}

func TestLocateModuleDocstring(t *testing.T) {
	caps := locate(t, []string{
		`"""Module documentation."""`,
		"",
		"import os",
	})
	require.Len(t, caps, 1)
	assert.Equal(t, 0, caps[0].StartLine)
	assert.Equal(t, 1, caps[0].EndLine)
	assert.Equal(t, []string{`"""Module documentation."""`}, caps[0].Lines)
	assert.Empty(t, caps[0].Args)
	assert.Empty(t, caps[0].Keywords)
}

func TestLocateModuleDocstringAfterComments(t *testing.T) {
	caps := locate(t, []string{
		"#!/usr/bin/env python",
		"# -*- coding: utf-8 -*-",
		"",
		`"""Module documentation."""`,
	})
	require.Len(t, caps, 1)
	assert.Equal(t, 3, caps[0].StartLine)
	assert.Equal(t, 4, caps[0].EndLine)
}

func TestLocateNoModuleDocstring(t *testing.T) {
	caps := locate(t, []string{
		"import os",
		"",
		"x = os.getcwd",
	})
	assert.Empty(t, caps)
}

func TestLocateFunctionDocstring(t *testing.T) {
	caps := locate(t, []string{
		"def func(arg1, arg2=4, *args, kw1, **kwargs):",
		`    """One line."""`,
		"    return arg1",
	})
	require.Len(t, caps, 1)
	got := caps[0]
	assert.Equal(t, 1, got.StartLine)
	assert.Equal(t, 2, got.EndLine)
	assert.Equal(t, []string{"arg1"}, got.Args)
	assert.Equal(t, []string{"arg2", "kw1"}, got.Keywords)
	assert.Equal(t, "args", got.VarArg)
	assert.Equal(t, "kwargs", got.KwArg)
	assert.Equal(t, []string{"arg2", "kw1", "kwargs"}, got.KeywordNames())
}

func TestLocateMultiLineDocstring(t *testing.T) {
	caps := locate(t, []string{
		"def func():",
		`    """First line.`,
		"",
		"    Last line.",
		`    """`,
		"    pass",
	})
	require.Len(t, caps, 1)
	assert.Equal(t, 1, caps[0].StartLine)
	assert.Equal(t, 5, caps[0].EndLine)
	assert.Len(t, caps[0].Lines, 4)
}

func TestLocateFunctionWithoutDocstring(t *testing.T) {
	caps := locate(t, []string{
		"def func():",
		"    return 1",
	})
	assert.Empty(t, caps)
}

func TestLocateMultiLineHeader(t *testing.T) {
	caps := locate(t, []string{
		"def func(arg1,",
		"         arg2=None):",
		`    """Doc."""`,
	})
	require.Len(t, caps, 1)
	assert.Equal(t, 2, caps[0].StartLine)
	assert.Equal(t, []string{"arg1"}, caps[0].Args)
	assert.Equal(t, []string{"arg2"}, caps[0].Keywords)
}

func TestLocateDecoratedFunction(t *testing.T) {
	caps := locate(t, []string{
		"@decorate",
		"@decorate.with_args(1, 2)",
		"def func(arg):",
		`    """Doc."""`,
	})
	require.Len(t, caps, 1)
	assert.Equal(t, 3, caps[0].StartLine)
	assert.Equal(t, []string{"arg"}, caps[0].Args)
}

func TestLocateAsyncFunction(t *testing.T) {
	caps := locate(t, []string{
		"async def fetch(url):",
		`    """Doc."""`,
	})
	require.Len(t, caps, 1)
	assert.Equal(t, []string{"url"}, caps[0].Args)
}

func TestLocateClassAndMethods(t *testing.T) {
	caps := locate(t, []string{
		`"""Module."""`,
		"",
		"class Thing(Base):",
		`    """Class doc."""`,
		"",
		"    def method(self, value):",
		`        """Method doc."""`,
		"        return value",
		"",
		"    def bare(self):",
		"        return None",
	})
	require.Len(t, caps, 3)
	assert.Equal(t, 0, caps[0].StartLine)
	assert.Equal(t, 3, caps[1].StartLine)
	assert.Empty(t, caps[1].Args)
	assert.Equal(t, 6, caps[2].StartLine)
	assert.Equal(t, []string{"self", "value"}, caps[2].Args)
}

func TestLocateNestedFunction(t *testing.T) {
	caps := locate(t, []string{
		"def outer():",
		`    """Outer."""`,
		"    def inner(x):",
		`        """Inner."""`,
		"        return x",
		"    return inner",
	})
	require.Len(t, caps, 2)
	assert.Equal(t, 1, caps[0].StartLine)
	assert.Equal(t, 3, caps[1].StartLine)
	assert.Equal(t, []string{"x"}, caps[1].Args)
}

func TestLocateAttributeDocstring(t *testing.T) {
	caps := locate(t, []string{
		"class Config:",
		`    """Class doc."""`,
		"",
		"    retries = 3",
		`    """How many times to retry."""`,
		"",
		"    timeout = 10",
	})
	require.Len(t, caps, 2)
	assert.Equal(t, 4, caps[1].StartLine)
	assert.Equal(t, 5, caps[1].EndLine)
	assert.Equal(t, []string{`    """How many times to retry."""`}, caps[1].Lines)
}

func TestLocateModuleLevelAttributeDocstring(t *testing.T) {
	caps := locate(t, []string{
		"DEFAULT = object()",
		`"""Sentinel for unset values."""`,
	})
	require.Len(t, caps, 1)
	assert.Equal(t, 1, caps[0].StartLine)
	assert.Equal(t, 2, caps[0].EndLine)
}

func TestLocateMultiLineAttributeDocstring(t *testing.T) {
	caps := locate(t, []string{
		"LIMIT = 100",
		`"""Upper bound.`,
		"",
		`Applies everywhere."""`,
	})
	require.Len(t, caps, 1)
	assert.Equal(t, 1, caps[0].StartLine)
	assert.Equal(t, 4, caps[0].EndLine)
}

func TestLocateAnnotatedAssignIsSkipped(t *testing.T) {
	caps := locate(t, []string{
		"x: int = 1",
		`"""Not an attribute docstring here."""`,
	})
	assert.Empty(t, caps)
}

func TestLocateStringWithoutAssignIsSkipped(t *testing.T) {
	caps := locate(t, []string{
		"import os",
		"",
		`"""Stray string."""`,
	})
	assert.Empty(t, caps)
}

func TestLocateInsideCompoundStatement(t *testing.T) {
	caps := locate(t, []string{
		"if True:",
		"    def func():",
		`        """Doc."""`,
	})
	require.Len(t, caps, 1)
	assert.Equal(t, 2, caps[0].StartLine)
}

func TestLocateSurvivesBadIndentation(t *testing.T) {
	caps := locate(t, []string{
		"def good():",
		`    """Found."""`,
		"",
		"def broken():",
		"    x = 1",
		"  y = 2",
	})
	require.Len(t, caps, 1)
	assert.Equal(t, 1, caps[0].StartLine)
}

func TestParseSignatureDefaults(t *testing.T) {
	header := Tokenize([]string{"def f(a, b=1, *rest, c, d=2, **extra):"})
	sig := parseSignature(header)
	assert.Equal(t, []string{"a"}, sig.args)
	assert.Equal(t, []string{"b", "c", "d"}, sig.keywords)
	assert.Equal(t, "rest", sig.vararg)
	assert.Equal(t, "extra", sig.kwarg)
}

func TestParseSignatureBareStar(t *testing.T) {
	sig := parseSignature(Tokenize([]string{"def f(a, *, b):"}))
	assert.Equal(t, []string{"a"}, sig.args)
	assert.Equal(t, []string{"b"}, sig.keywords)
	assert.Equal(t, "", sig.vararg)
}

func TestParseSignaturePositionalOnlyMarker(t *testing.T) {
	sig := parseSignature(Tokenize([]string{"def f(a, /, b):"}))
	assert.Equal(t, []string{"a", "b"}, sig.args)
	assert.Empty(t, sig.keywords)
}

func TestParseSignatureAnnotationsAndContainers(t *testing.T) {
	sig := parseSignature(Tokenize([]string{
		"def f(a: int, b: dict = {1: 2}, c: tuple = (3, 4)):",
	}))
	assert.Equal(t, []string{"a"}, sig.args)
	assert.Equal(t, []string{"b", "c"}, sig.keywords)
}

func TestParseSignatureLambdaDefault(t *testing.T) {
	sig := parseSignature(Tokenize([]string{
		"def f(key=lambda a, b: a, flag=False):",
	}))
	assert.Empty(t, sig.args)
	assert.Equal(t, []string{"key", "flag"}, sig.keywords)
}

func TestParseSignatureNoParams(t *testing.T) {
	sig := parseSignature(Tokenize([]string{"def f():"}))
	assert.Empty(t, sig.args)
	assert.Empty(t, sig.keywords)
	assert.Equal(t, "", sig.vararg)
	assert.Equal(t, "", sig.kwarg)
}
