// Package mcp provides an MCP (Model Context Protocol) server adapter for Unital.
// It enables AI assistants like Claude to convert units and evaluate unit-aware
// arithmetic through the local engine.
package mcp

import "errors"

// ErrMissingConversionService is returned when the conversion service is not provided.
var ErrMissingConversionService = errors.New("mcp: conversion service is required")

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")
