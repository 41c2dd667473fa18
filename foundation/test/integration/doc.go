// Package integration holds tests that run the boundstr foundation packages
// together.
//
// Package: integration
// Title: boundstr Foundation Integration Tests
// Description: Verifies that the buffer, string, list, number, file and
//              configuration packages agree on buffer conventions and on
//              the shape of the errors they return.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-10-16 v0.2.0: Bounded string module flows
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
//   - Error module, operation and code across packages
//   - Data flow from configuration through split, format and file I/O
//   - Buffer conventions shared by bufx and stringx
//
// Performance Integration Tests (performance_test.go):
//   - Cross-module pipelines under benchmark
package integration
