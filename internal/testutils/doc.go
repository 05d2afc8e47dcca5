// Package testutils provides testing utilities for the word explorer.
//
// This package contains helpers for:
//  1. Capturing structured log output (TestSlogHandler)
//  2. Creating test word records and model replies
//  3. Driving httptest servers and asserting on JSON error responses
//
// # Test Word Records
//
//	record := testutils.MustHappyRecord(t)
//	reply := testutils.HappyJSON
package testutils
