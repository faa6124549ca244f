// SPDX-License-Identifier: MPL-2.0

// Package issue holds the catalog of failures plugkit knows how to explain.
//
// Each catalog entry is a Markdown page rendered with glamour. Commands tag
// their errors with an issue Id through ErrorContext; the CLI looks the tag up
// with IssueOf and prints the matching page below the error.
package issue
