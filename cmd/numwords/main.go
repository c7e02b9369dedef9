// Numwords parses and extracts English number phrases.
//
// Usage:
//
//	# Parse a complete phrase
//	numwords parse four score and seven
//
//	# Parse the phrase at the start of some text
//	numwords prefix "ten years later"
//
//	# Extract every phrase from a file, or from stdin with "-"
//	numwords extract notes.txt
//
//	# Render an integer as a phrase
//	numwords convert 1999
//
//	# Scan a directory, rescanning on change, and index the results
//	numwords scan ./corpus --watch --index index.db
//
//	# Query indexed matches
//	numwords query --index index.db --min 1000
package main

import "os"

func main() {
	os.Exit(Execute(os.Args[1:]))
}
