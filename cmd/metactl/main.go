// Package main provides metactl, a command line client for the meta
// analytics database.
package main

func main() {
	Execute()
}
