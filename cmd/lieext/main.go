// Command lieext computes 2-cocycle bases and central extensions of brackets
// described in YAML or TOML files.
package main

func main() {
	Execute()
}
