// Package main provides the snacktrack CLI for food ingredient health
// scanning.
package main

func main() {
	Execute()
}
