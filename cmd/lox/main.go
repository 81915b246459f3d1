/*
File    : lox/cmd/lox/main.go
*/
package main

import "os"

func main() {
	os.Exit(Execute())
}
