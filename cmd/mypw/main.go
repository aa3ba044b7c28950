package main

import "github.com/fahmaliyi/mypw/cli"

func main() {
	cli.Execute()
}
