package main

import "flat-monitor/cmd"

func main() {
	cmd.Execute()
}
