package main

import "golang-ipcalc/cmd"

func main() {
	cmd.Execute()
}
