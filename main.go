package main

import "github.com/mstephjuan/expense-tracker/cmd"

func main() {
	cmd.Execute()
}
