package main

import "github.com/kenneth-bframe/fusion-dashboards/cmd"

func main() {
	cmd.Execute()
}
