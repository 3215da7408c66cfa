/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/tuyoleni/nust-competion-api/cmd"

func main() {
	cmd.Execute()
}
