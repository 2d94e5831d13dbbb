package main

import (
	"os"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
