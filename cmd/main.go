package main

import (
	"fmt"
	"os"

	"github.com/chainspray/govkit/cmd/govkit"
)

func main() {
	rootCmd := govkit.BuildGovKitCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
