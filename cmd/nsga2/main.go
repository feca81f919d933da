package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga2/cmd/nsga2/app"
)

func main() {
	command := app.NewNSGAIICommand(os.Stdout)
	err := command.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
