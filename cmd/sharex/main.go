// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Command sharex finds the ShareX executable and triggers its capture modes
// from the command line.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/jongio/sharex-core/version"
)

func main() {
	info := version.New("sharex")
	if err := fang.Execute(
		context.Background(),
		newRootCmd(newApp()),
		fang.WithVersion(info.String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
