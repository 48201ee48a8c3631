package main

import (
	"github.com/logsift/logsift/cmd/logsift/commands"
	"github.com/logsift/logsift/internal/utils/logger"
)

func main() {
	defer logger.Sync()
	commands.Execute()
}
