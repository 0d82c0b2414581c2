// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"monkey/internal/config"
	"monkey/internal/lsp"
)

const lsName = "monkey" // Name identifier for the language server

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	cfgFile := flag.String("config", "", "config file (TOML)")
	debug := flag.Bool("debug", false, "enable glsp debug logging")
	flag.Parse()

	log := commonlog.GetLogger("monkey.lsp")

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		commonlog.Configure(1, nil)
		log.Errorf("loading config: %s", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to the configured file or stderr
	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity+1, logPath)

	monkeyHandler := lsp.NewMonkeyHandler()

	handler = protocol.Handler{
		Initialize:                     monkeyHandler.Initialize,
		Initialized:                    monkeyHandler.Initialized,
		Shutdown:                       monkeyHandler.Shutdown,
		SetTrace:                       monkeyHandler.SetTrace,
		TextDocumentDidOpen:            monkeyHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           monkeyHandler.TextDocumentDidClose,
		TextDocumentDidChange:          monkeyHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: monkeyHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, *debug)

	log.Infof("Starting Monkey LSP server %s...", version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("Error running Monkey LSP server: %s", err)
		os.Exit(1)
	}
}
