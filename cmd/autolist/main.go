// Command autolist is a terminal editor for plain-text lists. Typing "* ",
// "- " or "1. " at the start of a line starts a list, Enter continues it and
// Enter on an empty item ends it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/autolist"
	"github.com/iw2rmb/autolist/internal/config"
	"github.com/iw2rmb/autolist/internal/document"
)

const debugEnv = "AUTOLIST_DEBUG"

func main() {
	var (
		configPath  = flag.String("config", "", "config file (default $"+config.EnvPath+" or the user config dir)")
		debug       = flag.Bool("debug", false, "write a debug log to autolist-debug.log")
		showVersion = flag.Bool("version", false, "print the version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: autolist [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(autolist.UserAgent())
		return
	}
	if err := run(*configPath, flag.Arg(0), *debug || os.Getenv(debugEnv) != ""); err != nil {
		fmt.Fprintln(os.Stderr, "autolist:", err)
		os.Exit(1)
	}
}

func run(configPath, path string, debug bool) error {
	if debug {
		f, err := tea.LogToFile("autolist-debug.log", "autolist")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if configPath == "" {
		p, err := config.Path()
		if err != nil {
			return err
		}
		configPath = p
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	text := ""
	if path != "" {
		if text, err = document.Load(path); err != nil {
			return err
		}
	}

	// The watcher is optional; a config dir that does not exist yet
	// simply disables reloading.
	w, err := config.Watch(configPath)
	if err != nil {
		log.Printf("config reload disabled: %v", err)
		w = nil
	}
	if w != nil {
		defer w.Close()
	}

	p := tea.NewProgram(newApp(cfg, path, text, w), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
