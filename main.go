package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"focuskit/internal/config"
	"focuskit/internal/eventbus"
	"focuskit/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("focuskit.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg := loadOrCreateConfig(configSvc)

	uiModel := ui.NewModel(bus, cfg, configSvc)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	stopForwarding := forwardEvents(bus, p.Send,
		eventbus.EventActionInvoked,
		eventbus.EventMenuItemActivated,
		eventbus.EventMenuEscaped,
		eventbus.EventError,
	)
	bus.Subscribe(eventbus.EventFocusChanged, func(e eventbus.DomainEvent) {
		if fc, ok := e.(eventbus.FocusChangedEvent); ok {
			log.Printf("Focus moved from %q to %q", fc.From, fc.To)
		}
	})

	if os.Getenv("FOCUSKIT_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	stopForwarding()
}

// forwardEvents relays the given event types to send as ui.EventMsg.
// The returned stop func closes the bus first, so no handler can write to
// the forwarding channel after it is closed.
func forwardEvents(bus eventbus.EventBus, send func(tea.Msg), types ...eventbus.EventType) (stop func()) {
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, et := range types {
		bus.Subscribe(et, forward)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range eventChan {
			send(ui.EventMsg{Event: event})
		}
	}()

	return func() {
		bus.Close()
		close(eventChan)
		<-done
	}
}

// loadOrCreateConfig loads the config file, writing the defaults when it does not exist yet
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	if _, err := os.Stat(configSvc.Path()); err == nil {
		cfg, err := configSvc.Load()
		if err == nil {
			log.Printf("Loaded config from %s", configSvc.Path())
			return cfg
		}
		log.Printf("Failed to load config, using defaults: %v", err)
		return config.DefaultConfig()
	}

	log.Printf("Creating new config at %s", configSvc.Path())
	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}
