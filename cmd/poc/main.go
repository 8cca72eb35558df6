// Command poc is a proof-of-concept CLI for playing against a Colony arbiter.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/colonyprotocol/gocolony/client"
	"github.com/colonyprotocol/gocolony/game"
	"github.com/colonyprotocol/gocolony/messages"
	"github.com/colonyprotocol/gocolony/protocol"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	serverAddr := flag.String("server", "", "arbiter address (or set COLONY_SERVER)")
	gameName := flag.String("game", "", "game to join (or set COLONY_GAME; default: a generated name)")
	playerName := flag.String("player", "", "player name (or set COLONY_PLAYER)")
	autoDiscard := flag.Bool("autodiscard", false, "answer discard requests with unknown resources")
	flag.Parse()

	// Use environment variables as fallback
	if *serverAddr == "" {
		*serverAddr = os.Getenv("COLONY_SERVER")
	}
	if *serverAddr == "" {
		*serverAddr = client.DefaultServerAddress
	}
	if *gameName == "" {
		*gameName = os.Getenv("COLONY_GAME")
	}
	if *playerName == "" {
		*playerName = os.Getenv("COLONY_PLAYER")
	}

	if *gameName == "" {
		*gameName = "game-" + strings.Split(uuid.NewString(), "-")[0]
	}
	if *playerName == "" {
		return errors.New("player name required: use -player or set COLONY_PLAYER in .env")
	}
	if !protocol.ValidIdentifier(*gameName) || !protocol.ValidIdentifier(*playerName) {
		return errors.New("game and player names must use only letters, digits, '-', '_', '.'")
	}

	opts := client.DefaultOptions()
	opts.ServerAddress = *serverAddr

	c := client.New(opts)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Connecting to %s...\n", opts.ServerAddress)
	if err := c.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = c.Disconnect() }()

	// Print everything the arbiter tells us about our game.
	for _, code := range []protocol.Code{
		protocol.JoinGame, protocol.LeaveGame, protocol.GameText,
		protocol.GameState, protocol.DiscardRequest, protocol.Discard,
	} {
		c.Router().Register(code, func(msg messages.Message) {
			fmt.Printf("<- %v\n", msg)
		})
	}

	if *autoDiscard {
		c.Router().Register(protocol.DiscardRequest, func(msg messages.Message) {
			req, ok := msg.(*messages.DiscardRequest)
			if !ok {
				return
			}
			rs := game.NewResourceSet(0, 0, 0, 0, 0, req.Count())
			if err := c.Discard(req.Game(), rs); err != nil {
				fmt.Fprintf(os.Stderr, "discard: %v\n", err)
			}
		})
	}

	fmt.Printf("Joining game %q as %q...\n", *gameName, *playerName)
	if err := c.JoinGame(*gameName, *playerName); err != nil {
		return fmt.Errorf("join game: %w", err)
	}

	select {
	case <-ctx.Done():
		fmt.Println("\nLeaving game...")
		_ = c.LeaveGame(*gameName, *playerName)
	case <-c.Disconnected():
		return fmt.Errorf("connection lost: %w", c.DisconnectError())
	}

	return nil
}
