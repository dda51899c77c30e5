// Command-line interface entrypoint for the FloatChat terminal client
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"floatchat/floatchat/config"
	"floatchat/floatchat/conversation"
	"floatchat/floatchat/utils/color"
	"floatchat/floatchat/utils/logging"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	args := os.Args[1:]
	if len(args) < 1 || args[0] != "chat" {
		fmt.Println("FloatChat CLI usage:")
		fmt.Println("  floatchat chat   # Start a chat session in this terminal")
		os.Exit(1)
	}

	resolver := conversation.NewCannedResolver()
	if cfg.ResponsesPath != "" {
		loaded, err := conversation.LoadResolver(cfg.ResponsesPath)
		if err != nil {
			fmt.Println(color.ColorWarning("responses file unusable, using built-in canned responses"))
		} else {
			resolver = loaded
		}
	}

	store := conversation.NewSessionStore(resolver)
	thinkDelay := time.Duration(cfg.ThinkDelayMs) * time.Millisecond
	sessionID := store.NewSessionID()
	sess := store.Get(sessionID)

	logging.AppLogger.Info("FloatChat CLI session started", zap.String("sessionID", sessionID))

	fmt.Printf("\n🌊 FloatChat - Ocean Data Discovery\n\n")
	fmt.Println("Session:", sessionID)
	fmt.Println()
	for _, msg := range sess.Messages() {
		fmt.Println(color.ColorAssistant(msg.Content))
	}
	fmt.Println()
	fmt.Println("Quick queries (type the number to send):")
	quick := store.QuickQueries()
	for i, q := range quick {
		fmt.Printf("  %d. %s\n", i+1, color.ColorQuickQuery(q))
	}
	fmt.Println()
	fmt.Println("Type your question or 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.ColorPrompt("floatchat> "))
		if !scanner.Scan() {
			break // EOF or error
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println("👋 Goodbye!")
			break
		}
		if line == "" {
			continue
		}
		// number shortcut sends the quick query's literal string
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(quick) {
			line = quick[n-1]
			fmt.Println(color.ColorInfo("> " + line))
		}

		fmt.Println(color.ColorInfo("Processing..."))
		time.Sleep(thinkDelay)
		reply, ok := sess.Submit(line)
		if !ok {
			continue
		}
		fmt.Println(color.ColorAssistant(reply.Content))
		fmt.Println()
	}
}
