package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/term"

	"github.com/mkhalid/smart-assistant/pkg/assistant"
	"github.com/mkhalid/smart-assistant/pkg/persistence"
	"github.com/mkhalid/smart-assistant/pkg/tools"
	"github.com/mkhalid/smart-assistant/pkg/web"
)

func GetEnv(name, fallback string) string {
	value, ok := os.LookupEnv(name)
	if ok {
		return value
	} else {
		return fallback
	}
}

func main() {
	apiURL := flag.String("api", GetEnv("OPENAI_URL", ""), "URL for the OpenAI API endpoint")
	model := flag.String("model", "gpt-4o", "Technical name of the LLM")
	userMessage := flag.String("message", "", "User message")
	sessionFile := flag.String("session-file", "", "Use this file to save and resume chat sessions")
	serveAddr := flag.String("serve", "", "Serve the browser chat UI on this address instead of the terminal")
	activeLog := flag.Bool("log", false, "Activate logging")

	flag.Parse()

	var options []option.RequestOption
	if *apiURL != "" {
		options = append(options, option.WithBaseURL(*apiURL))
	}
	apiKey := GetEnv("OPENAI_API_KEY", "")
	if apiKey != "" {
		options = append(options, option.WithAPIKey(apiKey))
	}
	if *activeLog {
		options = append(options, option.WithDebugLog(nil))
	}
	client := openai.NewClient(options...)

	registry, err := tools.DefaultRegistry(tools.Config{
		GoogleAPIKey: GetEnv("GOOGLE_API_KEY", ""),
		GoogleCSEID:  GetEnv("GOOGLE_CSE_ID", ""),
	})
	if err != nil {
		log.Fatalln("ERROR:", err)
	}

	systemPrompt := assistant.BuildSystemPrompt(registry.Descriptions())
	completer := assistant.NewOpenAICompleter(client, *model)

	if *serveAddr != "" {
		server := web.NewServer(completer, registry, systemPrompt)
		if err := server.Run(*serveAddr); err != nil {
			log.Fatalln("ERROR:", err)
		}
		return
	}

	var conv *assistant.Conversation
	if *sessionFile != "" {
		conv, _, err = persistence.TryToResumeSession(*sessionFile)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
	}
	if conv == nil {
		conv = assistant.NewConversation(systemPrompt)
	}

	t := term.NewTerminal(os.Stdin, "> ")
	loop := assistant.NewLoop(completer, registry, NewTerminalNotifier(t))

	for {
		prompt := *userMessage
		if len(*userMessage) == 0 {
			fd := int(os.Stdin.Fd())
			oldState, err := term.MakeRaw(fd)
			if err != nil {
				fmt.Fprintln(t, "Fatal:", err)
				break
			}

			width, height, err := term.GetSize(fd)
			if err != nil {
				fmt.Fprintln(t, "Fatal:", err)
				break
			}
			t.SetSize(width, height)

			prompt, err = t.ReadLine()
			restoreErr := term.Restore(fd, oldState)

			if err != nil {
				if err != io.EOF {
					fmt.Fprintln(t, "Fatal:", err)
				}
				break
			}
			if restoreErr != nil {
				fmt.Fprintln(t, "Fatal:", restoreErr)
				break
			}
		}

		if prompt == "" {
			continue
		}

		conv.AppendUser(prompt)

		if _, err := loop.Run(context.Background(), conv); err != nil && !isNotified(err) {
			fmt.Fprintln(t, "Fatal:", err)
			break
		}

		if *sessionFile != "" {
			if err := persistence.SaveSession(*sessionFile, *model, conv); err != nil {
				log.Fatalln("ERROR:", err)
			}
		}

		if len(*userMessage) > 0 {
			break
		}
	}
}

// isNotified reports whether the notifier already rendered the failure, in
// which case the chat keeps accepting input.
func isNotified(err error) bool {
	return errors.Is(err, assistant.ErrMalformedReply) ||
		errors.Is(err, assistant.ErrUnknownTool) ||
		errors.Is(err, assistant.ErrUnrecognizedStep)
}
